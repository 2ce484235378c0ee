// Package items implements the static item intelligence registry.
//
// The registry indexes every known Wikelo trade item by id, source location,
// star system, and category so that consumers (the TUI, the REST API, the
// target analyzer) can answer questions like "where do I find item X" and
// "what is a ship leaving location Y probably carrying" without rescanning
// the dataset per query.
//
// # Construction
//
// A Registry is built exactly once from a finite slice of Item values via
// BuildRegistry. Construction validates every item and fails atomically on
// the first violation (duplicate id, empty sources, out-of-range reliability,
// missing required fields) - a partially built registry never escapes. After
// a successful build the registry is immutable and safe for concurrent reads
// without locking. If the dataset changes, callers build a new Registry and
// swap the handle.
//
// # Indexing
//
// The registry owns one canonical item slice in build order. Every index maps
// its key to positions into that slice, never to copies, so memory stays
// proportional to the dataset regardless of how many index dimensions exist.
//
// # Matching semantics
//
// Location and system keys are matched by exact string equality. The registry
// performs no case folding or fuzzy matching; callers that need to reconcile
// wiki names with terminal names normalize before querying (see the ships
// package for the normalization idiom).
//
// # Confidence
//
// Every ItemSource carries a 1-5 reliability score. Low scores are valid
// data, not errors: the registry rejects only structurally broken input and
// preserves reliability through every query path so consumers can surface it.
package items
