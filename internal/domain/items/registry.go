package items

// Registry is the immutable, multi-dimensional index over one canonical item
// slice. Build it with BuildRegistry; share the pointer freely afterwards -
// there is no mutable state to protect.
type Registry struct {
	items      []Item
	byID       map[string]int
	byLocation map[string][]int
	bySystem   map[string][]int
	byCategory map[ItemCategory][]int
}

// BuildRegistry validates items and builds all indexes in a single pass.
// It fails fast on the first violation and never returns a partial registry.
// The input slice is copied; callers may reuse it afterwards.
func BuildRegistry(input []Item) (*Registry, error) {
	r := &Registry{
		items:      make([]Item, 0, len(input)),
		byID:       make(map[string]int, len(input)),
		byLocation: make(map[string][]int),
		bySystem:   make(map[string][]int),
		byCategory: make(map[ItemCategory][]int, len(Categories())),
	}

	for i := range input {
		if err := r.absorb(&input[i]); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// absorb validates one item and threads it through every index.
func (r *Registry) absorb(it *Item) error {
	if err := validateItem(it); err != nil {
		return err
	}
	if _, exists := r.byID[it.ID]; exists {
		return duplicateIDError(it.ID)
	}

	pos := len(r.items)
	r.items = append(r.items, *it)
	r.byID[it.ID] = pos

	// An item with two sources at the same location (or in the same system)
	// must appear under that key once, not twice.
	seenLoc := make(map[string]bool, len(it.Sources))
	seenSys := make(map[string]bool, len(it.Sources))
	for i := range it.Sources {
		loc := it.Sources[i].Location
		if !seenLoc[loc.Name] {
			seenLoc[loc.Name] = true
			r.byLocation[loc.Name] = append(r.byLocation[loc.Name], pos)
		}
		if !seenSys[loc.System] {
			seenSys[loc.System] = true
			r.bySystem[loc.System] = append(r.bySystem[loc.System], pos)
		}
	}

	r.byCategory[it.Category] = append(r.byCategory[it.Category], pos)
	return nil
}

func validateItem(it *Item) error {
	if it.ID == "" {
		return emptyFieldError("", "item id")
	}
	if it.Name == "" {
		return emptyFieldError(it.ID, "item name")
	}
	if !it.Category.Valid() {
		return invalidCategoryError(it.ID, it.Category)
	}
	if len(it.Sources) == 0 {
		return emptySourcesError(it.ID)
	}
	for i := range it.Sources {
		src := &it.Sources[i]
		if src.Location.Name == "" {
			return emptyFieldError(it.ID, "source location name")
		}
		if src.Location.System == "" {
			return emptyFieldError(it.ID, "source system name")
		}
		if !src.Method.Valid() {
			return invalidMethodError(it.ID, src.Method)
		}
		if src.Reliability < ReliabilityMin || src.Reliability > ReliabilityMax {
			return invalidReliabilityError(it.ID, src.Reliability)
		}
	}
	return nil
}

// Get returns the item with the given id, or (nil, false) when unknown.
func (r *Registry) Get(id string) (*Item, bool) {
	pos, ok := r.byID[id]
	if !ok {
		return nil, false
	}
	return &r.items[pos], true
}

// ItemsAtLocation returns every item with at least one source at the
// exact-match location name, in build order. Unknown names yield an empty
// slice, never an error.
func (r *Registry) ItemsAtLocation(name string) []*Item {
	return r.resolve(r.byLocation[name])
}

// ItemsInSystem returns every item sourced in the exact-match star system,
// in build order.
func (r *Registry) ItemsInSystem(system string) []*Item {
	return r.resolve(r.bySystem[system])
}

// ItemsInCategory returns every item in the category, in build order. Each
// item has exactly one category, so these result sets partition AllItems.
func (r *Registry) ItemsInCategory(cat ItemCategory) []*Item {
	return r.resolve(r.byCategory[cat])
}

// AllItems returns the canonical item slice in build order. The slice is
// shared, not copied; callers must treat it as read-only.
func (r *Registry) AllItems() []Item {
	return r.items
}

// Len returns the total item count.
func (r *Registry) Len() int {
	return len(r.items)
}

// Locations returns every indexed location name (unordered).
func (r *Registry) Locations() []string {
	names := make([]string, 0, len(r.byLocation))
	for name := range r.byLocation {
		names = append(names, name)
	}
	return names
}

// Systems returns every indexed star system name (unordered).
func (r *Registry) Systems() []string {
	systems := make([]string, 0, len(r.bySystem))
	for system := range r.bySystem {
		systems = append(systems, system)
	}
	return systems
}

func (r *Registry) resolve(positions []int) []*Item {
	result := make([]*Item, 0, len(positions))
	for _, pos := range positions {
		result = append(result, &r.items[pos])
	}
	return result
}
