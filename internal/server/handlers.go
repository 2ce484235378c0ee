package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/corsair-sc/corsair/internal/domain/items"
	"github.com/corsair-sc/corsair/internal/intel"
	"github.com/corsair-sc/corsair/internal/log"
)

// maxLimit caps list endpoints so a bad query cannot dump the whole dataset.
const maxLimit = 100

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.ErrorErr(log.CatServer, "encode response", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// limitParam reads ?limit= with a default, clamped to maxLimit.
func limitParam(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	return min(n, maxLimit)
}

// itemViews converts registry pointers into a JSON-friendly slice that
// serializes as [] rather than null when empty.
func itemViews(found []*items.Item) []items.Item {
	out := make([]items.Item, len(found))
	for i, it := range found {
		out[i] = *it
	}
	return out
}

func handleHealth(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]any{
			"status": "ok",
			"items":  state.Items.Len(),
			"nodes":  state.Graph().NodeCount(),
		})
	}
}

func handleHotRoutes(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hot, err := state.Analyzer.HotRoutes(r.Context(), limitParam(r, 10))
		if err != nil {
			respondError(w, http.StatusBadGateway, "trade data unavailable")
			return
		}
		respondJSON(w, http.StatusOK, hot)
	}
}

func handleChokepoints(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chokepoints, err := state.Analyzer.Chokepoints(r.Context(), state.Graph(), limitParam(r, 5))
		if err != nil {
			respondError(w, http.StatusBadGateway, "trade data unavailable")
			return
		}
		respondJSON(w, http.StatusOK, chokepoints)
	}
}

func handleTargets(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		location := chi.URLParam(r, "location")
		predictions, err := state.Analyzer.TargetsAt(r.Context(), location)
		if err != nil {
			respondError(w, http.StatusBadGateway, "trade data unavailable")
			return
		}
		if predictions == nil {
			predictions = []intel.TargetPrediction{}
		}
		respondJSON(w, http.StatusOK, predictions)
	}
}

func handleLikelyCargo(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, state.Analyzer.LikelyCargoAt(chi.URLParam(r, "location")))
	}
}

func handleShips(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, state.Fleet.All())
	}
}

func handleItems(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, state.Items.AllItems())
	}
}

func handleItem(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		it, ok := state.Items.Get(chi.URLParam(r, "id"))
		if !ok {
			respondError(w, http.StatusNotFound, "item not found")
			return
		}
		respondJSON(w, http.StatusOK, it)
	}
}

func handleItemsAtLocation(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, itemViews(state.Items.ItemsAtLocation(chi.URLParam(r, "name"))))
	}
}

func handleItemsInSystem(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, itemViews(state.Items.ItemsInSystem(chi.URLParam(r, "system"))))
	}
}

func handleItemsInCategory(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := items.ItemCategory(chi.URLParam(r, "category"))
		respondJSON(w, http.StatusOK, itemViews(state.Items.ItemsInCategory(cat)))
	}
}

func handleTerminals(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		terminals, err := state.Data.Terminals(r.Context())
		if err != nil {
			respondError(w, http.StatusBadGateway, "trade data unavailable")
			return
		}
		respondJSON(w, http.StatusOK, terminals)
	}
}

func handleCommodities(state *State) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		commodities, err := state.Data.Commodities(r.Context())
		if err != nil {
			respondError(w, http.StatusBadGateway, "trade data unavailable")
			return
		}
		respondJSON(w, http.StatusOK, commodities)
	}
}
