package ships

import "sort"

// Registry holds the fleet with a normalized-name index into the backing
// slice. Built once from the static fleet; immutable afterwards.
type Registry struct {
	ships  []CargoShip
	byName map[string]int
}

// NewRegistry builds a registry over the given fleet. Later entries win on
// normalized-name collisions.
func NewRegistry(fleet []CargoShip) *Registry {
	r := &Registry{
		ships:  make([]CargoShip, 0, len(fleet)),
		byName: make(map[string]int, len(fleet)),
	}
	for _, ship := range fleet {
		r.byName[NormalizeName(ship.Name)] = len(r.ships)
		r.ships = append(r.ships, ship)
	}
	return r
}

// Default returns a registry over the built-in fleet.
func Default() *Registry {
	return NewRegistry(Fleet())
}

// All returns every ship in fleet order. Callers must not modify the slice.
func (r *Registry) All() []CargoShip {
	return r.ships
}

// FindByName looks up a ship by name, case-insensitive and tolerant of
// dashes/underscores/extra whitespace.
func (r *Registry) FindByName(name string) (*CargoShip, bool) {
	idx, ok := r.byName[NormalizeName(name)]
	if !ok {
		return nil, false
	}
	return &r.ships[idx], true
}

// FindByMinCargo returns every ship with at least minSCU capacity.
func (r *Registry) FindByMinCargo(minSCU uint32) []*CargoShip {
	var result []*CargoShip
	for i := range r.ships {
		if r.ships[i].CargoSCU >= minSCU {
			result = append(result, &r.ships[i])
		}
	}
	return result
}

// SmallestForCargo returns the smallest ship that can carry scu, or false
// when nothing in the fleet is big enough.
func (r *Registry) SmallestForCargo(scu uint32) (*CargoShip, bool) {
	var best *CargoShip
	for i := range r.ships {
		s := &r.ships[i]
		if s.CargoSCU < scu {
			continue
		}
		if best == nil || s.CargoSCU < best.CargoSCU {
			best = s
		}
	}
	return best, best != nil
}

// EstimateForRoute guesses the hull flying a route that moves scuNeeded
// between origin and destination. Hulls that load through freight elevators
// are only candidates when both endpoints have elevator facilities. Smallest
// sufficient ship wins; when nothing can carry the full load, the largest
// dockable hauler is assumed.
func (r *Registry) EstimateForRoute(scuNeeded float64, origin, destination string) CargoShip {
	elevators := HasFreightElevator(origin) && HasFreightElevator(destination)

	dockable := make([]CargoShip, 0, len(r.ships))
	for _, ship := range r.ships {
		if ship.RequiresFreightElevator && !elevators {
			continue
		}
		dockable = append(dockable, ship)
	}
	if len(dockable) == 0 {
		return CargoShip{Name: "Unknown", Manufacturer: "Unknown"}
	}

	sort.Slice(dockable, func(i, j int) bool { return dockable[i].CargoSCU < dockable[j].CargoSCU })

	for _, ship := range dockable {
		if float64(ship.CargoSCU) >= scuNeeded {
			return ship
		}
	}
	return dockable[len(dockable)-1]
}
