package fleetyards

import (
	"strings"

	"github.com/corsair-sc/corsair/internal/domain/ships"
)

// fallbackValueUEC stands in when FleetYards reports no price at all.
const fallbackValueUEC = 100_000

// ToFleet converts API models into the cargo fleet. Only flight-ready hulls
// with an actual cargo hold make the cut; the rest of the catalogue is
// irrelevant for interdiction planning.
func ToFleet(models []ShipModel) []ships.CargoShip {
	fleet := make([]ships.CargoShip, 0, len(models))
	for i := range models {
		m := &models[i]
		if !strings.EqualFold(m.ProductionStatus, "flight-ready") {
			continue
		}
		cargo := m.CargoSCU()
		if cargo <= 0 {
			continue
		}
		fleet = append(fleet, toCargoShip(m, cargo))
	}
	return fleet
}

func toCargoShip(m *ShipModel, cargo float64) ships.CargoShip {
	manufacturer := "Unknown"
	if m.Manufacturer != nil && m.Manufacturer.Name != "" {
		manufacturer = m.Manufacturer.Name
	}

	crew := 1
	if m.Crew != nil && m.Crew.Max != nil {
		crew = *m.Crew.Max
	}
	if crew < 1 {
		crew = 1
	}
	if crew > 255 {
		crew = 255
	}

	value := uint64(fallbackValueUEC)
	switch {
	case m.Price != nil && *m.Price > 0:
		value = uint64(*m.Price)
	case m.PledgePrice != nil && *m.PledgePrice > 0:
		value = uint64(*m.PledgePrice)
	}

	name := strings.ToLower(m.Name)
	elevator := strings.Contains(name, "hull c") ||
		strings.Contains(name, "hull d") ||
		strings.Contains(name, "hull e")

	return ships.CargoShip{
		Name:                    m.Name,
		Manufacturer:            manufacturer,
		CargoSCU:                uint32(cargo),
		CrewSize:                uint8(crew),
		ThreatLevel:             estimateThreatLevel(m),
		ValueUEC:                value,
		RequiresFreightElevator: elevator,
	}
}

// estimateThreatLevel rates a hull 1-10 for how hard an interdiction gets.
// Name-based for now; armament data is not in the catalogue listing.
func estimateThreatLevel(m *ShipModel) uint8 {
	name := strings.ToLower(m.Name)

	switch {
	case containsAny(name, "hornet", "sabre", "vanguard", "gladius", "arrow", "buccaneer"):
		return 8
	case containsAny(name, "hammerhead", "perseus", "redeemer"):
		return 10
	case containsAny(name, "cutlass", "freelancer", "constellation"):
		if strings.Contains(name, "andromeda") {
			return 7
		}
		return 4
	case containsAny(name, "hull", "c2", "m2"):
		return 2
	}

	if m.Crew != nil && m.Crew.Max != nil && *m.Crew.Max == 1 {
		return 2
	}
	return 3
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
