package fleetyards

// ShipModel is one entry from the FleetYards /models listing. Only the
// fields the fleet registry cares about are decoded.
type ShipModel struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	Manufacturer     *Manufacturer `json:"manufacturer"`
	Metrics          *Metrics      `json:"metrics"`
	Crew             *Crew         `json:"crew"`
	ProductionStatus string        `json:"productionStatus"`
	Classification   string        `json:"classification"`
	Size             string        `json:"size"`
	Price            *float64      `json:"price"`
	PledgePrice      *float64      `json:"pledgePrice"`
}

// Manufacturer is the ship maker.
type Manufacturer struct {
	Name string `json:"name"`
}

// Metrics holds the physical stats FleetYards reports per model.
type Metrics struct {
	Cargo                *float64 `json:"cargo"`
	HydrogenFuelTankSize *float64 `json:"hydrogenFuelTankSize"`
	QuantumFuelTankSize  *float64 `json:"quantumFuelTankSize"`
	Mass                 *float64 `json:"mass"`
}

// Crew is the crew size range.
type Crew struct {
	Min *int `json:"min"`
	Max *int `json:"max"`
}

// CargoSCU returns the model's cargo capacity, zero when unreported.
func (m *ShipModel) CargoSCU() float64 {
	if m.Metrics == nil || m.Metrics.Cargo == nil {
		return 0
	}
	return *m.Metrics.Cargo
}
