package items

// ItemCategory classifies an item for browsing. The set is closed: consumers
// switch over it exhaustively, and BuildRegistry rejects unknown values.
type ItemCategory string

const (
	// CategoryCreaturePart is creature parts from hunting (Valakkar fangs, Kopion horns).
	CategoryCreaturePart ItemCategory = "creature_part"
	// CategoryMinedMaterial is mined materials (Carinite, Quantanium, ores).
	CategoryMinedMaterial ItemCategory = "mined_material"
	// CategoryMissionCurrency is mission reward currencies (MG Scrip, Council Scrip).
	CategoryMissionCurrency ItemCategory = "mission_currency"
	// CategoryCombatLoot is loot from Vanduul or other combat encounters.
	CategoryCombatLoot ItemCategory = "combat_loot"
	// CategoryEquipment is equipment and components (drives, boards).
	CategoryEquipment ItemCategory = "equipment"
	// CategoryCommodity is trade commodities measured in SCU.
	CategoryCommodity ItemCategory = "commodity"
)

// Categories returns every valid category in display order.
func Categories() []ItemCategory {
	return []ItemCategory{
		CategoryCreaturePart,
		CategoryMinedMaterial,
		CategoryMissionCurrency,
		CategoryCombatLoot,
		CategoryEquipment,
		CategoryCommodity,
	}
}

// Valid reports whether c is a member of the closed category set.
func (c ItemCategory) Valid() bool {
	switch c {
	case CategoryCreaturePart, CategoryMinedMaterial, CategoryMissionCurrency,
		CategoryCombatLoot, CategoryEquipment, CategoryCommodity:
		return true
	}
	return false
}

// AcquisitionMethod describes how an item is obtained at a source location.
type AcquisitionMethod string

const (
	MethodHunting AcquisitionMethod = "hunting"
	MethodMining  AcquisitionMethod = "mining"
	MethodCombat  AcquisitionMethod = "combat"
	MethodMission AcquisitionMethod = "mission"
	MethodSalvage AcquisitionMethod = "salvage"
)

// Valid reports whether m is a member of the closed method set.
func (m AcquisitionMethod) Valid() bool {
	switch m {
	case MethodHunting, MethodMining, MethodCombat, MethodMission, MethodSalvage:
		return true
	}
	return false
}

// SourceLocation is a place where an item can be acquired. The (name, system)
// pair is not unique - many items share a source location.
type SourceLocation struct {
	// Name should match terminal naming for route integration.
	// Examples: "Lazarus Transport Centers", "ARC-L1", "Pyro I".
	Name string `json:"name" yaml:"name"`
	// System is the star system containing this location.
	System string `json:"system" yaml:"system"`
	// Description briefly notes what happens here.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// ReliabilityMin and ReliabilityMax bound the source confidence score.
// 5 is verified, 1 is an unverified rumor. Low scores are valid data.
const (
	ReliabilityMin = 1
	ReliabilityMax = 5
)

// ItemSource is a single acquisition path for an item: where, how, and how
// much the intel is trusted.
type ItemSource struct {
	Location SourceLocation    `json:"location" yaml:"location"`
	Method   AcquisitionMethod `json:"method" yaml:"method"`
	// Reliability is the 1-5 confidence score. It is carried through every
	// query path, never dropped or averaged.
	Reliability int `json:"reliability" yaml:"reliability"`
	// Notes hold acquisition details (spawn times, requirements).
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// Item is one collectible or tradeable game object tracked by the registry.
type Item struct {
	// ID is the stable snake_case identifier, unique within a registry.
	ID string `json:"id" yaml:"id"`
	// Name is the display name (e.g. "Irradiated Valakkar Fang (Apex)").
	Name     string       `json:"name" yaml:"name"`
	Category ItemCategory `json:"category" yaml:"category"`
	// Sources lists every known acquisition path. Must be non-empty.
	Sources []ItemSource `json:"sources" yaml:"sources"`
	// EstimatedValue is the market value in aUEC when known. It is filled by
	// external enrichment, never computed here.
	EstimatedValue uint64 `json:"estimated_value,omitempty" yaml:"estimated_value,omitempty"`
	// Stackable reports whether multiple units combine in inventory.
	Stackable bool `json:"stackable" yaml:"stackable"`
	// SCUPerUnit is the cargo volume per unit, for capacity planning.
	SCUPerUnit float64 `json:"scu_per_unit,omitempty" yaml:"scu_per_unit,omitempty"`
}

// PrimarySource returns the highest-reliability source, or nil when the item
// has none (only possible before validation).
func (it *Item) PrimarySource() *ItemSource {
	var best *ItemSource
	for i := range it.Sources {
		if best == nil || it.Sources[i].Reliability > best.Reliability {
			best = &it.Sources[i]
		}
	}
	return best
}

// SourceSystems returns the unique systems this item is sourced in, in
// first-seen order.
func (it *Item) SourceSystems() []string {
	seen := make(map[string]bool, len(it.Sources))
	var systems []string
	for i := range it.Sources {
		sys := it.Sources[i].Location.System
		if !seen[sys] {
			seen[sys] = true
			systems = append(systems, sys)
		}
	}
	return systems
}
