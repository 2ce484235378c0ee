package items

// BuiltinItems returns the compiled-in Wikelo item dataset. Sources and
// reliability scores come from community research; entries with reliability
// 1-2 are deliberately kept - an unverified rumor is still intel.
//
// The slice is freshly allocated on every call so callers can merge user
// items into it before building a registry.
func BuiltinItems() []Item {
	return []Item{
		// Creature parts
		{
			ID:       "valakkar_fang",
			Name:     "Valakkar Fang",
			Category: CategoryCreaturePart,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Monox", System: "Pyro", Description: "Sand wurm territory in the dune fields"},
					Method:      MethodHunting,
					Reliability: 5,
					Notes:       "Adult valakkar spawn near seismic activity",
				},
				{
					Location:    SourceLocation{Name: "Leir III", System: "Leir"},
					Method:      MethodHunting,
					Reliability: 2,
					Notes:       "Unconfirmed sightings",
				},
			},
			Stackable: true,
		},
		{
			ID:       "irradiated_valakkar_fang_apex",
			Name:     "Irradiated Valakkar Fang (Apex)",
			Category: CategoryCreaturePart,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Monox", System: "Pyro", Description: "Apex spawns near the crash site"},
					Method:      MethodHunting,
					Reliability: 4,
					Notes:       "Apex variant only during radiation storms",
				},
			},
			Stackable: true,
		},
		{
			ID:       "kopion_horn",
			Name:     "Kopion Horn",
			Category: CategoryCreaturePart,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Aberdeen", System: "Stanton", Description: "Cave systems"},
					Method:      MethodHunting,
					Reliability: 5,
				},
				{
					Location:    SourceLocation{Name: "Daymar", System: "Stanton"},
					Method:      MethodHunting,
					Reliability: 4,
					Notes:       "Packs roam near outposts at night",
				},
			},
			Stackable: true,
		},
		{
			ID:       "yormandi_scale",
			Name:     "Yormandi Scale",
			Category: CategoryCreaturePart,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Bloom", System: "Pyro"},
					Method:      MethodHunting,
					Reliability: 3,
				},
			},
			Stackable: true,
		},

		// Mined materials
		{
			ID:       "carinite",
			Name:     "Carinite",
			Category: CategoryMinedMaterial,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Aberdeen", System: "Stanton", Description: "Surface deposits"},
					Method:      MethodMining,
					Reliability: 5,
				},
				{
					Location:    SourceLocation{Name: "Pyro IV", System: "Pyro"},
					Method:      MethodMining,
					Reliability: 3,
					Notes:       "Asteroid cluster yields, contested space",
				},
			},
			Stackable:  true,
			SCUPerUnit: 0.0625,
		},
		{
			ID:       "quantanium_refined",
			Name:     "Refined Quantanium",
			Category: CategoryMinedMaterial,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Lyria", System: "Stanton"},
					Method:      MethodMining,
					Reliability: 4,
					Notes:       "Refine before transport, volatile raw",
				},
			},
			Stackable:  true,
			SCUPerUnit: 1,
		},
		{
			ID:       "dolivine",
			Name:     "Dolivine",
			Category: CategoryMinedMaterial,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Pyro I", System: "Pyro"},
					Method:      MethodMining,
					Reliability: 2,
					Notes:       "Reported by a single prospector crew",
				},
			},
			Stackable:  true,
			SCUPerUnit: 0.0625,
		},

		// Mission currencies
		{
			ID:       "mg_scrip",
			Name:     "MG Scrip",
			Category: CategoryMissionCurrency,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Wikelo Emporium", System: "Stanton", Description: "Contract payouts"},
					Method:      MethodMission,
					Reliability: 5,
				},
			},
			Stackable: true,
		},
		{
			ID:       "council_scrip",
			Name:     "Council Scrip",
			Category: CategoryMissionCurrency,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Unknown", System: "Stanton"},
					Method:      MethodMission,
					Reliability: 2,
					Notes:       "Payout source not yet confirmed",
				},
			},
			Stackable: true,
		},

		// Combat loot
		{
			ID:       "vanduul_blade",
			Name:     "Vanduul Blade",
			Category: CategoryCombatLoot,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Jackson's Swarm", System: "Pyro", Description: "Vanduul raiding party wrecks"},
					Method:      MethodCombat,
					Reliability: 3,
					Notes:       "Drops from boarding parties, not fighters",
				},
				{
					Location:    SourceLocation{Name: "Ruin Station", System: "Pyro"},
					Method:      MethodSalvage,
					Reliability: 2,
				},
			},
			Stackable: false,
		},
		{
			ID:       "scavenger_hull_plate",
			Name:     "Scavenger Hull Plate",
			Category: CategoryCombatLoot,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Checkmate Station", System: "Pyro"},
					Method:      MethodSalvage,
					Reliability: 4,
					Notes:       "Strip from derelicts in the debris field",
				},
			},
			Stackable:  true,
			SCUPerUnit: 0.5,
		},

		// Equipment
		{
			ID:       "overclocked_quantum_board",
			Name:     "Overclocked Quantum Board",
			Category: CategoryEquipment,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Orbituary", System: "Pyro"},
					Method:      MethodCombat,
					Reliability: 3,
					Notes:       "Carried by outlaw ace pilots",
				},
				{
					Location:    SourceLocation{Name: "Grim HEX", System: "Stanton"},
					Method:      MethodMission,
					Reliability: 2,
				},
			},
			Stackable: false,
		},

		// Commodities
		{
			ID:       "pressurized_ice",
			Name:     "Pressurized Ice",
			Category: CategoryCommodity,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "microTech", System: "Stanton"},
					Method:      MethodMining,
					Reliability: 5,
				},
			},
			Stackable:  true,
			SCUPerUnit: 1,
		},
		{
			ID:       "sunset_berries",
			Name:     "Sunset Berries",
			Category: CategoryCommodity,
			Sources: []ItemSource{
				{
					Location:    SourceLocation{Name: "Terminus", System: "Pyro", Description: "Grown in station hydroponics"},
					Method:      MethodMission,
					Reliability: 4,
				},
			},
			Stackable:  true,
			SCUPerUnit: 1,
		},
	}
}

// BuiltinContracts returns the known Wikelo trade contracts. Requirements
// reference BuiltinItems ids.
func BuiltinContracts() []Contract {
	return []Contract{
		{
			Name: "Apex Predator",
			Requirements: []ContractRequirement{
				{ItemID: "irradiated_valakkar_fang_apex", Quantity: 1},
				{ItemID: "valakkar_fang", Quantity: 6},
			},
			Reward: "Weapon paint + 45,000 aUEC",
		},
		{
			Name: "Grazer's Bounty",
			Requirements: []ContractRequirement{
				{ItemID: "kopion_horn", Quantity: 12},
				{ItemID: "yormandi_scale", Quantity: 4},
			},
			Reward: "MG Scrip x3",
		},
		{
			Name: "Deep Core Delivery",
			Requirements: []ContractRequirement{
				{ItemID: "carinite", Quantity: 20},
				{ItemID: "quantanium_refined", Quantity: 5},
			},
			Reward: "Mining head blueprint",
		},
		{
			Name: "War Trophies",
			Requirements: []ContractRequirement{
				{ItemID: "vanduul_blade", Quantity: 2},
				{ItemID: "mg_scrip", Quantity: 10},
			},
			Reward: "Ship weapon + hangar flair",
		},
	}
}
