package ships

// Fleet returns the built-in cargo fleet, smallest haulers first.
func Fleet() []CargoShip {
	return []CargoShip{
		// Small haulers
		{Name: "Aurora CL", Manufacturer: "RSI", CargoSCU: 6, CrewSize: 1, ThreatLevel: 1, ValueUEC: 45_000},
		{Name: "Avenger Titan", Manufacturer: "Aegis", CargoSCU: 8, CrewSize: 1, ThreatLevel: 4, ValueUEC: 85_000},
		{Name: "Nomad", Manufacturer: "Consolidated Outland", CargoSCU: 24, CrewSize: 1, ThreatLevel: 2, ValueUEC: 95_000},
		{Name: "Cutlass Black", Manufacturer: "Drake", CargoSCU: 46, CrewSize: 2, ThreatLevel: 5, ValueUEC: 150_000},

		// Medium haulers
		{Name: "Freelancer", Manufacturer: "MISC", CargoSCU: 66, CrewSize: 2, ThreatLevel: 4, ValueUEC: 180_000},
		{Name: "Freelancer MAX", Manufacturer: "MISC", CargoSCU: 120, CrewSize: 2, ThreatLevel: 3, ValueUEC: 220_000},
		{Name: "RAFT", Manufacturer: "MISC", CargoSCU: 96, CrewSize: 1, ThreatLevel: 1, ValueUEC: 150_000},
		{Name: "Constellation Andromeda", Manufacturer: "RSI", CargoSCU: 96, CrewSize: 4, ThreatLevel: 7, ValueUEC: 400_000},
		{Name: "Constellation Taurus", Manufacturer: "RSI", CargoSCU: 174, CrewSize: 2, ThreatLevel: 5, ValueUEC: 350_000},

		// Large haulers
		{Name: "Caterpillar", Manufacturer: "Drake", CargoSCU: 576, CrewSize: 4, ThreatLevel: 4, ValueUEC: 600_000},
		{Name: "C2 Hercules", Manufacturer: "Crusader", CargoSCU: 696, CrewSize: 2, ThreatLevel: 5, ValueUEC: 800_000},
		{Name: "Hull C", Manufacturer: "MISC", CargoSCU: 4608, CrewSize: 3, ThreatLevel: 1, ValueUEC: 1_200_000, RequiresFreightElevator: true},
	}
}
