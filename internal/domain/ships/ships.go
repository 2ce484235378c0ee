// Package ships holds the cargo ship fleet data used to estimate which hull
// is likely flying a given trade route.
package ships

import "strings"

// CargoShip is a hull with the stats that matter for interdiction planning.
type CargoShip struct {
	Name         string `json:"name"`
	Manufacturer string `json:"manufacturer"`
	CargoSCU     uint32 `json:"cargo_scu"`
	CrewSize     uint8  `json:"crew_size"`
	// ThreatLevel rates combat capability, 0 defenseless to 10 dangerous.
	ThreatLevel uint8 `json:"threat_level"`
	// ValueUEC is the typical value of the hull itself.
	ValueUEC uint64 `json:"ship_value_uec"`
	// RequiresFreightElevator marks externally loaded hulls that can only
	// work cargo at terminals with freight elevator facilities.
	RequiresFreightElevator bool `json:"requires_freight_elevator"`
}

// freightElevatorLocations are terminal name fragments that indicate freight
// elevator facilities. Matched by substring on the lowercased terminal name.
var freightElevatorLocations = []string{
	"station",
	"everus harbor",
	"port tressler",
	"baijini point",
	"seraphim",
	"arc-l",
	"hur-l",
	"cru-l",
	"mic-l",
	"levski",
	"stanton gateway",
	"checkmate",
	"endgame",
	"gaslight",
	"ruin",
	"grim hex",
}

// HasFreightElevator reports whether a terminal can load externally carried
// cargo. Surface outposts generally cannot; stations and lagrange points can.
func HasFreightElevator(terminalName string) bool {
	lowered := strings.ToLower(terminalName)
	for _, loc := range freightElevatorLocations {
		if strings.Contains(lowered, loc) {
			return true
		}
	}
	return false
}

// NormalizeName folds a ship name for flexible matching:
// "Hull-C" -> "hull c", "C2  Hercules" -> "c2 hercules".
//
// This is the caller-side normalization layer; the item registry itself
// matches keys exactly and never does this.
func NormalizeName(name string) string {
	lowered := strings.ToLower(name)
	lowered = strings.NewReplacer("-", " ", "_", " ").Replace(lowered)
	return strings.Join(strings.Fields(lowered), " ")
}
