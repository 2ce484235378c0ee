package uex

// envelope is the standard UEX response wrapper.
type envelope[T any] struct {
	Data T `json:"data"`
}

// Commodity is a tradeable commodity.
type Commodity struct {
	ID            int64  `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Kind          string `json:"kind"`
	IsIllegal     bool   `json:"is_illegal"`
	IsRaw         bool   `json:"is_raw"`
	IsHarvestable bool   `json:"is_harvestable"`
}

// Terminal is a trade location where commodities are bought or sold.
type Terminal struct {
	ID               int64  `json:"id"`
	Code             string `json:"code"`
	Name             string `json:"name"`
	Nickname         string `json:"nickname,omitempty"`
	StarSystemName   string `json:"star_system_name"`
	PlanetName       string `json:"planet_name"`
	MoonName         string `json:"moon_name"`
	SpaceStationName string `json:"space_station_name"`
	CityName         string `json:"city_name"`
	Type             string `json:"type"`
	IsRefuel         bool   `json:"is_refuel"`
}

// LocationString renders the terminal's position as "System > Planet > ...".
func (t *Terminal) LocationString() string {
	parts := []string{t.StarSystemName}
	for _, p := range []string{t.PlanetName, t.MoonName, t.SpaceStationName, t.CityName} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += " > " + p
	}
	return out
}

// TradeRoute is a buy-here-sell-there profit opportunity.
type TradeRoute struct {
	CommodityID             int64   `json:"id_commodity"`
	CommodityName           string  `json:"commodity_name"`
	CommodityCode           string  `json:"commodity_code"`
	TerminalOriginID        int64   `json:"id_terminal_origin"`
	TerminalOriginName      string  `json:"terminal_origin_name"`
	TerminalDestinationID   int64   `json:"id_terminal_destination"`
	TerminalDestinationName string  `json:"terminal_destination_name"`
	PriceOrigin             float64 `json:"price_origin"`
	PriceDestination        float64 `json:"price_destination"`
	ProfitPerUnit           float64 `json:"profit_per_unit"`
	SCUOrigin               float64 `json:"scu_origin"`
	SCUDestination          float64 `json:"scu_destination"`
}

// ProfitForSCU calculates profit for a given cargo capacity, bounded by what
// origin supply and destination demand allow.
func (r *TradeRoute) ProfitForSCU(scu float64) float64 {
	available := min(r.SCUOrigin, r.SCUDestination, scu)
	return available * r.ProfitPerUnit
}

// MaxProfitableSCU is the largest load the route supports.
func (r *TradeRoute) MaxProfitableSCU() float64 {
	return min(r.SCUOrigin, r.SCUDestination)
}
