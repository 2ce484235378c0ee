package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/corsair-sc/corsair/internal/uex"
)

// ErrNoSnapshot is returned when the store has never been written.
var ErrNoSnapshot = errors.New("no snapshot stored")

// SnapshotRepository stores full replacements of UEX terminal and commodity
// lists. Each save wipes the previous snapshot.
type SnapshotRepository struct {
	db *sql.DB
}

func newSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

const terminalColumns = `id, code, name, nickname, star_system_name, planet_name,
	moon_name, space_station_name, city_name, type, is_refuel`

// SaveTerminals replaces the stored terminal snapshot.
func (r *SnapshotRepository) SaveTerminals(ctx context.Context, terminals []uex.Terminal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin terminal snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM terminals`); err != nil {
		return fmt.Errorf("clear terminals: %w", err)
	}

	now := time.Now().Unix()
	for i := range terminals {
		t := &terminals[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO terminals (`+terminalColumns+`, fetched_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Code, t.Name, t.Nickname, t.StarSystemName, t.PlanetName,
			t.MoonName, t.SpaceStationName, t.CityName, t.Type, t.IsRefuel, now,
		)
		if err != nil {
			return fmt.Errorf("insert terminal %s: %w", t.Code, err)
		}
	}
	return tx.Commit()
}

// LoadTerminals returns the stored terminal snapshot.
// Returns ErrNoSnapshot if nothing was ever saved.
func (r *SnapshotRepository) LoadTerminals(ctx context.Context) ([]uex.Terminal, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+terminalColumns+` FROM terminals ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query terminals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var terminals []uex.Terminal
	for rows.Next() {
		var t uex.Terminal
		err := rows.Scan(
			&t.ID, &t.Code, &t.Name, &t.Nickname, &t.StarSystemName, &t.PlanetName,
			&t.MoonName, &t.SpaceStationName, &t.CityName, &t.Type, &t.IsRefuel,
		)
		if err != nil {
			return nil, fmt.Errorf("scan terminal row: %w", err)
		}
		terminals = append(terminals, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate terminal rows: %w", err)
	}
	if len(terminals) == 0 {
		return nil, ErrNoSnapshot
	}
	return terminals, nil
}

// SaveCommodities replaces the stored commodity snapshot.
func (r *SnapshotRepository) SaveCommodities(ctx context.Context, commodities []uex.Commodity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin commodity snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM commodities`); err != nil {
		return fmt.Errorf("clear commodities: %w", err)
	}

	now := time.Now().Unix()
	for i := range commodities {
		c := &commodities[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO commodities (id, code, name, kind, is_illegal, is_raw, is_harvestable, fetched_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			c.ID, c.Code, c.Name, c.Kind, c.IsIllegal, c.IsRaw, c.IsHarvestable, now,
		)
		if err != nil {
			return fmt.Errorf("insert commodity %s: %w", c.Code, err)
		}
	}
	return tx.Commit()
}

// LoadCommodities returns the stored commodity snapshot.
// Returns ErrNoSnapshot if nothing was ever saved.
func (r *SnapshotRepository) LoadCommodities(ctx context.Context) ([]uex.Commodity, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, code, name, kind, is_illegal, is_raw, is_harvestable FROM commodities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query commodities: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var commodities []uex.Commodity
	for rows.Next() {
		var c uex.Commodity
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Kind, &c.IsIllegal, &c.IsRaw, &c.IsHarvestable); err != nil {
			return nil, fmt.Errorf("scan commodity row: %w", err)
		}
		commodities = append(commodities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate commodity rows: %w", err)
	}
	if len(commodities) == 0 {
		return nil, ErrNoSnapshot
	}
	return commodities, nil
}

const tradeRouteColumns = `commodity_id, commodity_name, commodity_code,
	terminal_origin_id, terminal_origin_name, terminal_destination_id,
	terminal_destination_name, price_origin, price_destination,
	profit_per_unit, scu_origin, scu_destination`

// SaveTradeRoutes replaces the stored trade route snapshot.
func (r *SnapshotRepository) SaveTradeRoutes(ctx context.Context, routes []uex.TradeRoute) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin route snapshot: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM trade_routes`); err != nil {
		return fmt.Errorf("clear trade routes: %w", err)
	}

	now := time.Now().Unix()
	for i := range routes {
		rt := &routes[i]
		_, err := tx.ExecContext(ctx,
			`INSERT INTO trade_routes (`+tradeRouteColumns+`, fetched_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			rt.CommodityID, rt.CommodityName, rt.CommodityCode,
			rt.TerminalOriginID, rt.TerminalOriginName, rt.TerminalDestinationID,
			rt.TerminalDestinationName, rt.PriceOrigin, rt.PriceDestination,
			rt.ProfitPerUnit, rt.SCUOrigin, rt.SCUDestination, now,
		)
		if err != nil {
			return fmt.Errorf("insert trade route %s: %w", rt.CommodityCode, err)
		}
	}
	return tx.Commit()
}

// LoadTradeRoutes returns the stored trade route snapshot.
// Returns ErrNoSnapshot if nothing was ever saved.
func (r *SnapshotRepository) LoadTradeRoutes(ctx context.Context) ([]uex.TradeRoute, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+tradeRouteColumns+` FROM trade_routes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query trade routes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var routes []uex.TradeRoute
	for rows.Next() {
		var rt uex.TradeRoute
		err := rows.Scan(
			&rt.CommodityID, &rt.CommodityName, &rt.CommodityCode,
			&rt.TerminalOriginID, &rt.TerminalOriginName, &rt.TerminalDestinationID,
			&rt.TerminalDestinationName, &rt.PriceOrigin, &rt.PriceDestination,
			&rt.ProfitPerUnit, &rt.SCUOrigin, &rt.SCUDestination,
		)
		if err != nil {
			return nil, fmt.Errorf("scan trade route row: %w", err)
		}
		routes = append(routes, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trade route rows: %w", err)
	}
	if len(routes) == 0 {
		return nil, ErrNoSnapshot
	}
	return routes, nil
}

// LastFetched reports when the terminal snapshot was taken.
// Returns ErrNoSnapshot if nothing was ever saved.
func (r *SnapshotRepository) LastFetched(ctx context.Context) (time.Time, error) {
	var unix sql.NullInt64
	err := r.db.QueryRowContext(ctx, `SELECT MAX(fetched_at) FROM terminals`).Scan(&unix)
	if err != nil {
		return time.Time{}, fmt.Errorf("query snapshot age: %w", err)
	}
	if !unix.Valid {
		return time.Time{}, ErrNoSnapshot
	}
	return time.Unix(unix.Int64, 0), nil
}
