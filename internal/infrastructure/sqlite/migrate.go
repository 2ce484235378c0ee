package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4/database"
)

// migrationDriver adapts an already-open connection to the migrate database
// interface. The stock sqlite3 driver registers a conflicting database/sql
// driver name, so the connection is wrapped here instead.
type migrationDriver struct {
	db *sql.DB
}

var _ database.Driver = (*migrationDriver)(nil)

func newMigrationDriver(db *sql.DB) *migrationDriver {
	return &migrationDriver{db: db}
}

func (d *migrationDriver) Open(string) (database.Driver, error) {
	return d, nil
}

func (d *migrationDriver) Close() error {
	// Connection lifetime is owned by DB.
	return nil
}

// Lock is a no-op: the database is a single-process local file.
func (d *migrationDriver) Lock() error { return nil }

func (d *migrationDriver) Unlock() error { return nil }

func (d *migrationDriver) Run(migration io.Reader) error {
	stmts, err := io.ReadAll(migration)
	if err != nil {
		return fmt.Errorf("read migration: %w", err)
	}
	if _, err := d.db.Exec(string(stmts)); err != nil {
		return fmt.Errorf("apply migration: %w", err)
	}
	return nil
}

func (d *migrationDriver) SetVersion(version int, dirty bool) error {
	tx, err := d.db.Begin()
	if err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM schema_migrations`); err != nil {
		_ = tx.Rollback()
		return err
	}
	if version >= 0 {
		if _, err := tx.Exec(`INSERT INTO schema_migrations (version, dirty) VALUES (?, ?)`, version, dirty); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (d *migrationDriver) Version() (int, bool, error) {
	if err := d.ensureVersionTable(); err != nil {
		return database.NilVersion, false, err
	}

	var (
		version int
		dirty   bool
	)
	err := d.db.QueryRow(`SELECT version, dirty FROM schema_migrations LIMIT 1`).Scan(&version, &dirty)
	if errors.Is(err, sql.ErrNoRows) {
		return database.NilVersion, false, nil
	}
	if err != nil {
		return database.NilVersion, false, err
	}
	return version, dirty, nil
}

func (d *migrationDriver) Drop() error {
	rows, err := d.db.Query(`SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return err
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, table := range tables {
		if _, err := d.db.Exec(`DROP TABLE ` + table); err != nil {
			return err
		}
	}
	return nil
}

func (d *migrationDriver) ensureVersionTable() error {
	_, err := d.db.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (version INTEGER NOT NULL, dirty INTEGER NOT NULL)`)
	return err
}
