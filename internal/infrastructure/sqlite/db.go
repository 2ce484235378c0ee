// Package sqlite persists UEX data snapshots so route graphs can be rebuilt
// without network access.
package sqlite

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/corsair-sc/corsair/internal/log"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// DB owns the snapshot database connection.
type DB struct {
	db *sql.DB

	// Snapshots stores fetched terminal and commodity data.
	Snapshots *SnapshotRepository
}

// NewDB opens (creating if needed) the snapshot database at path and brings
// the schema up to date.
func NewDB(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	log.Debug(log.CatDB, "Opening database", "path", path)
	db, err := sql.Open("sqlite3", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	log.Info(log.CatDB, "Connected to database", "path", path)
	return &DB{db: db, Snapshots: newSnapshotRepository(db)}, nil
}

// Close releases the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

func runMigrations(db *sql.DB) error {
	source, err := iofs.New(migrationFiles, "migrations")
	if err != nil {
		return fmt.Errorf("load migration source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", newMigrationDriver(db))
	if err != nil {
		return fmt.Errorf("init migrator: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
