package db

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/tsenart/nap"
)

//go:embed schema/*.sql
var embedFiles embed.FS

// Open opens a sqlite3 database at dsn and brings its schema up to date.
func Open(dsn string) (*nap.DB, error) {
	conn, err := nap.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	if err := Migrate(conn.Master()); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return conn, nil
}

// Migrate run sqlite3 migration with embed schemes.
func Migrate(db *sql.DB) error {
	d, err := iofs.New(embedFiles, "schema")
	if err != nil {
		return err
	}

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	return nil
}
