package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrations embed.FS

func migrateUp(pool *sql.DB, embedded bool) error {
	dir := "migrations/postgres"
	name := "pgx5"

	var (
		driver database.Driver
		err    error
	)

	if embedded {
		dir = "migrations/sqlite"
		name = "sqlite"
		driver, err = migratesqlite.WithInstance(pool, &migratesqlite.Config{})
	} else {
		driver, err = migratepgx.WithInstance(pool, &migratepgx.Config{})
	}

	if err != nil {
		return fmt.Errorf("db - migrateUp - driver: %w", err)
	}

	src, err := iofs.New(migrations, dir)
	if err != nil {
		return fmt.Errorf("db - migrateUp - source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, name, driver)
	if err != nil {
		return fmt.Errorf("db - migrateUp - instance: %w", err)
	}

	// m.Close would also close the shared pool.
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("db - migrateUp - up: %w", err)
	}

	return nil
}
