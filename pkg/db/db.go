// Package db opens the persistence pool backing the ETag store, the
// configure-language map and the local configuration store.
package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	// Drivers registered under "pgx" and "sqlite".
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	_defaultMaxPoolSize  = 1
	_defaultConnAttempts = 3
	_defaultConnTimeout  = time.Second

	// DefaultEmbeddedPath is used when no database URL is configured.
	DefaultEmbeddedPath = "redfish-sync.db"

	driverSQLite   = "sqlite"
	driverPostgres = "pgx"
)

// ErrNoURL is returned when neither a URL nor an embedded path is available.
var ErrNoURL = errors.New("db - New - no database url")

// OpenFunc matches sql.Open.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// SQL -.
type SQL struct {
	Builder    sq.StatementBuilderType
	Pool       *sql.DB
	IsEmbedded bool

	maxPoolSize       int
	connAttempts      int
	connTimeout       time.Duration
	enableForeignKeys bool
	skipMigrations    bool
}

// New -.
func New(url string, open OpenFunc, opts ...Option) (*SQL, error) {
	db := &SQL{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
	}

	for _, opt := range opts {
		opt(db)
	}

	driver := driverPostgres
	dsn := url

	if !isPostgres(url) {
		driver = driverSQLite
		db.IsEmbedded = true

		if dsn == "" {
			dsn = DefaultEmbeddedPath
		}
	}

	pool, err := open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("db - New - open: %w", err)
	}

	db.Pool = pool

	if db.IsEmbedded {
		// sqlite serializes writers; in-memory databases exist per connection.
		db.Pool.SetMaxOpenConns(1)
		db.Builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	} else {
		db.Pool.SetMaxOpenConns(db.maxPoolSize)
		db.Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	if err = db.ping(); err != nil {
		_ = db.Pool.Close()

		return nil, err
	}

	if db.IsEmbedded && db.enableForeignKeys {
		if _, err = db.Pool.Exec("PRAGMA foreign_keys = ON"); err != nil {
			_ = db.Pool.Close()

			return nil, fmt.Errorf("db - New - foreign keys: %w", err)
		}
	}

	if !db.skipMigrations {
		if err = migrateUp(db.Pool, db.IsEmbedded); err != nil {
			_ = db.Pool.Close()

			return nil, err
		}
	}

	return db, nil
}

func (db *SQL) ping() error {
	var err error

	for attempt := 1; attempt <= db.connAttempts; attempt++ {
		if err = db.Pool.Ping(); err == nil {
			return nil
		}

		time.Sleep(db.connTimeout)
	}

	return fmt.Errorf("db - New - ping after %d attempts: %w", db.connAttempts, err)
}

// Close -.
func (db *SQL) Close() {
	if db.Pool != nil {
		_ = db.Pool.Close()
	}
}

func isPostgres(url string) bool {
	return strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://")
}
