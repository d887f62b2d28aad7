package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type DB struct {
	*sql.DB
	pool         *pgxpool.Pool
	dsn          string
	Dialect      Dialect
	QueryBuilder *squirrel.StatementBuilderType
}

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsDir embed.FS

// DialectOf picks the database engine for a DSN. Postgres URLs select PostgreSQL,
// anything else is treated as a SQLite file.
func DialectOf(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}
	return DialectSQLite
}

func NewDBStorage(ctx context.Context, config *config.Database) (*DB, error) {
	switch DialectOf(config.DSN) {
	case DialectPostgres:
		return newPostgres(ctx, config.DSN)
	default:
		return newSQLite(ctx, strings.TrimPrefix(config.DSN, "sqlite://"))
	}
}

func newPostgres(ctx context.Context, dsn string) (*DB, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create a connection pool: %w", err)
	}

	err = pool.Ping(ctx)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &DB{
		DB:           stdlib.OpenDBFromPool(pool),
		pool:         pool,
		dsn:          dsn,
		Dialect:      DialectPostgres,
		QueryBuilder: &psql,
	}, nil
}

func newSQLite(ctx context.Context, path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// One writer at a time; this also keeps an in-memory database alive on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{"PRAGMA foreign_keys=ON", "PRAGMA busy_timeout=5000"}
	if path != ":memory:" {
		pragmas = append(pragmas, "PRAGMA journal_mode=WAL")
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			db.Close()
			return nil, fmt.Errorf("%s: %w", p, err)
		}
	}

	qb := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

	return &DB{
		DB:           db,
		dsn:          path,
		Dialect:      DialectSQLite,
		QueryBuilder: &qb,
	}, nil
}

func (db *DB) RunMigrations() error {
	d, err := iofs.New(migrationsDir, "migrations/"+string(db.Dialect))
	if err != nil {
		return fmt.Errorf("failed to return an iofs driver: %w", err)
	}

	var m *migrate.Migrate
	switch db.Dialect {
	case DialectPostgres:
		m, err = migrate.NewWithSourceInstance("iofs", d, db.dsn)
	default:
		// The driver must not own the handle: closing it would close db.DB.
		driver, derr := sqlite.WithInstance(db.DB, &sqlite.Config{})
		if derr != nil {
			return fmt.Errorf("failed to get a sqlite migrate driver: %w", derr)
		}
		m, err = migrate.NewWithInstance("iofs", d, "sqlite", driver)
	}
	if err != nil {
		return fmt.Errorf("failed to get a new migrate instance: %w", err)
	}
	if err := m.Up(); err != nil {
		if !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("failed to apply migrations to the DB: %w", err)
		}
	}
	if db.Dialect == DialectPostgres {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			return fmt.Errorf("failed to close migrate instance: %w", err)
		}
	}
	return nil
}

func (db *DB) Close() error {
	err := db.DB.Close()
	if db.pool != nil {
		db.pool.Close()
	}
	return err
}
