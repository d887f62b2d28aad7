// Package testdb provides migrated ledger databases for tests. It uses an
// in-memory SQLite database unless TEST_DATABASE_URI points at PostgreSQL.
package testdb

import (
	"context"
	"fmt"
	"os"

	"github.com/MikeRez0/payoutledger/internal/adapter/config"
	"github.com/MikeRez0/payoutledger/internal/adapter/storage"
)

const envDSN = "TEST_DATABASE_URI"

type TestDBInstance struct {
	DSN string
	DB  *storage.DB
}

func NewTestDBInstance() (*TestDBInstance, error) {
	dsn := os.Getenv(envDSN)
	if dsn == "" {
		dsn = ":memory:"
	}

	ctx := context.Background()
	db, err := storage.NewDBStorage(ctx, &config.Database{DSN: dsn})
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}

	if db.Dialect == storage.DialectPostgres {
		_, err = db.ExecContext(ctx, "TRUNCATE payouts, revenue, orders RESTART IDENTITY")
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("truncate: %w", err)
		}
	}

	return &TestDBInstance{DSN: dsn, DB: db}, nil
}

func (i *TestDBInstance) Down() {
	_ = i.DB.Close()
}
