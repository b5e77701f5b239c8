// Package store is the data-store client: table-scoped list, insert and
// delete against the hosted backend. Every call hits the remote store; there
// is no caching, retrying or transaction handling.
package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/yukikurage/taskforce/internal/config"
	"github.com/yukikurage/taskforce/internal/database"
)

// Client is implemented by RESTClient and GormClient.
type Client interface {
	// List fills dest (a pointer to a slice) with every row of table,
	// newest first.
	List(ctx context.Context, table string, dest any) error

	// Insert adds row to table. row must be a pointer; it is updated with
	// the columns the store assigned (id, created_at).
	Insert(ctx context.Context, table string, row any) error

	// Delete removes the row with the given id. Deleting a missing row is
	// not an error.
	Delete(ctx context.Context, table string, id uint64) error

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}

// storeAssignedColumns are never sent on insert.
var storeAssignedColumns = []string{"id", "created_at", "updated_at"}

// New builds the client selected by cfg.StoreDriver. The returned close
// function releases the underlying connection pool, if any.
func New(cfg *config.Config) (Client, func() error, error) {
	switch cfg.StoreDriver {
	case config.DriverREST:
		client := NewRESTClient(cfg.SupabaseURL, cfg.SupabaseKey, WithHTTPClient(&http.Client{}))
		return client, func() error { return nil }, nil
	case config.DriverPostgres, config.DriverMySQL, config.DriverSQLite:
		db, err := database.Connect(cfg)
		if err != nil {
			return nil, nil, err
		}
		if cfg.AutoMigrate {
			if err := database.Migrate(db); err != nil {
				return nil, nil, err
			}
			if err := database.AddIndexes(db); err != nil {
				return nil, nil, err
			}
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get database handle: %w", err)
		}
		return NewGormClient(db), sqlDB.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
