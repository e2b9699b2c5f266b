package store

import (
	"context"
	"fmt"

	"github.com/idilsaglam/organizer/internal/store/jsonstore"
	"github.com/idilsaglam/organizer/internal/store/sqlitestore"
)

const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Backends lists the accepted backend names.
func Backends() []string { return []string{BackendJSON, BackendSQLite} }

// OpenKV opens the configured backend. dataDir holds the JSON files;
// sqlitePath is only used by the sqlite backend.
func OpenKV(ctx context.Context, backend, dataDir, sqlitePath string) (KV, error) {
	switch backend {
	case BackendJSON, "":
		s, err := jsonstore.New(dataDir)
		if err != nil {
			return nil, fmt.Errorf("open json store: %w", err)
		}
		return s, nil
	case BackendSQLite:
		s, err := sqlitestore.Open(ctx, sqlitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown backend %q", backend)
}
