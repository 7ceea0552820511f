package agent

import (
	"context"
	"fmt"

	"github.com/mwantia/fabric/pkg/container"

	config "github.com/InfoRubix/filecase-tracking-management-system/internal/config/server"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/store"
)

// OpenStore creates and connects the record store selected by cfg.
func OpenStore(ctx context.Context, cfg config.StoreServerConfig) (store.RecordStore, error) {
	var s store.RecordStore

	switch cfg.Type {
	case "sqlite":
		sqlite, err := store.NewSQLiteStore(store.SQLiteConfig{Path: cfg.SQLite.Path})
		if err != nil {
			return nil, err
		}
		s = sqlite
	case "sheets":
		sheets, err := store.NewSheetsStore(ctx, store.SheetsConfig{
			SpreadsheetID:   cfg.Sheets.SpreadsheetID,
			CredentialsFile: cfg.Sheets.CredentialsFile,
			Endpoint:        cfg.Sheets.Endpoint,
		})
		if err != nil {
			return nil, err
		}
		s = sheets
	case "memory":
		s = store.NewMemoryStore()
	default:
		return nil, fmt.Errorf("unknown store type '%s'", cfg.Type)
	}

	if err := s.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect %s store: %w", cfg.Type, err)
	}
	return s, nil
}

// registerStore adds s to the container under the RecordStore interface.
func registerStore(sc *container.ServiceContainer, s store.RecordStore) error {
	switch s.(type) {
	case *store.SQLiteStore:
		return container.Register[store.SQLiteStore](sc,
			container.With[store.RecordStore](),
			container.WithInstance(s))
	case *store.SheetsStore:
		return container.Register[store.SheetsStore](sc,
			container.With[store.RecordStore](),
			container.WithInstance(s))
	case *store.MemoryStore:
		return container.Register[store.MemoryStore](sc,
			container.With[store.RecordStore](),
			container.WithInstance(s))
	default:
		return fmt.Errorf("unsupported record store %T", s)
	}
}
