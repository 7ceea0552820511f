package db

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/agent"
	config "github.com/InfoRubix/filecase-tracking-management-system/internal/config/server"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/migrations"
	"github.com/InfoRubix/filecase-tracking-management-system/pkg/db/store"
)

func NewDatabaseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Record store maintenance",
	}

	cmd.AddCommand(newMigrateCommand())
	cmd.AddCommand(newStatusCommand())
	cmd.AddCommand(newRollbackCommand())

	return cmd
}

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables or sheets in the configured store",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			s, err := agent.OpenStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.Migrate(ctx); err != nil {
				return err
			}

			cmd.Printf("Store '%s' is up to date\n", cfg.Store.Type)
			return nil
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "List schema migrations of the sqlite store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(ctx context.Context, m *migrations.Migrator) error {
				statuses, err := m.Status(ctx)
				if err != nil {
					return err
				}

				for _, status := range statuses {
					state := "pending"
					if status.Applied {
						state = "applied"
					}
					cmd.Printf("%3d  %-8s %s\n", status.Version, state, status.Description)
				}
				return nil
			})
		},
	}
}

func newRollbackCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Revert the last applied migration of the sqlite store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withMigrator(cmd, func(ctx context.Context, m *migrations.Migrator) error {
				status, err := m.Rollback(ctx)
				if err != nil {
					return err
				}

				cmd.Printf("Rolled back %d (%s)\n", status.Version, status.Description)
				return nil
			})
		},
	}
}

// withMigrator opens the sqlite store without migrating it, since the
// versioned history only exists for that backend.
func withMigrator(cmd *cobra.Command, fn func(context.Context, *migrations.Migrator) error) error {
	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load server configuration: %w", err)
	}

	if cfg.Store.Type != "sqlite" {
		return fmt.Errorf("migration history requires the sqlite store, got '%s'", cfg.Store.Type)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := store.NewSQLiteStore(store.SQLiteConfig{Path: cfg.Store.SQLite.Path})
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Connect(ctx); err != nil {
		return err
	}

	return fn(ctx, migrations.NewMigrator(s.DB()))
}
