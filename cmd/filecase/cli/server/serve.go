package server

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/agent"
	config "github.com/InfoRubix/filecase-tracking-management-system/internal/config/server"
)

func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "serve",
		Aliases: []string{"agent"},
		Short:   "Start the file case HTTP service",
		Long: `Start the file case HTTP service.

Opens the configured record store, applies pending migrations and serves
the REST API until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return fmt.Errorf("failed to load server configuration: %w", err)
			}

			return agent.NewAgent(cfg).Serve(context.Background())
		},
	}

	return cmd
}
