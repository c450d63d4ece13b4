package main

import (
	"github.com/spf13/cobra"

	"github.com/deppfellow/movies-api/internal/database"
)

func newMigrateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := database.Migrate(cmd.Context(), &a.log, a.cfg); err != nil {
				a.log.Error().Err(err).Msg("failed to migrate database")
				return err
			}
			return nil
		},
	}
}
