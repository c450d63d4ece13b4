package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/deppfellow/movies-api/internal/config"
	"github.com/deppfellow/movies-api/internal/logger"
)

// app holds what every subcommand needs once configuration is loaded.
type app struct {
	cfg           *config.Config
	log           zerolog.Logger
	loggerService *logger.LoggerService
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "movies",
		Short:         "Movies catalogue REST API",
		Long:          "movies serves a CRUD API for movies backed by PostgreSQL.\nConfiguration is read from MOVIES_* environment variables (and a .env file).",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.loggerService = logger.NewLoggerService(cfg.Observability)
			a.log = logger.NewLoggerWithService(cfg.Observability, a.loggerService)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.loggerService != nil {
				a.loggerService.Shutdown()
			}
		},
	}

	root.AddCommand(newServeCmd(a), newMigrateCmd(a))

	return root
}
