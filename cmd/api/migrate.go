package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwaters/ec-api/internal/config"
	"github.com/mwaters/ec-api/internal/database"
	"github.com/mwaters/ec-api/internal/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		loggerService, err := logger.NewLoggerService(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger service: %w", err)
		}
		defer loggerService.Shutdown()

		log := logger.New(cfg, loggerService)

		return database.Migrate(cmd.Context(), log, cfg)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
