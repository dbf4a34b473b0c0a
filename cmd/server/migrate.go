package main

import (
	"github.com/fadilmartias/hr-backend/internal/config"
	"github.com/fadilmartias/hr-backend/internal/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create extensions and tables, then exit",
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		db, err := connectDB(config.LoadDBConfig(), config.LoadAppConfig(), log)
		if err != nil {
			return err
		}
		if err := repository.Migrate(db); err != nil {
			log.Error("migration failed", zap.Error(err))
			return err
		}
		log.Info("migration finished")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
