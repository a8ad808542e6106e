package main

import (
	"StorySphere/internal/api/config"
	"StorySphere/internal/pkg/database"
	"StorySphere/internal/pkg/logger"
	"StorySphere/internal/pkg/mongo"
	"context"
	log "log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Create StorySphere schemas and indexes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadConfig(); err != nil {
				return errors.Wrap(err, "load configuration")
			}
			logger.InitLogger()
			return nil
		},
	}
	root.AddCommand(sqlCmd(), mongoCmd())

	if err := root.Execute(); err != nil {
		log.Error("Migration failed", "err", err)
		os.Exit(1)
	}
}

func sqlCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sql",
		Short: "Auto-migrate relational tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			dbCfg := config.Cfg.DB
			db, err := database.NewGormDB(&dbCfg)
			if err != nil {
				return errors.Wrap(err, "connect database")
			}
			if err = database.Migrate(db); err != nil {
				return errors.Wrap(err, "auto migrate")
			}
			log.Info("SQL schema migrated", "tables", len(database.Models()))
			return nil
		},
	}
}

func mongoCmd() *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "mongo",
		Short: "Create notification collection indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := mongo.InitMongo(config.Cfg.Mongo)
			if err != nil {
				return errors.Wrap(err, "connect mongo")
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			defer func() {
				_ = db.Client().Disconnect(context.Background())
			}()

			if err = mongo.EnsureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "ensure indexes")
			}
			log.Info("Mongo indexes ensured", "collection", mongo.NotificationCollection)
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "index creation timeout")
	return cmd
}
