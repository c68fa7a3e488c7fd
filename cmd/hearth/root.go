package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/mongo"

	mongodb "github.com/hearthapp/hearth-api/internal/infrastructure/db/mongo"
	"github.com/hearthapp/hearth-api/internal/pkg/config"
	"github.com/hearthapp/hearth-api/pkg/logger"
)

// app carries what every subcommand shares once the root pre-run has loaded it.
type app struct {
	cfg *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "hearth",
		Short:         "hearth API server",
		Long:          "Accounts, direct messages, personal todos and a public quote board over a JSON API backed by MongoDB.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd.Context())
			if err != nil {
				return err
			}
			a.cfg = cfg
			logger.Init(logger.Options{
				Level:   cfg.LogLevel,
				Pretty:  cfg.IsDevelopment(),
				Service: "hearth",
			})
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.serve(cmd.Context())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API (default)",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.serve(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "indexes",
			Short: "Create the MongoDB indexes and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.indexes(cmd.Context())
			},
		},
		&cobra.Command{
			Use:   "users",
			Short: "List registered users",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.users(cmd.Context(), cmd)
			},
		},
	)

	return root
}

func (a *app) connectMongo(ctx context.Context) (*mongo.Client, *mongo.Database, error) {
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      a.cfg.Mongo.URI,
		Database: a.cfg.Mongo.Database,
		Timeout:  10 * time.Second,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect mongodb: %w", err)
	}
	return client, db, nil
}

func (a *app) indexes(ctx context.Context) error {
	log := logger.Component("cli")

	client, db, err := a.connectMongo(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = mongodb.Disconnect(context.Background(), client) }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", a.cfg.Mongo.Database).Msg("indexes ensured")
	return nil
}
