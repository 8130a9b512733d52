package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/FichasBot_Go/internal/bootstrap"
	"github.com/osse101/FichasBot_Go/internal/config"
	"github.com/osse101/FichasBot_Go/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|reset]",
	Short:     "Run Postgres ledger migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{database.MigrateUp, database.MigrateDown, database.MigrateStatus, database.MigrateReset},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	command := database.MigrateUp
	if len(args) == 1 {
		command = args[0]
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	bootstrap.SetupLogger(cfg, os.Stderr)

	ctx := cmd.Context()
	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		return err
	}
	defer pool.Close()

	return database.RunMigrations(ctx, pool, command)
}
