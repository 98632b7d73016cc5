package main

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/HeroVerse_Go/migrations"
)

const migrationsDir = "migrations"

type MigrateCommand struct{}

func (c *MigrateCommand) Name() string {
	return "migrate"
}

func (c *MigrateCommand) Description() string {
	return "Manage database migrations (up, down, down-to, status, create)"
}

func (c *MigrateCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: up, down, down-to, status, create")
	}
	subcmd := args[0]

	// create writes a file into the source tree and needs no connection
	if subcmd == "create" {
		if len(args) < 2 {
			return fmt.Errorf("migration name required for create")
		}
		migrationType := "sql"
		if len(args) > 2 {
			migrationType = args[2]
		}
		goose.SetSequential(true)
		return goose.Create(nil, migrationsDir, args[1], migrationType)
	}

	db, err := sql.Open("pgx", databaseURL())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	switch subcmd {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return err
		}
		printResults(results)
		PrintSuccess("Database is up to date")
	case "down":
		result, err := provider.Down(ctx)
		if err != nil {
			return err
		}
		printResults([]*goose.MigrationResult{result})
	case "down-to":
		if len(args) < 2 {
			return fmt.Errorf("target version required for down-to")
		}
		version, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		results, err := provider.DownTo(ctx, version)
		if err != nil {
			return err
		}
		printResults(results)
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		PrintHeader("Migration status")
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("  %05d  %-40s %s\n", s.Source.Version, s.Source.Path, applied)
		}
	default:
		return fmt.Errorf("unknown migrate subcommand: %s", subcmd)
	}
	return nil
}

func printResults(results []*goose.MigrationResult) {
	for _, r := range results {
		if r == nil {
			continue
		}
		PrintInfo("%s %s (%v)", r.Direction, r.Source.Path, r.Duration)
	}
}
