package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/config"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/logger"
	"github.com/Renagang21/o4o-platform-sub111/internal/infrastructure/persistence"
	"go.uber.org/zap"
)

func main() {
	var (
		logLevel string
		confirm  bool
	)
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&confirm, "confirm", false, "Confirm destructive commands")
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}
	command := args[0]

	log, err := logger.New(logger.Config{Level: logLevel, Format: "console", Output: "stdout"})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	db, err := persistence.NewDatabase(&cfg.Database, persistence.Options{
		Logger: logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel), cfg.Telemetry.DBSlowQueryThresh),
	})
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		_ = db.Close()
	}()

	log.Info("Migration CLI started",
		zap.String("command", command),
		zap.String("database", cfg.Database.DBName),
	)

	switch command {
	case "up":
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Migration up failed", zap.Error(err))
		}
		log.Info("Schema is up to date")

	case "status":
		status, err := db.SchemaStatus()
		if err != nil {
			log.Fatal("Failed to read schema status", zap.Error(err))
		}
		missing := 0
		for _, s := range status {
			state := "ok"
			if !s.Exists {
				state = "missing"
				missing++
			}
			fmt.Printf("  %-32s %s\n", s.Table, state)
		}
		log.Info("Schema status", zap.Int("tables", len(status)), zap.Int("missing", missing))

	case "drop":
		if !confirm {
			log.Fatal("Drop cancelled. Use 'migrate -confirm drop' to confirm.")
		}
		if cfg.App.Env == "production" {
			log.Fatal("Refusing to drop tables in production")
		}
		log.Warn("Dropping every ledger table")
		if err := db.DropAll(); err != nil {
			log.Fatal("Drop failed", zap.Error(err))
		}

	default:
		log.Error("Unknown command", zap.String("command", command))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Ledger schema tool

Usage:
  migrate [flags] <command>

Commands:
  up        Create or update every ledger table and index
  status    Show which ledger tables exist
  drop      Drop every ledger table (requires -confirm, refused in production)

Flags:
  -log-level string   Log level: debug, info, warn, error (default: info)
  -confirm            Confirm destructive commands

Configuration is read from config.toml and LEDGER_* environment variables.`)
}
