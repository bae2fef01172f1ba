package main

import (
	"context"
	"flag"
	"log"
	"time"

	"leadpath/internal/config"
	"leadpath/internal/database"
	"leadpath/internal/logger"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back every applied migration")
	configPath := flag.String("config", "", "path to config file (defaults to ./config.yaml or ./config/config.yaml)")
	flag.Parse()

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadConfigFile(*configPath)
	} else {
		cfg, err = config.LoadConfig()
	}
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	db, err := database.NewMigrateOracleDB(cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	m, err := database.NewEmbeddedMigrator(db)
	if err != nil {
		l.Fatal("Failed to load migrations", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if *down {
		err = m.Down(ctx)
	} else {
		err = m.Up(ctx)
	}
	if err != nil {
		l.Fatal("Migration failed", zap.Bool("down", *down), zap.Error(err))
	}

	version, err := m.Version(ctx)
	if err != nil {
		l.Fatal("Failed to read schema version", zap.Error(err))
	}
	l.Info("Migrations complete", zap.Uint("version", version))
}
