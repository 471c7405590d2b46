package main

import (
	"context"
	"os"

	"github.com/logitrack/logitrack/migrations"
	"github.com/logitrack/logitrack/pkg/config"
	"github.com/logitrack/logitrack/pkg/logger"
	"github.com/logitrack/logitrack/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New(cfg)
	if err := migrator.RunMigrations(context.Background(), cfg.DatabaseURL, migrations.FS(), log); err != nil {
		log.Error("migrations failed", "error", err)
		os.Exit(1)
	}
}
