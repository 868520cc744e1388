// ensure-admins is a one-shot bootstrap tool that guarantees the two default
// administrator accounts exist with freshly hashed default passwords.
// Intended to run as a deployment step, not as a service.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/diskominfo-bogor/sipmang/backend/internal/service"
	"github.com/diskominfo-bogor/sipmang/backend/internal/storage/pg"
	"github.com/diskominfo-bogor/sipmang/shared/config"
	"github.com/diskominfo-bogor/sipmang/shared/logger"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "backend/config", "path to folder with configs")
	flag.Parse()

	// Optional .env for local runs; absence is fine. PG_* values loaded
	// here override the private.yaml pg block inside MustLoad.
	_ = godotenv.Load()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	storage, err := pg.New(cfg)
	if err != nil {
		logger.Log.Error("failed to connect to db", "error", err)
		os.Exit(1)
	}
	defer storage.Cleanup()

	seeder := service.NewSeeder(storage)
	if err := seeder.EnsureAdmins(service.DefaultAdmins()); err != nil {
		logger.Log.Error("failed to ensure admins", "error", err)
		os.Exit(1)
	}

	logger.Log.Info("ensure admins completed")
}
