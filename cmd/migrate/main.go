package main

import (
	"log"

	"remitmatch/internal/config"
	"remitmatch/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := db.Migrate(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}
	log.Println("migrations applied")
}
