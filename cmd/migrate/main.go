package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/davidmokos/coolify/internal/platform/config"
	"github.com/davidmokos/coolify/internal/platform/database"
	"github.com/davidmokos/coolify/internal/platform/repositories"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Backfill: teams created before a channel existed get their default
	// settings rows here. Per-team failures are logged and skipped so one bad
	// team cannot block the rest.
	teamRepo := repositories.NewTeamRepository(db)
	settingsRepo := repositories.NewSettingsRepository(db)

	teams, err := teamRepo.List()
	if err != nil {
		log.Fatalf("Failed to list teams: %v", err)
	}

	for _, team := range teams {
		if err := settingsRepo.EnsureDefaults(team.ID); err != nil {
			log.Printf("Failed to create notification settings for team %s: %v", team.ID, err)
		}
	}

	fmt.Println("Migration completed successfully")
}
