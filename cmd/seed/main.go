package main

import (
	"context"
	"flag"
	"log"

	"dashboard/internal/config"
	"dashboard/internal/database"
	"dashboard/internal/repository"
	"dashboard/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	months := flag.Int("months", cfg.SeedMonths, "number of months of month-end runs to generate")
	flag.Parse()

	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	seedService := service.NewSeedService(repository.NewSourceRepository(db), repository.NewTransactionManager(db))
	if _, err := seedService.Seed(context.Background(), *months); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}

	log.Println("Seed complete. Try:")
	log.Println("  GET http://localhost:" + cfg.Port + "/api/policy-count-by-month?months=12")
	log.Println("  GET http://localhost:" + cfg.Port + "/api/lapses-data")
}
