package main

import (
	"log"

	"github.com/mstolarz/wellness-tracker/internal/config"
	"github.com/mstolarz/wellness-tracker/internal/model"
	"github.com/mstolarz/wellness-tracker/internal/seed"
	"github.com/mstolarz/wellness-tracker/internal/wellness"
)

func main() {
	cfg := config.Load()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var predictor wellness.Predictor
	if lp, err := model.NewLinearPredictor(cfg.ModelPath); err != nil {
		log.Printf("Model artifact not loaded (%v), seeded scores will use category averages", err)
	} else {
		predictor = lp
	}

	engine := wellness.NewEngine(wellness.DefaultConfig(), predictor)

	if err := seed.Run(db, engine); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seed completed!")
	log.Println("Demo accounts use the password \"wellness-demo\"; admin@example.com is an admin")
}
