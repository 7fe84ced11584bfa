// Command seed fills the database with demo players so local leaderboards
// have data to page through.
package main

import (
	"context"
	"log"

	"gorm.io/gorm"

	"xogame/internal/config"
	"xogame/internal/db"
	"xogame/internal/model"
	"xogame/internal/repository"
)

var demoPlayers = []model.User{
	{Name: "Anan", Email: "anan@example.com", GoogleID: "seed-anan", Scores: 7, MaxWinsStreak: 9},
	{Name: "Beam", Email: "beam@example.com", GoogleID: "seed-beam", Scores: 12, MaxWinsStreak: 12},
	{Name: "Chai", Email: "chai@example.com", GoogleID: "seed-chai", Scores: -2, MaxWinsStreak: 4},
	{Name: "Dao", Email: "dao@example.com", GoogleID: "seed-dao", Scores: 5, MaxWinsStreak: 5},
	{Name: "Fah", Email: "fah@example.com", GoogleID: "seed-fah", Scores: 0, MaxWinsStreak: 8},
	{Name: "Golf", Email: "golf@example.com", GoogleID: "seed-golf", Scores: 12, MaxWinsStreak: 15},
	{Name: "June", Email: "june@example.com", GoogleID: "seed-june", Scores: 3, MaxWinsStreak: 3},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	created, updated := 0, 0
	for _, player := range demoPlayers {
		existing, err := userRepo.FindByGoogleID(ctx, player.GoogleID)
		if err != nil && err != gorm.ErrRecordNotFound {
			log.Fatalf("Failed to check player %s: %v", player.Name, err)
		}

		if existing != nil {
			existing.Name = player.Name
			existing.Scores = player.Scores
			existing.MaxWinsStreak = player.MaxWinsStreak
			if err := userRepo.Update(ctx, existing); err != nil {
				log.Fatalf("Failed to update player %s: %v", player.Name, err)
			}
			updated++
			continue
		}

		player := player
		if err := userRepo.Create(ctx, &player); err != nil {
			log.Fatalf("Failed to create player %s: %v", player.Name, err)
		}
		created++
	}

	log.Printf("Seed completed: %d created, %d updated", created, updated)
}
