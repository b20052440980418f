package main

import (
	"log"

	"startup-companion-be/internal/config"
	"startup-companion-be/internal/model"
	"startup-companion-be/pkg/database"

	"github.com/fatih/color"
)

func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}

	color.Cyan("Running migrations...")

	err = db.AutoMigrate(
		&model.User{},
		&model.BusinessProfile{},
		&model.ChatSession{},
		&model.AiResponse{},
		&model.BizDocument{},
		&model.SavedDocument{},
	)
	if err != nil {
		color.Red("Migration failed: %v", err)
		log.Fatal(err)
	}

	color.Green("✅ Migrations completed successfully")
}
