package database

import (
	"fmt"
	"log"
	"os"

	"focusdash-app/internal/domain/billing"
	"focusdash-app/internal/domain/notes"
	"focusdash-app/internal/domain/playlists"
	"focusdash-app/internal/domain/tasks"
	"focusdash-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := DB.AutoMigrate(
		&users.User{},
		&billing.SubscriptionRecord{},
		&playlists.Playlist{},
		&tasks.Task{},
		&notes.Note{},
	); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}
