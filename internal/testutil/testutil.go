package testutil

import (
	"fmt"
	"strings"
	"testing"

	"focusdash-app/database"
	"focusdash-app/internal/domain/billing"
	"focusdash-app/internal/domain/notes"
	"focusdash-app/internal/domain/playlists"
	"focusdash-app/internal/domain/tasks"
	"focusdash-app/internal/domain/users"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB points the global database handle at a fresh in-memory sqlite
// database migrated with all domain models. The previous handle is restored
// when the test finishes.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared-cache memory database per test, so gorm's connection pool
	// sees the same data on every connection.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&users.User{},
		&billing.SubscriptionRecord{},
		&playlists.Playlist{},
		&tasks.Task{},
		&notes.Note{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	prev := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = prev })

	return db
}

// CreateTestUser inserts a user and returns it.
func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) users.User {
	t.Helper()

	user := users.User{Name: name, Email: email, AuthProvider: "local"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

// ActivateSubscription inserts an active subscription record for an email.
func ActivateSubscription(t *testing.T, db *gorm.DB, email, customerID, subscriptionID string) billing.SubscriptionRecord {
	t.Helper()

	rec := billing.SubscriptionRecord{
		Email:                email,
		StripeCustomerID:     customerID,
		StripeSubscriptionID: subscriptionID,
		Status:               billing.StatusActive,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("Failed to create subscription record: %v", err)
	}
	return rec
}
