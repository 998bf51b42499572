package database

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/lib/pq"           // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"brasserie/internal/models"
)

// Open connects to the configured database and returns the handle.
// The handle is opened once at startup and passed into each store;
// nothing in the service reaches for a package-level connection.
func Open(dialect, dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialect, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.DB().SetMaxIdleConns(10)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Hour)

	return db, nil
}

// Migrate creates or updates the schema for all persisted entities,
// including the compound unique index on the menu (day, week) slot.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Menu{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderLineItem{},
		&models.Suggestion{},
	).Error
}
