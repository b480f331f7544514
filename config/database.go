package config

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// ConnectDatabase establishes the database connection. A PostgreSQL URL in
// DATABASE_URL takes precedence; without one the dashboard falls back to a
// local SQLite file, which is all the single-restaurant deployment needs.
func ConnectDatabase() error {
	databaseURL := os.Getenv("DATABASE_URL")

	var err error
	if databaseURL != "" {
		DB, err = gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		log.Println("Database connection established (postgres)")
		return nil
	}

	dbFile := os.Getenv("SQLITE_PATH")
	if dbFile == "" {
		dbFile = "rileys_diner.db"
	}
	log.Println("DATABASE_URL not set, using local SQLite database:", dbFile)

	DB, err = gorm.Open(sqlite.Open(dbFile), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to open sqlite database: %w", err)
	}

	log.Println("Database connection established (sqlite)")
	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (primarily for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
