package sqlite

import (
	"context"
	"fmt"
	"mindmate/mindmate/config"
	"mindmate/mindmate/sources/sqlite/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens the SQLite file and applies the schema. This is the only
// place schema is defined; running it on every startup is safe.
func NewDatabase(ctx context.Context, cfg config.Config) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath+"?_foreign_keys=on"), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.WithContext(ctx).
		AutoMigrate(
			&models.User{},
			&models.MoodEntry{},
			&models.ScreeningResult{},
			&models.ChatTurn{},
		)
	if err != nil {
		return nil, fmt.Errorf("failed to auto-migrate: %w", err)
	}

	return &Database{DB: db}, nil
}

func (db *Database) Close() {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
