package sqlite

import (
	"fmt"

	"github.com/isaacphi/gptsmith/internal/domain"
	"github.com/isaacphi/gptsmith/internal/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the database at dsn and runs migrations.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&domain.Assistant{}, &domain.AssistantFile{}); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return db, nil
}

// Initialize creates a SQLite assistant repository with the given database path
func Initialize(dbPath string) (repository.AssistantRepository, error) {
	db, err := Open(dbPath)
	if err != nil {
		return nil, err
	}
	return NewAssistantRepository(db), nil
}
