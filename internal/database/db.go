package database

import (
	"fmt"

	"github.com/justsurfingit/job-board/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	log.Info().Msg("database connection established")
	return db, nil
}

// Migrate creates or updates the tables for every model.
func Migrate(db *gorm.DB) error {
	log.Info().Msg("running migrations")
	err := db.AutoMigrate(
		&models.Category{},
		&models.Company{},
		&models.Job{},
		&models.Attachment{},
		&models.JobEvent{},
		&models.UserProfile{},
		&models.Resume{},
		&models.AppliedJob{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
