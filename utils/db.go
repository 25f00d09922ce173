package utils

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Alexander2005-rgb/Quiz-application/config"
	"github.com/Alexander2005-rgb/Quiz-application/models"
)

// InitDB opens the Postgres connection and migrates the schema.
// TranslateError turns unique-constraint violations into
// gorm.ErrDuplicatedKey, which the storage layer reports as a conflict.
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Result{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
