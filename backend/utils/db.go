package utils

import (
	"fmt"

	"skillcompass/backend/config"
	"skillcompass/backend/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.CareerPath{},
		&models.Roadmap{},
		&models.Skill{},
		&models.Resource{},
	)
	if err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	return db, nil
}
