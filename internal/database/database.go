package database

import (
	"github.com/tablelink/restaurant-backend/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func Init(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate schemas
	err = db.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.Reservation{},
		&models.Review{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.RestaurantImage{},
		&models.Event{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
