package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tablelink/restaurant-backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the portal's
// schema. The pool is pinned to a single connection so every query
// sees the same in-memory store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Reservation{},
		&models.Review{},
		&models.RestaurantImage{},
	))

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := models.User{
		Name:        "Test Customer",
		Email:       email,
		Password:    "password123!",
		PhoneNumber: "010-1234-5678",
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}
