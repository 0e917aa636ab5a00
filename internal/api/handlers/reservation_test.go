package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/pkg/logger"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Init()
	m.Run()
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Reservation{}, &models.Review{}))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email string) *models.User {
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

// authAs stands in for the JWT middleware during handler tests.
func authAs(userID uint) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}

type stubEmailSender struct{}

func (stubEmailSender) SendReservationConfirmation(*models.Reservation) error { return nil }
func (stubEmailSender) SendReservationCancellation(*models.Reservation) error { return nil }

type stubSMSSender struct{}

func (stubSMSSender) SendSMS(to, content string) error { return nil }

func newReservationRouter(db *gorm.DB, userID uint) *gin.Engine {
	handler := NewReservationHandler(
		services.NewReservationService(db),
		services.NewNotificationService(stubEmailSender{}, stubSMSSender{}),
	)

	router := gin.New()
	api := router.Group("/api", authAs(userID))
	api.POST("/reservations", handler.CreateReservation)
	api.GET("/reservations", handler.ListReservations)
	api.DELETE("/reservations/:id", handler.CancelReservation)
	return router
}

func confirmedReservation(t *testing.T, db *gorm.DB, userID uint) *models.Reservation {
	t.Helper()

	r := models.Reservation{
		UserID:       userID,
		RestaurantID: models.DefaultRestaurantID,
		CustomerName: "Test Customer",
		Email:        "customer@example.com",
		PhoneNumber:  "010-1234-5678",
		VisitDate:    "2030-06-15",
		VisitTime:    "18:00",
		PartySize:    2,
		Status:       models.ReservationConfirmed,
	}
	require.NoError(t, db.Create(&r).Error)
	return &r
}

func TestCancelReservationRecordsNotificationFlags(t *testing.T) {
	db := openTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	reservation := confirmedReservation(t, db, owner.ID)

	router := newReservationRouter(db, owner.ID)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reservations/%d", reservation.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	// Delivery outcomes must be written back, same as on creation.
	var reloaded models.Reservation
	require.NoError(t, db.First(&reloaded, reservation.ID).Error)
	assert.Equal(t, models.ReservationCancelled, reloaded.Status)
	assert.True(t, reloaded.EmailNotified)
	assert.True(t, reloaded.SMSNotified)
}

func TestCancelReservationOwnershipStatusCodes(t *testing.T) {
	db := openTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	reservation := confirmedReservation(t, db, owner.ID)

	router := newReservationRouter(db, other.ID)

	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reservations/%d", reservation.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var reloaded models.Reservation
	require.NoError(t, db.First(&reloaded, reservation.ID).Error)
	assert.Equal(t, models.ReservationConfirmed, reloaded.Status)

	req = httptest.NewRequest(http.MethodDelete, "/api/reservations/99999", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateReservationStorageFailureAnswers500(t *testing.T) {
	db := openTestDB(t)
	user := createUser(t, db, "customer@example.com")
	require.NoError(t, db.Migrator().DropTable(&models.Reservation{}))

	router := newReservationRouter(db, user.ID)

	body, err := json.Marshal(services.CreateReservationRequest{
		CustomerName: "Test Customer",
		Email:        "customer@example.com",
		PhoneNumber:  "010-1234-5678",
		VisitDate:    "2030-06-15",
		VisitTime:    "18:00",
		PartySize:    2,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
