package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/services"
	"gorm.io/gorm"
)

func newReviewRouter(db *gorm.DB, userID uint) *gin.Engine {
	handler := NewReviewHandler(services.NewReviewService(db))

	router := gin.New()
	api := router.Group("/api", authAs(userID))
	api.PATCH("/reviews/:id", handler.UpdateReview)
	api.DELETE("/reviews/:id", handler.DeleteReview)
	return router
}

func createReview(t *testing.T, db *gorm.DB, userID uint) *models.Review {
	t.Helper()

	review := models.Review{
		UserID:           userID,
		RestaurantID:     models.DefaultRestaurantID,
		Title:            "Great dinner",
		Content:          "The tasting course was worth every minute of the wait.",
		TasteRating:      5,
		ServiceRating:    4,
		CleanRating:      5,
		AtmosphereRating: 3,
		ParkingRating:    5,
		RevisitRating:    5,
		AverageRating:    4.5,
		Recommended:      true,
	}
	require.NoError(t, db.Create(&review).Error)
	return &review
}

func TestUpdateReviewStatusCodes(t *testing.T) {
	db := openTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	review := createReview(t, db, owner.ID)

	body := `{"content":"Actually the service was slow and the food arrived cold."}`

	// Someone else's review answers 403, a missing one 404.
	router := newReviewRouter(db, other.ID)
	req := httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/reviews/%d", review.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var reloaded models.Review
	require.NoError(t, db.First(&reloaded, review.ID).Error)
	assert.Equal(t, review.Content, reloaded.Content)

	router = newReviewRouter(db, owner.ID)
	req = httptest.NewRequest(http.MethodPatch, "/api/reviews/99999", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodPatch, fmt.Sprintf("/api/reviews/%d", review.ID), strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteReviewStatusCodes(t *testing.T) {
	db := openTestDB(t)
	owner := createUser(t, db, "owner@example.com")
	other := createUser(t, db, "other@example.com")
	review := createReview(t, db, owner.ID)

	router := newReviewRouter(db, other.ID)
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reviews/%d", review.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Where("id = ?", review.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	router = newReviewRouter(db, owner.ID)
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/reviews/%d", review.ID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
