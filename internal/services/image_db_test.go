package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablelink/restaurant-backend/internal/models"
	"gorm.io/gorm"
)

func seedImage(t *testing.T, db *gorm.DB, name string, primary bool) *models.RestaurantImage {
	t.Helper()

	image := models.RestaurantImage{
		RestaurantID: models.DefaultRestaurantID,
		FileName:     name,
		S3Key:        fmt.Sprintf("restaurant-images/%s", name),
		S3URL:        fmt.Sprintf("https://bucket.s3.amazonaws.com/restaurant-images/%s", name),
		ContentType:  "image/jpeg",
		Size:         1024,
		IsPrimary:    primary,
	}
	require.NoError(t, db.Create(&image).Error)
	return &image
}

func countPrimaries(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.RestaurantImage{}).
		Where("restaurant_id = ? AND is_primary = ?", models.DefaultRestaurantID, true).
		Count(&count).Error)
	return count
}

func TestSetPrimaryLeavesSingleWinner(t *testing.T) {
	db := newTestDB(t)
	svc := NewImageService(db, nil)

	// Two primaries should never exist, but the swap must repair the
	// state rather than preserve it.
	seedImage(t, db, "front.jpg", true)
	seedImage(t, db, "interior.jpg", true)
	target := seedImage(t, db, "terrace.jpg", false)

	updated, err := svc.SetPrimary(target.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)

	assert.Equal(t, int64(1), countPrimaries(t, db))

	var reloaded models.RestaurantImage
	require.NoError(t, db.Where("is_primary = ?", true).First(&reloaded).Error)
	assert.Equal(t, target.ID, reloaded.ID)
}

func TestSetPrimaryIdempotent(t *testing.T) {
	db := newTestDB(t)
	svc := NewImageService(db, nil)

	target := seedImage(t, db, "front.jpg", true)
	seedImage(t, db, "interior.jpg", false)

	updated, err := svc.SetPrimary(target.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsPrimary)
	assert.Equal(t, int64(1), countPrimaries(t, db))
}

func TestSetPrimaryUnknownImage(t *testing.T) {
	db := newTestDB(t)
	svc := NewImageService(db, nil)

	seedImage(t, db, "front.jpg", true)

	_, err := svc.SetPrimary(uuid.New())
	assert.ErrorIs(t, err, ErrImageNotFound)

	// The existing primary survives the failed swap.
	assert.Equal(t, int64(1), countPrimaries(t, db))
}
