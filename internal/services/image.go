package services

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"github.com/tablelink/restaurant-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrImageNotFound = errors.New("image not found")

type ImageService struct {
	db        *gorm.DB
	s3Service *S3Service
}

func NewImageService(db *gorm.DB, s3Service *S3Service) *ImageService {
	return &ImageService{db: db, s3Service: s3Service}
}

func (s *ImageService) GetImages() ([]models.RestaurantImage, error) {
	var images []models.RestaurantImage
	err := s.db.
		Where("restaurant_id = ?", models.DefaultRestaurantID).
		Order("is_primary DESC, created_at DESC").
		Find(&images).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch images", ErrPersistence)
	}
	return images, nil
}

func (s *ImageService) UploadImage(fileHeader *multipart.FileHeader, caption string) (*models.RestaurantImage, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New("failed to open uploaded file")
	}
	defer file.Close()

	result, err := s.s3Service.UploadImage(file, fileHeader)
	if err != nil {
		return nil, err
	}

	image := models.RestaurantImage{
		RestaurantID: models.DefaultRestaurantID,
		FileName:     result.FileName,
		S3Key:        result.Key,
		S3URL:        result.URL,
		ContentType:  result.ContentType,
		Size:         result.Size,
		Caption:      utils.SanitizeString(caption),
	}

	if err := s.db.Create(&image).Error; err != nil {
		// Row is the source of truth; drop the orphaned object.
		if delErr := s.s3Service.DeleteImage(result.Key); delErr != nil {
			logger.Error("failed to clean up S3 object after insert failure: ", delErr)
		}
		return nil, fmt.Errorf("%w: failed to save image record", ErrPersistence)
	}

	return &image, nil
}

// SetPrimary makes the target image the restaurant's single primary.
// The unset-all and set-one happen in one transaction, so afterwards
// exactly one primary exists no matter how many were flagged before.
func (s *ImageService) SetPrimary(imageID uuid.UUID) (*models.RestaurantImage, error) {
	var image models.RestaurantImage

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND restaurant_id = ?", imageID, models.DefaultRestaurantID).First(&image).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrImageNotFound
			}
			return err
		}

		if err := tx.Model(&models.RestaurantImage{}).
			Where("restaurant_id = ? AND is_primary = ?", models.DefaultRestaurantID, true).
			Update("is_primary", false).Error; err != nil {
			return err
		}

		if err := tx.Model(&image).Update("is_primary", true).Error; err != nil {
			return err
		}

		image.IsPrimary = true
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrImageNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: failed to set primary image", ErrPersistence)
	}

	return &image, nil
}

func (s *ImageService) DeleteImage(imageID uuid.UUID) error {
	var image models.RestaurantImage
	if err := s.db.Where("id = ? AND restaurant_id = ?", imageID, models.DefaultRestaurantID).First(&image).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrImageNotFound
		}
		return fmt.Errorf("%w: failed to find image", ErrPersistence)
	}

	if err := s.db.Delete(&image).Error; err != nil {
		return fmt.Errorf("%w: failed to delete image record", ErrPersistence)
	}

	// Object deletion is best effort; a leaked object is preferable to
	// a dangling row.
	if err := s.s3Service.DeleteImage(image.S3Key); err != nil {
		logger.Error("failed to delete S3 object ", image.S3Key, ": ", err)
	}

	return nil
}
