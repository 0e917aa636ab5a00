package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrNotReviewOwner = errors.New("review belongs to another customer")
)

const minReviewContentLength = 10

type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

type ReviewRatings struct {
	Taste      int `json:"taste" binding:"required"`
	Service    int `json:"service" binding:"required"`
	Clean      int `json:"clean" binding:"required"`
	Atmosphere int `json:"atmosphere" binding:"required"`
	Parking    int `json:"parking" binding:"required"`
	Revisit    int `json:"revisit" binding:"required"`
}

type CreateReviewRequest struct {
	Title         string        `json:"title"`
	Content       string        `json:"content" binding:"required"`
	Ratings       ReviewRatings `json:"ratings" binding:"required"`
	ImageURLs     []string      `json:"image_urls"`
	Recommended   bool          `json:"recommended"`
	ReservationID *uint         `json:"reservation_id"`
}

type UpdateReviewRequest struct {
	Title       *string        `json:"title,omitempty"`
	Content     *string        `json:"content,omitempty"`
	Ratings     *ReviewRatings `json:"ratings,omitempty"`
	ImageURLs   []string       `json:"image_urls,omitempty"`
	Recommended *bool          `json:"recommended,omitempty"`
}

// AverageRating is the arithmetic mean of the six categories, rounded
// to one decimal.
func AverageRating(r ReviewRatings) float64 {
	sum := r.Taste + r.Service + r.Clean + r.Atmosphere + r.Parking + r.Revisit
	return math.Round(float64(sum)/6.0*10) / 10
}

func validateRatings(r ReviewRatings) error {
	for _, v := range []int{r.Taste, r.Service, r.Clean, r.Atmosphere, r.Parking, r.Revisit} {
		if !utils.IsValidRating(v) {
			return errors.New("each rating must be between 1 and 5")
		}
	}
	return nil
}

func validateContent(content string) (string, error) {
	trimmed := utils.SanitizeString(content)
	if len([]rune(trimmed)) < minReviewContentLength {
		return "", errors.New("review content must be at least 10 characters")
	}
	return trimmed, nil
}

func (s *ReviewService) CreateReview(userID uint, req CreateReviewRequest) (*models.Review, error) {
	if err := validateRatings(req.Ratings); err != nil {
		return nil, err
	}
	content, err := validateContent(req.Content)
	if err != nil {
		return nil, err
	}

	review := models.Review{
		UserID:           userID,
		RestaurantID:     models.DefaultRestaurantID,
		ReservationID:    req.ReservationID,
		Title:            utils.SanitizeString(req.Title),
		Content:          content,
		TasteRating:      req.Ratings.Taste,
		ServiceRating:    req.Ratings.Service,
		CleanRating:      req.Ratings.Clean,
		AtmosphereRating: req.Ratings.Atmosphere,
		ParkingRating:    req.Ratings.Parking,
		RevisitRating:    req.Ratings.Revisit,
		AverageRating:    AverageRating(req.Ratings),
		ImageURLs:        strings.Join(req.ImageURLs, ","),
		Recommended:      req.Recommended,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create review", ErrPersistence)
	}

	s.db.Preload("User").First(&review, review.ID)
	return &review, nil
}

func (s *ReviewService) GetReviews(page, limit int) ([]models.Review, int64, error) {
	var reviews []models.Review
	var total int64

	s.db.Model(&models.Review{}).Where("restaurant_id = ?", models.DefaultRestaurantID).Count(&total)

	offset := (page - 1) * limit
	err := s.db.Preload("User").
		Where("restaurant_id = ?", models.DefaultRestaurantID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to fetch reviews", ErrPersistence)
	}

	return reviews, total, nil
}

// fetchOwned loads a review and verifies ownership. Not-found and
// wrong-owner are distinct failures so the handler can answer 404 vs
// 403.
func (s *ReviewService) fetchOwned(userID, reviewID uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, reviewID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("%w: failed to find review", ErrPersistence)
	}
	if review.UserID != userID {
		return nil, ErrNotReviewOwner
	}
	return &review, nil
}

func (s *ReviewService) UpdateReview(userID, reviewID uint, req UpdateReviewRequest) (*models.Review, error) {
	review, err := s.fetchOwned(userID, reviewID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		review.Title = utils.SanitizeString(*req.Title)
	}
	if req.Content != nil {
		content, err := validateContent(*req.Content)
		if err != nil {
			return nil, err
		}
		review.Content = content
	}
	if req.Ratings != nil {
		if err := validateRatings(*req.Ratings); err != nil {
			return nil, err
		}
		review.TasteRating = req.Ratings.Taste
		review.ServiceRating = req.Ratings.Service
		review.CleanRating = req.Ratings.Clean
		review.AtmosphereRating = req.Ratings.Atmosphere
		review.ParkingRating = req.Ratings.Parking
		review.RevisitRating = req.Ratings.Revisit
		review.AverageRating = AverageRating(*req.Ratings)
	}
	if req.ImageURLs != nil {
		review.ImageURLs = strings.Join(req.ImageURLs, ",")
	}
	if req.Recommended != nil {
		review.Recommended = *req.Recommended
	}

	if err := s.db.Save(review).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to update review", ErrPersistence)
	}

	return review, nil
}

func (s *ReviewService) DeleteReview(userID, reviewID uint) error {
	review, err := s.fetchOwned(userID, reviewID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(review).Error; err != nil {
		return fmt.Errorf("%w: failed to delete review", ErrPersistence)
	}
	return nil
}

type ReviewStatistics struct {
	Count             int64   `json:"count"`
	AverageTaste      float64 `json:"average_taste"`
	AverageService    float64 `json:"average_service"`
	AverageClean      float64 `json:"average_clean"`
	AverageAtmosphere float64 `json:"average_atmosphere"`
	AverageParking    float64 `json:"average_parking"`
	AverageRevisit    float64 `json:"average_revisit"`
	AverageOverall    float64 `json:"average_overall"`
	RecommendedCount  int64   `json:"recommended_count"`
}

// GetStatistics aggregates the ledger on read. No reviews yields the
// zero aggregate, not an error.
func (s *ReviewService) GetStatistics() (*ReviewStatistics, error) {
	var stats ReviewStatistics
	err := s.db.Model(&models.Review{}).
		Where("restaurant_id = ?", models.DefaultRestaurantID).
		Select(`COUNT(*) AS count,
			COALESCE(AVG(taste_rating), 0) AS average_taste,
			COALESCE(AVG(service_rating), 0) AS average_service,
			COALESCE(AVG(clean_rating), 0) AS average_clean,
			COALESCE(AVG(atmosphere_rating), 0) AS average_atmosphere,
			COALESCE(AVG(parking_rating), 0) AS average_parking,
			COALESCE(AVG(revisit_rating), 0) AS average_revisit,
			COALESCE(AVG(average_rating), 0) AS average_overall,
			COALESCE(SUM(CASE WHEN recommended THEN 1 ELSE 0 END), 0) AS recommended_count`).
		Scan(&stats).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to compute review statistics", ErrPersistence)
	}
	return &stats, nil
}
