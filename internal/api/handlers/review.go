package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.reviewService.CreateReview(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to create review", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to create review", err)
		return
	}

	utils.SendCreated(c, "Review created successfully", review)
}

func (h *ReviewHandler) GetReviews(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	reviews, total, err := h.reviewService.GetReviews(page, limit)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch reviews", err)
		return
	}

	utils.SendSuccess(c, "Reviews retrieved successfully", gin.H{
		"reviews": reviews,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

func (h *ReviewHandler) GetStatistics(c *gin.Context) {
	stats, err := h.reviewService.GetStatistics()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch review statistics", err)
		return
	}

	utils.SendSuccess(c, "Review statistics retrieved successfully", stats)
}

// sendOwnershipError keeps the 404-vs-403 distinction the service
// reports.
func sendOwnershipError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrReviewNotFound):
		utils.SendNotFound(c, "Review not found")
	case errors.Is(err, services.ErrNotReviewOwner):
		utils.SendForbidden(c, "You can only modify your own reviews")
	case errors.Is(err, services.ErrPersistence):
		utils.SendInternalError(c, fallback, err)
	default:
		utils.SendError(c, http.StatusBadRequest, fallback, err)
	}
}

func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	userID := c.GetUint("user_id")

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid review ID")
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	review, err := h.reviewService.UpdateReview(userID, uint(reviewID), req)
	if err != nil {
		sendOwnershipError(c, err, "Failed to update review")
		return
	}

	utils.SendSuccess(c, "Review updated successfully", review)
}

func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	userID := c.GetUint("user_id")

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid review ID")
		return
	}

	if err := h.reviewService.DeleteReview(userID, uint(reviewID)); err != nil {
		sendOwnershipError(c, err, "Failed to delete review")
		return
	}

	utils.SendSuccess(c, "Review deleted successfully", nil)
}
