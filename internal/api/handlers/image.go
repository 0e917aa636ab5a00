package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
)

type ImageHandler struct {
	imageService *services.ImageService
}

func NewImageHandler(imageService *services.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

func (h *ImageHandler) GetImages(c *gin.Context) {
	images, err := h.imageService.GetImages()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch images", err)
		return
	}

	utils.SendSuccess(c, "Images retrieved successfully", images)
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		utils.SendValidationError(c, "Image file is required")
		return
	}

	caption := c.PostForm("caption")

	image, err := h.imageService.UploadImage(fileHeader, caption)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to upload image", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to upload image", err)
		return
	}

	utils.SendCreated(c, "Image uploaded successfully", image)
}

func (h *ImageHandler) SetPrimary(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid image ID")
		return
	}

	image, err := h.imageService.SetPrimary(imageID)
	if err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			utils.SendNotFound(c, "Image not found")
			return
		}
		utils.SendInternalError(c, "Failed to set primary image", err)
		return
	}

	utils.SendSuccess(c, "Primary image updated successfully", image)
}

func (h *ImageHandler) DeleteImage(c *gin.Context) {
	imageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid image ID")
		return
	}

	if err := h.imageService.DeleteImage(imageID); err != nil {
		if errors.Is(err, services.ErrImageNotFound) {
			utils.SendNotFound(c, "Image not found")
			return
		}
		utils.SendInternalError(c, "Failed to delete image", err)
		return
	}

	utils.SendSuccess(c, "Image deleted successfully", nil)
}
