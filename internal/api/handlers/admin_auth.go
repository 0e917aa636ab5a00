package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
)

type AdminAuthHandler struct {
	adminAuthService *services.AdminAuthService
}

func NewAdminAuthHandler(adminAuthService *services.AdminAuthService) *AdminAuthHandler {
	return &AdminAuthHandler{adminAuthService: adminAuthService}
}

func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req services.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	response, err := h.adminAuthService.Login(req)
	if err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Login failed", err)
		return
	}

	utils.SendSuccess(c, "Login successful", response)
}
