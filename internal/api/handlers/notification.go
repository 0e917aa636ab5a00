package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
)

// NotificationHandler exposes the raw channels for internal use by the
// web frontend. Neither endpoint is authenticated; they are not meant
// to be reachable from outside the deployment.
type NotificationHandler struct {
	emailService *services.EmailService
	smsService   *services.SMSService
}

func NewNotificationHandler(emailService *services.EmailService, smsService *services.SMSService) *NotificationHandler {
	return &NotificationHandler{emailService: emailService, smsService: smsService}
}

type SendEmailRequest struct {
	To      string `json:"to" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Body    string `json:"body" binding:"required"`
}

type SendSMSRequest struct {
	To      string `json:"to" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *NotificationHandler) SendEmail(c *gin.Context) {
	var req SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if !utils.IsValidEmail(req.To) {
		utils.SendValidationError(c, "Invalid recipient address")
		return
	}

	if err := h.emailService.SendEmail(req.To, req.Subject, req.Body); err != nil {
		utils.SendError(c, http.StatusBadGateway, "Failed to send email", err)
		return
	}

	utils.SendSuccess(c, "Email sent successfully", nil)
}

func (h *NotificationHandler) SendSMS(c *gin.Context) {
	var req SendSMSRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	if err := h.smsService.SendSMS(req.To, req.Content); err != nil {
		utils.SendError(c, http.StatusBadGateway, "Failed to send SMS", err)
		return
	}

	utils.SendSuccess(c, "SMS sent successfully", nil)
}
