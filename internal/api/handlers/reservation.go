package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"github.com/tablelink/restaurant-backend/pkg/logger"
)

type ReservationHandler struct {
	reservationService  *services.ReservationService
	notificationService *services.NotificationService
}

func NewReservationHandler(reservationService *services.ReservationService, notificationService *services.NotificationService) *ReservationHandler {
	return &ReservationHandler{
		reservationService:  reservationService,
		notificationService: notificationService,
	}
}

type reservationWithNotifications struct {
	Reservation   interface{}                 `json:"reservation"`
	Notifications services.NotificationResult `json:"notifications"`
}

func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req services.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	reservation, err := h.reservationService.CreateReservation(userID, req)
	if err != nil {
		if errors.Is(err, services.ErrSlotAlreadyBooked) {
			utils.SendError(c, http.StatusConflict, "Time slot already booked", err)
			return
		}
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to create reservation", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to create reservation", err)
		return
	}

	// Best-effort notify; the reservation stands regardless of the
	// outcome.
	result := h.notificationService.NotifyReservationCreated(reservation)
	if err := h.reservationService.MarkNotified(reservation.ID, result.EmailSent, result.SMSSent); err != nil {
		logger.Error("failed to record notification flags: ", err)
	}
	reservation.EmailNotified = result.EmailSent
	reservation.SMSNotified = result.SMSSent

	utils.SendCreated(c, "Reservation created successfully", reservationWithNotifications{
		Reservation:   reservation,
		Notifications: result,
	})
}

func (h *ReservationHandler) ListReservations(c *gin.Context) {
	userID := c.GetUint("user_id")

	reservations, err := h.reservationService.ListUserReservations(userID)
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch reservations", err)
		return
	}

	utils.SendSuccess(c, "Reservations retrieved successfully", reservations)
}

func (h *ReservationHandler) CancelReservation(c *gin.Context) {
	userID := c.GetUint("user_id")

	reservationID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid reservation ID")
		return
	}

	reservation, err := h.reservationService.CancelReservation(userID, uint(reservationID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReservationNotFound):
			utils.SendNotFound(c, "Reservation not found")
		case errors.Is(err, services.ErrNotReservationOwner):
			utils.SendForbidden(c, "You can only cancel your own reservations")
		case errors.Is(err, services.ErrReservationCancelled):
			utils.SendValidationError(c, "Reservation is already cancelled")
		default:
			utils.SendInternalError(c, "Failed to cancel reservation", err)
		}
		return
	}

	result := h.notificationService.NotifyReservationCancelled(reservation)
	if err := h.reservationService.MarkNotified(reservation.ID, result.EmailSent, result.SMSSent); err != nil {
		logger.Error("failed to record notification flags: ", err)
	}
	if result.EmailSent {
		reservation.EmailNotified = true
	}
	if result.SMSSent {
		reservation.SMSNotified = true
	}

	utils.SendSuccess(c, "Reservation cancelled successfully", reservationWithNotifications{
		Reservation:   reservation,
		Notifications: result,
	})
}
