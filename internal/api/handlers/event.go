package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tablelink/restaurant-backend/internal/services"
	"github.com/tablelink/restaurant-backend/internal/utils"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetEvents()
	if err != nil {
		utils.SendInternalError(c, "Failed to fetch events", err)
		return
	}

	utils.SendSuccess(c, "Events retrieved successfully", events)
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to create event", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to create event", err)
		return
	}

	utils.SendCreated(c, "Event created successfully", event)
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid event ID")
		return
	}

	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, "Invalid request data")
		return
	}

	event, err := h.eventService.UpdateEvent(uint(eventID), req)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			utils.SendNotFound(c, "Event not found")
			return
		}
		if errors.Is(err, services.ErrPersistence) {
			utils.SendInternalError(c, "Failed to update event", err)
			return
		}
		utils.SendError(c, http.StatusBadRequest, "Failed to update event", err)
		return
	}

	utils.SendSuccess(c, "Event updated successfully", event)
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendValidationError(c, "Invalid event ID")
		return
	}

	if err := h.eventService.DeleteEvent(uint(eventID)); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			utils.SendNotFound(c, "Event not found")
			return
		}
		utils.SendInternalError(c, "Failed to delete event", err)
		return
	}

	utils.SendSuccess(c, "Event deleted successfully", nil)
}
