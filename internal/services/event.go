package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrEventNotFound  = errors.New("event not found")
	ErrEventDateOrder = errors.New("start date must not be after end date")
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type EventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	StartDate   string `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate     string `json:"end_date" binding:"required"`
	IsActive    *bool  `json:"is_active"`
}

type EventResponse struct {
	models.Event
	Status string `json:"status"`
}

// DeriveEventStatus buckets an event for display. The four buckets are
// mutually exclusive and checked in order: inactive, upcoming, ended,
// active.
func DeriveEventStatus(e models.Event, now time.Time) string {
	switch {
	case !e.IsActive:
		return models.EventInactive
	case now.Before(e.StartDate):
		return models.EventUpcoming
	case now.After(e.EndDate):
		return models.EventEnded
	default:
		return models.EventActive
	}
}

func parseEventDates(req EventRequest) (time.Time, time.Time, error) {
	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("start date must be YYYY-MM-DD")
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.New("end date must be YYYY-MM-DD")
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, ErrEventDateOrder
	}
	// The event runs through the whole final day.
	end = end.Add(24*time.Hour - time.Second)
	return start, end, nil
}

func (s *EventService) GetEvents() ([]EventResponse, error) {
	var events []models.Event
	err := s.db.
		Where("restaurant_id = ?", models.DefaultRestaurantID).
		Order("start_date DESC").
		Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch events", ErrPersistence)
	}

	now := time.Now()
	responses := make([]EventResponse, 0, len(events))
	for _, e := range events {
		responses = append(responses, EventResponse{Event: e, Status: DeriveEventStatus(e, now)})
	}
	return responses, nil
}

func (s *EventService) CreateEvent(req EventRequest) (*EventResponse, error) {
	start, end, err := parseEventDates(req)
	if err != nil {
		return nil, err
	}

	event := models.Event{
		RestaurantID: models.DefaultRestaurantID,
		Title:        utils.SanitizeString(req.Title),
		Description:  utils.SanitizeString(req.Description),
		ImageURL:     req.ImageURL,
		StartDate:    start,
		EndDate:      end,
		IsActive:     true,
	}
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.db.Create(&event).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create event", ErrPersistence)
	}

	return &EventResponse{Event: event, Status: DeriveEventStatus(event, time.Now())}, nil
}

func (s *EventService) UpdateEvent(eventID uint, req EventRequest) (*EventResponse, error) {
	var event models.Event
	if err := s.db.Where("id = ? AND restaurant_id = ?", eventID, models.DefaultRestaurantID).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("%w: failed to find event", ErrPersistence)
	}

	start, end, err := parseEventDates(req)
	if err != nil {
		return nil, err
	}

	event.Title = utils.SanitizeString(req.Title)
	event.Description = utils.SanitizeString(req.Description)
	event.ImageURL = req.ImageURL
	event.StartDate = start
	event.EndDate = end
	if req.IsActive != nil {
		event.IsActive = *req.IsActive
	}

	if err := s.db.Save(&event).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to update event", ErrPersistence)
	}

	return &EventResponse{Event: event, Status: DeriveEventStatus(event, time.Now())}, nil
}

func (s *EventService) DeleteEvent(eventID uint) error {
	result := s.db.Where("id = ? AND restaurant_id = ?", eventID, models.DefaultRestaurantID).Delete(&models.Event{})
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete event", ErrPersistence)
	}
	if result.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}
