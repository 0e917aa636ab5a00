package services

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrNotReservationOwner  = errors.New("reservation belongs to another customer")
	ErrSlotAlreadyBooked    = errors.New("a confirmed reservation already exists for this date and time")
	ErrInvalidReservation   = errors.New("invalid reservation data")
	ErrReservationCancelled = errors.New("reservation is already cancelled")
)

type ReservationService struct {
	db *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{db: db}
}

type CreateReservationRequest struct {
	CustomerName string `json:"customer_name" binding:"required"`
	Email        string `json:"email" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	VisitDate    string `json:"visit_date" binding:"required"`
	VisitTime    string `json:"visit_time" binding:"required"`
	PartySize    int    `json:"party_size" binding:"required"`
	RestaurantID uint   `json:"restaurant_id"`
}

// Localized long-form dates ("2025년 1월 3일") arrive from the form
// alongside ISO and dotted variants.
var (
	koreanDatePattern  = regexp.MustCompile(`^(\d{4})년\s*(\d{1,2})월\s*(\d{1,2})일$`)
	numericDatePattern = regexp.MustCompile(`^(\d{4})[-./](\d{1,2})[-./](\d{1,2})$`)
)

// NormalizeVisitDate converts any accepted rendering of a calendar date
// into the canonical YYYY-MM-DD form used for storage and comparison.
// Comparing structured dates instead of display strings keeps two
// renderings of the same day from booking the same slot twice.
func NormalizeVisitDate(input string) (string, error) {
	s := strings.TrimSpace(input)

	var m []string
	if m = koreanDatePattern.FindStringSubmatch(s); m == nil {
		m = numericDatePattern.FindStringSubmatch(s)
	}
	if m == nil {
		return "", fmt.Errorf("unrecognized date %q", input)
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// Round-trip through time.Date to reject Feb 30 and friends.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return "", fmt.Errorf("no such date %q", input)
	}

	return t.Format("2006-01-02"), nil
}

// IsTimeSlotBooked reports whether any confirmed reservation in the
// list occupies the given date and time. The date may be in any
// accepted rendering; the time must match exactly. An empty list or an
// unparseable date is never booked.
func IsTimeSlotBooked(date, visitTime string, existing []models.Reservation) bool {
	normalized, err := NormalizeVisitDate(date)
	if err != nil {
		return false
	}
	for _, r := range existing {
		if r.Status != models.ReservationConfirmed {
			continue
		}
		if r.VisitDate == normalized && r.VisitTime == visitTime {
			return true
		}
	}
	return false
}

// visitMoment combines the stored date and time into a timestamp for
// ordering. A reservation whose fields fail to parse is treated as
// occurring now rather than dropped.
func visitMoment(r models.Reservation, now time.Time) time.Time {
	t, err := time.ParseInLocation("2006-01-02 15:04", r.VisitDate+" "+r.VisitTime, now.Location())
	if err != nil {
		return now
	}
	return t
}

// OrderForDisplay sorts reservations into the portal's display order:
// upcoming visits first, soonest first, followed by past visits, most
// recent first. The sort is stable so equal moments keep their input
// order.
func OrderForDisplay(reservations []models.Reservation, now time.Time) {
	sort.SliceStable(reservations, func(i, j int) bool {
		mi := visitMoment(reservations[i], now)
		mj := visitMoment(reservations[j], now)

		futureI := !mi.Before(now)
		futureJ := !mj.Before(now)

		if futureI != futureJ {
			return futureI
		}
		if futureI {
			return mi.Before(mj)
		}
		return mj.Before(mi)
	})
}

// CreateReservation validates and persists a confirmed reservation.
// The duplicate-slot check runs against the customer's confirmed
// reservations here on the server, not only in the form.
func (s *ReservationService) CreateReservation(userID uint, req CreateReservationRequest) (*models.Reservation, error) {
	name := utils.SanitizeString(req.CustomerName)
	email := utils.SanitizeString(req.Email)
	phone := utils.SanitizeString(req.PhoneNumber)

	if name == "" || email == "" || phone == "" {
		return nil, fmt.Errorf("%w: contact name, email and phone are required", ErrInvalidReservation)
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", ErrInvalidReservation)
	}
	if !utils.IsValidVisitTime(req.VisitTime) {
		return nil, fmt.Errorf("%w: visit time must be HH:MM", ErrInvalidReservation)
	}
	if !utils.IsValidPartySize(req.PartySize) {
		return nil, fmt.Errorf("%w: party size must be between 1 and %d", ErrInvalidReservation, utils.MaxPartySize)
	}

	visitDate, err := NormalizeVisitDate(req.VisitDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReservation, err)
	}

	var user models.User
	if err := s.db.Where("id = ? AND is_active = ?", userID, true).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}

	restaurantID := req.RestaurantID
	if restaurantID == 0 {
		restaurantID = models.DefaultRestaurantID
	}

	// Best effort only: two concurrent requests can both pass this
	// check. See DESIGN.md. A failed lookup must not read as count=0.
	var count int64
	err = s.db.Model(&models.Reservation{}).
		Where("user_id = ? AND visit_date = ? AND visit_time = ? AND status = ?",
			userID, visitDate, req.VisitTime, models.ReservationConfirmed).
		Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to check for conflicting reservations", ErrPersistence)
	}
	if count > 0 {
		return nil, ErrSlotAlreadyBooked
	}

	reservation := models.Reservation{
		UserID:       userID,
		RestaurantID: restaurantID,
		CustomerName: name,
		Email:        email,
		PhoneNumber:  phone,
		VisitDate:    visitDate,
		VisitTime:    req.VisitTime,
		PartySize:    req.PartySize,
		Status:       models.ReservationConfirmed,
	}

	if err := s.db.Create(&reservation).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create reservation", ErrPersistence)
	}

	return &reservation, nil
}

// ListUserReservations returns the customer's confirmed reservations in
// display order. Cancelled reservations are dropped from this view, not
// de-prioritized.
func (s *ReservationService) ListUserReservations(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.
		Where("user_id = ? AND status = ?", userID, models.ReservationConfirmed).
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch reservations", ErrPersistence)
	}

	OrderForDisplay(reservations, time.Now())
	return reservations, nil
}

// CancelReservation moves a confirmed reservation to cancelled. The row
// is kept; cancelled is terminal. Only the owning customer may cancel.
func (s *ReservationService) CancelReservation(userID, reservationID uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := s.db.First(&reservation, reservationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: failed to find reservation", ErrPersistence)
	}

	if reservation.UserID != userID {
		return nil, ErrNotReservationOwner
	}
	if reservation.Status == models.ReservationCancelled {
		return nil, ErrReservationCancelled
	}

	reservation.Status = models.ReservationCancelled
	if err := s.db.Save(&reservation).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to cancel reservation", ErrPersistence)
	}

	return &reservation, nil
}

// MarkNotified records which channels were delivered for a reservation.
// Flags are only ever raised; a later failed re-send does not clear
// them.
func (s *ReservationService) MarkNotified(reservationID uint, emailSent, smsSent bool) error {
	updates := map[string]interface{}{}
	if emailSent {
		updates["email_notified"] = true
	}
	if smsSent {
		updates["sms_notified"] = true
	}
	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&models.Reservation{}).Where("id = ?", reservationID).Updates(updates).Error
}
