package services

import (
	"fmt"
	"sync"

	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/pkg/logger"
)

type EmailSender interface {
	SendReservationConfirmation(r *models.Reservation) error
	SendReservationCancellation(r *models.Reservation) error
}

type SMSSender interface {
	SendSMS(to, content string) error
}

// NotificationResult reports per-channel delivery as booleans. Channel
// failures never become errors; the reservation write stands either
// way.
type NotificationResult struct {
	EmailSent bool `json:"email_sent"`
	SMSSent   bool `json:"sms_sent"`
}

type NotificationService struct {
	email EmailSender
	sms   SMSSender
}

func NewNotificationService(email EmailSender, sms SMSSender) *NotificationService {
	return &NotificationService{email: email, sms: sms}
}

// dispatch runs both channels concurrently and waits for both. Neither
// outcome affects the other.
func (s *NotificationService) dispatch(r *models.Reservation, sendEmail func() error, smsText string) NotificationResult {
	var result NotificationResult
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := sendEmail(); err != nil {
			logger.WithFields(map[string]interface{}{
				"reservation_id": r.ID,
				"channel":        "email",
			}).Error("notification failed: ", err)
			return
		}
		result.EmailSent = true
	}()
	go func() {
		defer wg.Done()
		if err := s.sms.SendSMS(r.PhoneNumber, smsText); err != nil {
			logger.WithFields(map[string]interface{}{
				"reservation_id": r.ID,
				"channel":        "sms",
			}).Error("notification failed: ", err)
			return
		}
		result.SMSSent = true
	}()
	wg.Wait()

	return result
}

func (s *NotificationService) NotifyReservationCreated(r *models.Reservation) NotificationResult {
	smsText := fmt.Sprintf("[Reservation confirmed] %s %s, party of %d. Reservation no. %d",
		r.VisitDate, r.VisitTime, r.PartySize, r.ID)
	return s.dispatch(r, func() error { return s.email.SendReservationConfirmation(r) }, smsText)
}

func (s *NotificationService) NotifyReservationCancelled(r *models.Reservation) NotificationResult {
	smsText := fmt.Sprintf("[Reservation cancelled] %s %s, party of %d.",
		r.VisitDate, r.VisitTime, r.PartySize)
	return s.dispatch(r, func() error { return s.email.SendReservationCancellation(r) }, smsText)
}
