package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablelink/restaurant-backend/internal/models"
	"github.com/tablelink/restaurant-backend/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	m.Run()
}

type fakeEmailSender struct {
	mu        sync.Mutex
	err       error
	confirmed int
	cancelled int
}

func (f *fakeEmailSender) SendReservationConfirmation(r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmed++
	return f.err
}

func (f *fakeEmailSender) SendReservationCancellation(r *models.Reservation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cancelled++
	return f.err
}

type fakeSMSSender struct {
	mu   sync.Mutex
	err  error
	sent []string
}

func (f *fakeSMSSender) SendSMS(to, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, to)
	return f.err
}

func testReservation() *models.Reservation {
	return &models.Reservation{
		ID:           42,
		CustomerName: "Kim",
		Email:        "kim@example.com",
		PhoneNumber:  "01012345678",
		VisitDate:    "2025-01-03",
		VisitTime:    "12:00",
		PartySize:    2,
		Status:       models.ReservationConfirmed,
	}
}

func TestNotifyReservationCreated(t *testing.T) {
	t.Run("both channels succeed", func(t *testing.T) {
		email := &fakeEmailSender{}
		sms := &fakeSMSSender{}
		svc := NewNotificationService(email, sms)

		result := svc.NotifyReservationCreated(testReservation())

		assert.True(t, result.EmailSent)
		assert.True(t, result.SMSSent)
		assert.Equal(t, 1, email.confirmed)
		assert.Equal(t, []string{"01012345678"}, sms.sent)
	})

	t.Run("email failure does not block sms", func(t *testing.T) {
		email := &fakeEmailSender{err: errors.New("smtp down")}
		sms := &fakeSMSSender{}
		svc := NewNotificationService(email, sms)

		result := svc.NotifyReservationCreated(testReservation())

		assert.False(t, result.EmailSent)
		assert.True(t, result.SMSSent)
	})

	t.Run("both failing still returns", func(t *testing.T) {
		email := &fakeEmailSender{err: errors.New("smtp down")}
		sms := &fakeSMSSender{err: errors.New("provider down")}
		svc := NewNotificationService(email, sms)

		result := svc.NotifyReservationCreated(testReservation())

		assert.False(t, result.EmailSent)
		assert.False(t, result.SMSSent)
	})
}

func TestNotifyReservationCancelled(t *testing.T) {
	email := &fakeEmailSender{}
	sms := &fakeSMSSender{}
	svc := NewNotificationService(email, sms)

	result := svc.NotifyReservationCancelled(testReservation())

	assert.True(t, result.EmailSent)
	assert.True(t, result.SMSSent)
	assert.Equal(t, 1, email.cancelled)
	assert.Equal(t, 0, email.confirmed)
}
