package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tablelink/restaurant-backend/internal/config"
)

func TestSMSDemoFallback(t *testing.T) {
	// No provider credentials: delivery must be simulated, not failed.
	svc := NewSMSService(&config.Config{})

	err := svc.SendSMS("01012345678", "hello")

	assert.NoError(t, err)
}

func TestSMSConfigured(t *testing.T) {
	svc := NewSMSService(&config.Config{
		SMSServiceID:    "svc",
		SMSAccessKey:    "access",
		SMSSecretKey:    "secret",
		SMSSenderNumber: "0212345678",
	})

	assert.True(t, svc.configured())

	// Signature is deterministic for fixed inputs.
	first := svc.signature("/sms/v2/services/svc/messages", "1700000000000")
	second := svc.signature("/sms/v2/services/svc/messages", "1700000000000")
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}
