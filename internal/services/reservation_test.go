package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tablelink/restaurant-backend/internal/models"
)

func TestNormalizeVisitDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"iso", "2025-01-03", "2025-01-03", false},
		{"korean long form", "2025년 1월 3일", "2025-01-03", false},
		{"korean no spaces", "2025년1월3일", "2025-01-03", false},
		{"dotted", "2025.01.03", "2025-01-03", false},
		{"slashed", "2025/1/3", "2025-01-03", false},
		{"padded whitespace", "  2025-01-03  ", "2025-01-03", false},
		{"nonexistent day", "2025-02-30", "", true},
		{"garbage", "next friday", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeVisitDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func confirmed(date, visitTime string) models.Reservation {
	return models.Reservation{
		VisitDate: date,
		VisitTime: visitTime,
		Status:    models.ReservationConfirmed,
	}
}

func TestIsTimeSlotBooked(t *testing.T) {
	existing := []models.Reservation{
		confirmed("2025-01-03", "12:00"),
		{VisitDate: "2025-01-03", VisitTime: "18:00", Status: models.ReservationCancelled},
	}

	t.Run("matching confirmed slot", func(t *testing.T) {
		assert.True(t, IsTimeSlotBooked("2025-01-03", "12:00", existing))
	})

	t.Run("same day in korean rendering", func(t *testing.T) {
		assert.True(t, IsTimeSlotBooked("2025년 1월 3일", "12:00", existing))
	})

	t.Run("cancelled slot does not block", func(t *testing.T) {
		assert.False(t, IsTimeSlotBooked("2025-01-03", "18:00", existing))
	})

	t.Run("different time", func(t *testing.T) {
		assert.False(t, IsTimeSlotBooked("2025-01-03", "13:00", existing))
	})

	t.Run("different day", func(t *testing.T) {
		assert.False(t, IsTimeSlotBooked("2025-01-04", "12:00", existing))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.False(t, IsTimeSlotBooked("2025-01-03", "12:00", nil))
	})

	t.Run("unparseable date", func(t *testing.T) {
		assert.False(t, IsTimeSlotBooked("someday", "12:00", existing))
	})
}

func TestOrderForDisplay(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("future ascending before past descending", func(t *testing.T) {
		reservations := []models.Reservation{
			confirmed("2025-05-01", "18:00"), // past, older
			confirmed("2025-07-01", "18:00"), // future, later
			confirmed("2025-06-01", "18:00"), // past, recent
			confirmed("2025-06-20", "12:00"), // future, sooner
		}

		OrderForDisplay(reservations, now)

		got := make([]string, len(reservations))
		for i, r := range reservations {
			got[i] = r.VisitDate
		}
		assert.Equal(t, []string{"2025-06-20", "2025-07-01", "2025-06-01", "2025-05-01"}, got)
	})

	t.Run("visit at now counts as upcoming", func(t *testing.T) {
		reservations := []models.Reservation{
			confirmed("2025-06-01", "18:00"),
			confirmed("2025-06-15", "12:00"),
		}

		OrderForDisplay(reservations, now)

		assert.Equal(t, "2025-06-15", reservations[0].VisitDate)
	})

	t.Run("unparseable date sorts as now", func(t *testing.T) {
		reservations := []models.Reservation{
			confirmed("2025-07-01", "18:00"),
			{VisitDate: "invalid", VisitTime: "??", Status: models.ReservationConfirmed},
			confirmed("2025-05-01", "18:00"),
		}

		OrderForDisplay(reservations, now)

		// Treated as occurring now: upcoming, ahead of the later visit.
		assert.Equal(t, "invalid", reservations[0].VisitDate)
		assert.Equal(t, "2025-07-01", reservations[1].VisitDate)
		assert.Equal(t, "2025-05-01", reservations[2].VisitDate)
	})

	t.Run("stable for equal moments", func(t *testing.T) {
		a := confirmed("2025-06-20", "12:00")
		a.ID = 1
		b := confirmed("2025-06-20", "12:00")
		b.ID = 2
		reservations := []models.Reservation{a, b}

		OrderForDisplay(reservations, now)

		assert.Equal(t, uint(1), reservations[0].ID)
		assert.Equal(t, uint(2), reservations[1].ID)
	})
}
