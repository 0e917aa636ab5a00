package models

import (
	"time"
)

// DefaultRestaurantID is the single tenant the portal currently serves.
// The schema keeps a restaurant reference so a second location can be
// added without a migration.
const DefaultRestaurantID uint = 1

const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

type Reservation struct {
	ID           uint   `json:"id" gorm:"primaryKey"`
	UserID       uint   `json:"user_id" gorm:"not null;index"`
	RestaurantID uint   `json:"restaurant_id" gorm:"not null;default:1"`
	CustomerName string `json:"customer_name" gorm:"not null"`
	Email        string `json:"email" gorm:"not null"`
	PhoneNumber  string `json:"phone_number" gorm:"not null"`
	// VisitDate is stored normalized as YYYY-MM-DD; localized input is
	// converted at the boundary.
	VisitDate string `json:"visit_date" gorm:"not null;index"`
	VisitTime string `json:"visit_time" gorm:"not null"` // HH:MM
	PartySize int    `json:"party_size" gorm:"not null"`
	Status    string `json:"status" gorm:"default:confirmed;index"`
	// Notification flags are set after successful dispatch and never
	// re-verified.
	EmailNotified bool      `json:"email_notified" gorm:"default:false"`
	SMSNotified   bool      `json:"sms_notified" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
