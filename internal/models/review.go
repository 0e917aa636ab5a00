package models

import (
	"time"
)

type Review struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	UserID        uint   `json:"user_id" gorm:"not null;index"`
	RestaurantID  uint   `json:"restaurant_id" gorm:"not null;default:1"`
	ReservationID *uint  `json:"reservation_id,omitempty"`
	Title         string `json:"title"`
	Content       string `json:"content" gorm:"type:text;not null"`

	// Per-category ratings, each 1-5.
	TasteRating      int `json:"taste_rating" gorm:"check:taste_rating >= 1 AND taste_rating <= 5"`
	ServiceRating    int `json:"service_rating" gorm:"check:service_rating >= 1 AND service_rating <= 5"`
	CleanRating      int `json:"clean_rating" gorm:"check:clean_rating >= 1 AND clean_rating <= 5"`
	AtmosphereRating int `json:"atmosphere_rating" gorm:"check:atmosphere_rating >= 1 AND atmosphere_rating <= 5"`
	ParkingRating    int `json:"parking_rating" gorm:"check:parking_rating >= 1 AND parking_rating <= 5"`
	RevisitRating    int `json:"revisit_rating" gorm:"check:revisit_rating >= 1 AND revisit_rating <= 5"`

	// AverageRating is the mean of the six categories, one decimal,
	// recomputed server-side on every write.
	AverageRating float64   `json:"average_rating"`
	ImageURLs     string    `json:"image_urls"` // comma-separated, optional
	Recommended   bool      `json:"recommended" gorm:"default:false"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
