package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuCategory struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;default:1;index"`
	Name         string    `json:"name" gorm:"not null"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	Items []MenuItem `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;default:1;index"`
	CategoryID   uint      `json:"category_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        int       `json:"price" gorm:"not null"` // smallest currency unit
	ImageURL     string    `json:"image_url"`
	IsPopular    bool      `json:"is_popular" gorm:"default:false"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	DisplayOrder int       `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RestaurantImage rows are backed by objects in S3. At most one image
// per restaurant carries IsPrimary; the swap is done in a single
// transaction.
type RestaurantImage struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;default:1;index"`
	FileName     string    `json:"file_name" gorm:"not null"`
	S3Key        string    `json:"s3_key" gorm:"not null;unique"`
	S3URL        string    `json:"s3_url" gorm:"not null"`
	ContentType  string    `json:"content_type" gorm:"not null"`
	Size         int64     `json:"size"`
	Caption      string    `json:"caption"`
	IsPrimary    bool      `json:"is_primary" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (i *RestaurantImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

const (
	EventInactive = "inactive"
	EventUpcoming = "upcoming"
	EventEnded    = "ended"
	EventActive   = "active"
)

type Event struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RestaurantID uint      `json:"restaurant_id" gorm:"not null;default:1;index"`
	Title        string    `json:"title" gorm:"not null"`
	Description  string    `json:"description" gorm:"type:text"`
	ImageURL     string    `json:"image_url"`
	StartDate    time.Time `json:"start_date" gorm:"not null"`
	EndDate      time.Time `json:"end_date" gorm:"not null"`
	IsActive     bool      `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
