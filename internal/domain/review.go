package domain

import "time"

// Review attaches to exactly one completed booking. The unique index on
// BookingID is the source of truth for the one-review-per-booking rule.
type Review struct {
	ID           int64     `json:"id"`
	BookingID    int64     `json:"booking_id" gorm:"uniqueIndex"`
	CustomerID   int64     `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	ProviderID   int64     `json:"provider_id" gorm:"index"`
	Rating       int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string    `json:"comment,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}
