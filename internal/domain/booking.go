package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingRejected  BookingStatus = "rejected"
	BookingCompleted BookingStatus = "completed"
)

// CanTransition reports whether the status machine allows from -> to.
// Edges: pending -> accepted | rejected, accepted -> completed.
// Nothing leaves rejected or completed.
func CanTransition(from, to BookingStatus) bool {
	switch from {
	case BookingPending:
		return to == BookingAccepted || to == BookingRejected
	case BookingAccepted:
		return to == BookingCompleted
	}
	return false
}

// Booking snapshots base price and all display names at creation time, so
// later catalog edits or provider price changes never rewrite history.
// Commission and ProviderEarnings stay zero until completion, when they are
// computed from the commission percentage in force at that moment and stored.
type Booking struct {
	ID               int64         `json:"id"`
	CustomerID       int64         `json:"customer_id"`
	CustomerName     string        `json:"customer_name"`
	ProviderID       int64         `json:"provider_id" validate:"required"`
	ProviderName     string        `json:"provider_name"`
	SubServiceID     int64         `json:"sub_service_id" validate:"required"`
	SubServiceName   string        `json:"sub_service_name"`
	CategoryName     string        `json:"category_name"`
	BookingDate      string        `json:"booking_date" validate:"required"`
	BookingTime      string        `json:"booking_time" validate:"required"`
	Address          string        `json:"address" validate:"required"`
	City             string        `json:"city" validate:"required"`
	Notes            string        `json:"notes,omitempty" gorm:"type:text"`
	Status           BookingStatus `json:"status"`
	BasePrice        float64       `json:"base_price"`
	CommissionPct    float64       `json:"commission_percentage" gorm:"column:commission_percentage"`
	Commission       float64       `json:"commission"`
	ProviderEarnings float64       `json:"provider_earnings"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
	CompletedAt      *time.Time    `json:"completed_at,omitempty"`
}
