package domain

import "time"

// ServiceProvider is the marketplace profile a user with RoleProvider owns.
// It starts unapproved and offline; only an admin can approve or reject it,
// and rejection is terminal: the row is kept for audit, never deleted.
type ServiceProvider struct {
	ID              int64     `json:"id"`
	UserID          int64     `json:"user_id" gorm:"uniqueIndex"`
	FullName        string    `json:"full_name"`
	Email           string    `json:"email"`
	CategoryID      int64     `json:"category_id"`
	CategoryName    string    `json:"category_name,omitempty" gorm:"-"`
	SubServiceID    int64     `json:"sub_service_id"`
	SubServiceName  string    `json:"sub_service_name,omitempty" gorm:"-"`
	ExperienceYears int       `json:"experience" validate:"gte=0"`
	BasePrice       float64   `json:"base_price" validate:"gte=0"`
	Rating          float64   `json:"rating"`
	TotalReviews    int       `json:"total_reviews"`
	IsVerified      bool      `json:"is_verified"`
	IsApproved      bool      `json:"is_approved"`
	IsRejected      bool      `json:"is_rejected"`
	IsOnline        bool      `json:"is_online"`
	City            string    `json:"city"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Reviews []Review `json:"reviews,omitempty" gorm:"-"`
}

// Bookable reports whether customers may create bookings against the profile.
func (p *ServiceProvider) Bookable() bool {
	return p.IsApproved && !p.IsRejected
}
