package provider

import "github.com/aynul321/Vokzo-mvp/internal/domain"

type DashboardStats struct {
	Provider          *domain.ServiceProvider `json:"provider"`
	TotalBookings     int64                   `json:"total_bookings"`
	PendingBookings   int64                   `json:"pending_bookings"`
	CompletedBookings int64                   `json:"completed_bookings"`
	TotalEarnings     float64                 `json:"total_earnings"`
}
