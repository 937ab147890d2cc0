package admin

type UpdateCommissionRequest struct {
	CommissionPercentage float64 `json:"commission_percentage"`
}

type Analytics struct {
	TotalUsers           int64   `json:"total_users"`
	TotalCustomers       int64   `json:"total_customers"`
	TotalProviders       int64   `json:"total_providers"`
	ApprovedProviders    int64   `json:"approved_providers"`
	PendingProviders     int64   `json:"pending_providers"`
	TotalBookings        int64   `json:"total_bookings"`
	PendingBookings      int64   `json:"pending_bookings"`
	AcceptedBookings     int64   `json:"accepted_bookings"`
	CompletedBookings    int64   `json:"completed_bookings"`
	RejectedBookings     int64   `json:"rejected_bookings"`
	TotalRevenue         float64 `json:"total_revenue"`
	CommissionPercentage float64 `json:"commission_percentage"`
}
