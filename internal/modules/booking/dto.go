package booking

type CreateBookingRequest struct {
	ProviderID   int64  `json:"provider_id" binding:"required"`
	SubServiceID int64  `json:"sub_service_id" binding:"required"`
	BookingDate  string `json:"booking_date" binding:"required"`
	BookingTime  string `json:"booking_time" binding:"required"`
	Address      string `json:"address" binding:"required"`
	City         string `json:"city" binding:"required"`
	Notes        string `json:"notes"`
}
