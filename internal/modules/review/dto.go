package review

type CreateReviewRequest struct {
	BookingID int64  `json:"booking_id" binding:"required,gt=0"`
	Rating    int    `json:"rating" binding:"required,gte=1,lte=5"`
	Comment   string `json:"comment"`
}
