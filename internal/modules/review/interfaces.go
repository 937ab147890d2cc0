package review

import (
	"context"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type ReviewRepository interface {
	CreateWithRatingUpdate(ctx context.Context, rv *domain.Review) error
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error)
	GetByProvider(ctx context.Context, providerID int64, limit int) ([]domain.Review, error)
}

type BookingReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type ProviderReader interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type NotificationSender interface {
	NotifyNewReview(ctx context.Context, providerUserID, reviewID int64, rating int) error
}
