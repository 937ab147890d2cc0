package booking

import (
	"context"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

// BookingRepository defines the persistence surface for the state machine.
// UpdateStatusFrom and Complete are compare-and-set operations: they return
// false when the row no longer holds the expected status.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, bookingID int64, from, to domain.BookingStatus) (bool, error)
	Complete(ctx context.Context, bookingID int64, commissionPct, commission, earnings float64) (bool, error)
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
}

type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.ServiceProvider, error)
}

type UserReader interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CatalogReader interface {
	GetCategoryByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	GetSubServiceByID(ctx context.Context, id int64) (*domain.SubService, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (*domain.PlatformSettings, error)
}

// NotificationSender is fire-and-forget; send failures never surface to the
// caller.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, providerUserID, bookingID int64, subService, city string) error
	NotifyBookingAccepted(ctx context.Context, customerUserID, bookingID int64) error
	NotifyBookingRejected(ctx context.Context, customerUserID, bookingID int64) error
	NotifyBookingCompleted(ctx context.Context, customerUserID, bookingID int64) error
}
