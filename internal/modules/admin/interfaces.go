package admin

import (
	"context"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type ProviderRepository interface {
	ListAll(ctx context.Context) ([]domain.ServiceProvider, error)
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
	SetApproved(ctx context.Context, providerID int64) error
	SetRejected(ctx context.Context, providerID int64) error
	CountApproved(ctx context.Context) (int64, error)
	CountPending(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	ListAll(ctx context.Context) ([]domain.Booking, error)
	CountTotal(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error)
	SumPlatformRevenue(ctx context.Context) (float64, error)
}

type UserCounter interface {
	CountByRole(ctx context.Context, role domain.UserRole) (int64, error)
}

type CatalogReader interface {
	GetCategoryByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	GetSubServiceByID(ctx context.Context, id int64) (*domain.SubService, error)
}

type SettingsRepository interface {
	Get(ctx context.Context) (*domain.PlatformSettings, error)
	SetCommission(ctx context.Context, pct float64) error
}

type NotificationSender interface {
	NotifyProviderApproved(ctx context.Context, providerUserID, providerID int64) error
	NotifyProviderRejected(ctx context.Context, providerUserID, providerID int64) error
}
