package provider

import (
	"context"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error)
	GetByUserID(ctx context.Context, userID int64) (*domain.ServiceProvider, error)
	ListApproved(ctx context.Context, f repository.ProviderFilter) ([]domain.ServiceProvider, error)
	SetOnline(ctx context.Context, providerID int64, online bool) error
}

type CatalogReader interface {
	GetCategoryByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	GetSubServiceByID(ctx context.Context, id int64) (*domain.SubService, error)
}

type ReviewReader interface {
	GetByProvider(ctx context.Context, providerID int64, limit int) ([]domain.Review, error)
}

type BookingStats interface {
	CountForProvider(ctx context.Context, providerID int64, status domain.BookingStatus) (int64, error)
	SumProviderEarnings(ctx context.Context, providerID int64) (float64, error)
}
