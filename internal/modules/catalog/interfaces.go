package catalog

import (
	"context"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type CatalogRepository interface {
	CreateCategory(ctx context.Context, c *domain.ServiceCategory) error
	CreateSubService(ctx context.Context, s *domain.SubService) error
	GetCategoryByID(ctx context.Context, id int64) (*domain.ServiceCategory, error)
	GetSubServiceByID(ctx context.Context, id int64) (*domain.SubService, error)
	ListCategories(ctx context.Context) ([]domain.ServiceCategory, error)
	ListSubServices(ctx context.Context, categoryID int64) ([]domain.SubService, error)
	Search(ctx context.Context, q string) ([]domain.ServiceCategory, []domain.SubService, error)
	DeleteCategory(ctx context.Context, categoryID int64) error
	DeleteSubService(ctx context.Context, subServiceID int64) error
}

type ProviderCounter interface {
	CountApprovedByCategory(ctx context.Context, categoryID int64) (int64, error)
}

type CityRepository interface {
	List(ctx context.Context, kind domain.CityKind) ([]domain.City, error)
}
