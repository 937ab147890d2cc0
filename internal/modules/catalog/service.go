package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type Service struct {
	catalog   CatalogRepository
	providers ProviderCounter
	cities    CityRepository
}

func NewService(catalog CatalogRepository, providers ProviderCounter, cities CityRepository) *Service {
	return &Service{catalog: catalog, providers: providers, cities: cities}
}

// ListCategories decorates each category with its live approved-provider
// count.
func (s *Service) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	cats, err := s.catalog.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	for i := range cats {
		cnt, err := s.providers.CountApprovedByCategory(ctx, cats[i].ID)
		if err != nil {
			return nil, err
		}
		cats[i].ProviderCount = int(cnt)
	}
	return cats, nil
}

func (s *Service) ListSubServices(ctx context.Context, categoryID int64) ([]domain.SubService, error) {
	return s.catalog.ListSubServices(ctx, categoryID)
}

func (s *Service) Search(ctx context.Context, q string) (*SearchResponse, error) {
	if strings.TrimSpace(q) == "" {
		return nil, ErrValidation
	}

	cats, subs, err := s.catalog.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	return &SearchResponse{Categories: cats, SubServices: subs}, nil
}

func (s *Service) ListCities(ctx context.Context) (*CitiesResponse, error) {
	major, err := s.cities.List(ctx, domain.CityMajor)
	if err != nil {
		return nil, err
	}
	towns, err := s.cities.List(ctx, domain.CityTown)
	if err != nil {
		return nil, err
	}
	return &CitiesResponse{Cities: major, Towns: towns}, nil
}

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.ServiceCategory, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrValidation
	}

	cat := &domain.ServiceCategory{
		Name:        strings.TrimSpace(req.Name),
		Icon:        req.Icon,
		Description: req.Description,
	}
	if err := s.catalog.CreateCategory(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) CreateSubService(ctx context.Context, req CreateSubServiceRequest) (*domain.SubService, error) {
	if strings.TrimSpace(req.Name) == "" || req.CategoryID <= 0 {
		return nil, ErrValidation
	}

	if _, err := s.catalog.GetCategoryByID(ctx, req.CategoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sub := &domain.SubService{
		CategoryID:  req.CategoryID,
		Name:        strings.TrimSpace(req.Name),
		Icon:        req.Icon,
		Description: req.Description,
	}
	if err := s.catalog.CreateSubService(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

// DeleteCategory cascades to the category's sub-services. Bookings created
// against the deleted taxonomy keep their snapshotted names.
func (s *Service) DeleteCategory(ctx context.Context, categoryID int64) error {
	if categoryID <= 0 {
		return ErrValidation
	}
	if err := s.catalog.DeleteCategory(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) DeleteSubService(ctx context.Context, subServiceID int64) error {
	if subServiceID <= 0 {
		return ErrValidation
	}
	if err := s.catalog.DeleteSubService(ctx, subServiceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
