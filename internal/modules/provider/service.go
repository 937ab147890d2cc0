package provider

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type Service struct {
	providers ProviderRepository
	catalog   CatalogReader
	reviews   ReviewReader
	bookings  BookingStats
}

func NewService(providers ProviderRepository, catalog CatalogReader, reviews ReviewReader, bookings BookingStats) *Service {
	return &Service{
		providers: providers,
		catalog:   catalog,
		reviews:   reviews,
		bookings:  bookings,
	}
}

// List returns the public directory: approved, non-rejected profiles only.
// Offline providers stay listed; the repository orders online-first, then
// rating desc, experience desc, id asc.
func (s *Service) List(ctx context.Context, f repository.ProviderFilter) ([]domain.ServiceProvider, error) {
	providers, err := s.providers.ListApproved(ctx, f)
	if err != nil {
		return nil, err
	}

	for i := range providers {
		s.attachNames(ctx, &providers[i])
	}
	return providers, nil
}

// Get returns one profile with taxonomy names and its reviews attached.
func (s *Service) Get(ctx context.Context, providerID int64) (*domain.ServiceProvider, error) {
	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.attachNames(ctx, p)

	reviews, err := s.reviews.GetByProvider(ctx, p.ID, 50)
	if err != nil {
		return nil, err
	}
	p.Reviews = reviews

	return p, nil
}

// ToggleOnline flips availability for the caller's own profile. Gated on
// approval: an unapproved or rejected profile always fails, whatever the
// requested direction.
func (s *Service) ToggleOnline(ctx context.Context, userID int64) (bool, error) {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}

	if !p.Bookable() {
		return false, ErrNotApproved
	}

	newState := !p.IsOnline
	if err := s.providers.SetOnline(ctx, p.ID, newState); err != nil {
		return false, err
	}
	return newState, nil
}

// DashboardStats aggregates the provider's own booking counters and summed
// recorded earnings.
func (s *Service) DashboardStats(ctx context.Context, userID int64) (*DashboardStats, error) {
	p, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.attachNames(ctx, p)

	total, err := s.bookings.CountForProvider(ctx, p.ID, "")
	if err != nil {
		return nil, err
	}
	pending, err := s.bookings.CountForProvider(ctx, p.ID, domain.BookingPending)
	if err != nil {
		return nil, err
	}
	completed, err := s.bookings.CountForProvider(ctx, p.ID, domain.BookingCompleted)
	if err != nil {
		return nil, err
	}
	earnings, err := s.bookings.SumProviderEarnings(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Provider:          p,
		TotalBookings:     total,
		PendingBookings:   pending,
		CompletedBookings: completed,
		TotalEarnings:     earnings,
	}, nil
}

// attachNames is best-effort: a deleted category or sub-service leaves the
// name empty instead of failing the read.
func (s *Service) attachNames(ctx context.Context, p *domain.ServiceProvider) {
	if cat, err := s.catalog.GetCategoryByID(ctx, p.CategoryID); err == nil {
		p.CategoryName = cat.Name
	}
	if sub, err := s.catalog.GetSubServiceByID(ctx, p.SubServiceID); err == nil {
		p.SubServiceName = sub.Name
	}
}
