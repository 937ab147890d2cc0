package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type Service struct {
	providers ProviderRepository
	bookings  BookingRepository
	users     UserCounter
	catalog   CatalogReader
	settings  SettingsRepository
	notifs    NotificationSender
}

func NewService(
	providers ProviderRepository,
	bookings BookingRepository,
	users UserCounter,
	catalog CatalogReader,
	settings SettingsRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		providers: providers,
		bookings:  bookings,
		users:     users,
		catalog:   catalog,
		settings:  settings,
		notifs:    notifs,
	}
}

// ListProviders returns every provider profile regardless of moderation
// state, with catalog names attached for the admin dashboard.
func (s *Service) ListProviders(ctx context.Context) ([]domain.ServiceProvider, error) {
	providers, err := s.providers.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	names := map[int64]string{}
	for i := range providers {
		p := &providers[i]
		if _, ok := names[p.CategoryID]; !ok {
			if cat, err := s.catalog.GetCategoryByID(ctx, p.CategoryID); err == nil {
				names[p.CategoryID] = cat.Name
			}
		}
		p.CategoryName = names[p.CategoryID]
	}
	return providers, nil
}

// ApproveProvider flips a pending profile to approved. A rejected profile
// stays rejected; approval after rejection is refused.
func (s *Service) ApproveProvider(ctx context.Context, providerID int64) (*domain.ServiceProvider, error) {
	p, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if p.IsRejected {
		return nil, ErrProviderRejected
	}

	if err := s.providers.SetApproved(ctx, providerID); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.NotifyProviderApproved(ctx, p.UserID, p.ID)
	}
	return s.getProvider(ctx, providerID)
}

// RejectProvider marks the profile rejected. The decision is final: the
// profile drops out of listings, cannot go online, and cannot be approved
// later.
func (s *Service) RejectProvider(ctx context.Context, providerID int64) (*domain.ServiceProvider, error) {
	p, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	if err := s.providers.SetRejected(ctx, providerID); err != nil {
		return nil, err
	}
	if s.notifs != nil {
		_ = s.notifs.NotifyProviderRejected(ctx, p.UserID, p.ID)
	}
	return s.getProvider(ctx, providerID)
}

func (s *Service) ListBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// GetAnalytics aggregates the platform counters shown on the admin
// dashboard. Admin accounts are not counted as users.
func (s *Service) GetAnalytics(ctx context.Context) (*Analytics, error) {
	a := &Analytics{}

	var err error
	if a.TotalCustomers, err = s.users.CountByRole(ctx, domain.RoleCustomer); err != nil {
		return nil, err
	}
	if a.TotalProviders, err = s.users.CountByRole(ctx, domain.RoleProvider); err != nil {
		return nil, err
	}
	a.TotalUsers = a.TotalCustomers + a.TotalProviders

	if a.ApprovedProviders, err = s.providers.CountApproved(ctx); err != nil {
		return nil, err
	}
	if a.PendingProviders, err = s.providers.CountPending(ctx); err != nil {
		return nil, err
	}

	if a.TotalBookings, err = s.bookings.CountTotal(ctx); err != nil {
		return nil, err
	}
	if a.PendingBookings, err = s.bookings.CountByStatus(ctx, domain.BookingPending); err != nil {
		return nil, err
	}
	if a.AcceptedBookings, err = s.bookings.CountByStatus(ctx, domain.BookingAccepted); err != nil {
		return nil, err
	}
	if a.CompletedBookings, err = s.bookings.CountByStatus(ctx, domain.BookingCompleted); err != nil {
		return nil, err
	}
	if a.RejectedBookings, err = s.bookings.CountByStatus(ctx, domain.BookingRejected); err != nil {
		return nil, err
	}

	if a.TotalRevenue, err = s.bookings.SumPlatformRevenue(ctx); err != nil {
		return nil, err
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	a.CommissionPercentage = settings.CommissionPercentage

	return a, nil
}

// UpdateCommission changes the platform-wide commission percentage. Only
// bookings completed after the change pick up the new rate.
func (s *Service) UpdateCommission(ctx context.Context, pct float64) (*domain.PlatformSettings, error) {
	if pct < 0 || pct > 100 {
		return nil, ErrValidation
	}
	if err := s.settings.SetCommission(ctx, pct); err != nil {
		return nil, err
	}
	return s.settings.Get(ctx)
}

func (s *Service) getProvider(ctx context.Context, providerID int64) (*domain.ServiceProvider, error) {
	p, err := s.providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}
