package booking

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type Service struct {
	bookings  BookingRepository
	providers ProviderRepository
	users     UserReader
	catalog   CatalogReader
	settings  SettingsReader
	notifs    NotificationSender
}

func NewService(
	bookings BookingRepository,
	providers ProviderRepository,
	users UserReader,
	catalog CatalogReader,
	settings SettingsReader,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings:  bookings,
		providers: providers,
		users:     users,
		catalog:   catalog,
		settings:  settings,
		notifs:    notifs,
	}
}

// Create opens a booking in pending state against one approved provider.
// Base price and all display names are snapshotted here; the commission
// split stays zero until completion.
func (s *Service) Create(ctx context.Context, customerID int64, actorRole string, req CreateBookingRequest) (*domain.Booking, error) {
	if actorRole != string(domain.RoleCustomer) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.BookingDate) == "" ||
		strings.TrimSpace(req.BookingTime) == "" ||
		strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.City) == "" {
		return nil, ErrValidation
	}

	customer, err := s.users.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	p, err := s.providers.GetByID(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !p.Bookable() {
		return nil, ErrProviderNotApproved
	}

	b := &domain.Booking{
		CustomerID:   customerID,
		CustomerName: customer.FullName,
		ProviderID:   p.ID,
		ProviderName: p.FullName,
		SubServiceID: req.SubServiceID,
		BookingDate:  req.BookingDate,
		BookingTime:  req.BookingTime,
		Address:      req.Address,
		City:         req.City,
		Notes:        req.Notes,
		Status:       domain.BookingPending,
		BasePrice:    p.BasePrice,
	}

	if sub, err := s.catalog.GetSubServiceByID(ctx, req.SubServiceID); err == nil {
		b.SubServiceName = sub.Name
	}
	if cat, err := s.catalog.GetCategoryByID(ctx, p.CategoryID); err == nil {
		b.CategoryName = cat.Name
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCreated(ctx, p.UserID, b.ID, b.SubServiceName, b.City)
	}

	return b, nil
}

// Accept moves pending -> accepted for the owning provider.
func (s *Service) Accept(ctx context.Context, providerUserID, bookingID int64) (*domain.Booking, error) {
	b, err := s.ownBooking(ctx, providerUserID, bookingID)
	if err != nil {
		return nil, err
	}

	ok, err := s.bookings.UpdateStatusFrom(ctx, b.ID, domain.BookingPending, domain.BookingAccepted)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingAccepted(ctx, b.CustomerID, b.ID)
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// Reject moves pending -> rejected for the owning provider. Terminal.
func (s *Service) Reject(ctx context.Context, providerUserID, bookingID int64) (*domain.Booking, error) {
	b, err := s.ownBooking(ctx, providerUserID, bookingID)
	if err != nil {
		return nil, err
	}

	ok, err := s.bookings.UpdateStatusFrom(ctx, b.ID, domain.BookingPending, domain.BookingRejected)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingRejected(ctx, b.CustomerID, b.ID)
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// Complete moves accepted -> completed and records the financial split. The
// commission percentage is read from the live settings at this instant and
// stored on the row; later settings changes never touch completed bookings.
func (s *Service) Complete(ctx context.Context, providerUserID, bookingID int64) (*domain.Booking, error) {
	b, err := s.ownBooking(ctx, providerUserID, bookingID)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	earnings, commission := ComputeEarnings(b.BasePrice, cfg.CommissionPercentage)

	ok, err := s.bookings.Complete(ctx, b.ID, cfg.CommissionPercentage, commission, earnings)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidTransition
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyBookingCompleted(ctx, b.CustomerID, b.ID)
	}

	return s.bookings.GetByID(ctx, b.ID)
}

// ListForCustomer returns the caller's own bookings across all statuses.
func (s *Service) ListForCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return s.bookings.ListByCustomer(ctx, customerID)
}

// ListForProvider resolves the caller's profile and returns its bookings.
func (s *Service) ListForProvider(ctx context.Context, providerUserID int64) ([]domain.Booking, error) {
	p, err := s.providers.GetByUserID(ctx, providerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.bookings.ListByProvider(ctx, p.ID)
}

// ownBooking loads the booking and verifies the acting user owns the
// provider side of it.
func (s *Service) ownBooking(ctx context.Context, providerUserID, bookingID int64) (*domain.Booking, error) {
	p, err := s.providers.GetByUserID(ctx, providerUserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}

	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if b.ProviderID != p.ID {
		return nil, ErrForbidden
	}
	return b, nil
}
