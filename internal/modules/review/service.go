package review

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type Service struct {
	reviews   ReviewRepository
	bookings  BookingReader
	providers ProviderReader
	users     UserReader
	notifs    NotificationSender
}

func NewService(
	reviews ReviewRepository,
	bookings BookingReader,
	providers ProviderReader,
	users UserReader,
	notifs NotificationSender,
) *Service {
	return &Service{
		reviews:   reviews,
		bookings:  bookings,
		providers: providers,
		users:     users,
		notifs:    notifs,
	}
}

// Submit records one review against a completed booking and folds its
// rating into the provider's running average inside the same transaction.
func (s *Service) Submit(ctx context.Context, customerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.BookingID <= 0 || req.Rating < 1 || req.Rating > 5 {
		return nil, ErrValidation
	}

	b, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if b.CustomerID != customerID {
		return nil, ErrForbidden
	}
	if b.Status != domain.BookingCompleted {
		return nil, ErrInvalidState
	}

	customerName := b.CustomerName
	if customerName == "" {
		if u, err := s.users.GetByID(ctx, customerID); err == nil {
			customerName = u.FullName
		}
	}

	rv := &domain.Review{
		BookingID:    b.ID,
		CustomerID:   customerID,
		CustomerName: customerName,
		ProviderID:   b.ProviderID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	if err := s.reviews.CreateWithRatingUpdate(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrDuplicateBookingReview) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	if s.notifs != nil {
		if p, err := s.providers.GetByID(ctx, b.ProviderID); err == nil {
			_ = s.notifs.NotifyNewReview(ctx, p.UserID, rv.ID, rv.Rating)
		}
	}

	return rv, nil
}

// ListForProvider returns the newest reviews left on a provider's bookings.
func (s *Service) ListForProvider(ctx context.Context, providerID int64, limit int) ([]domain.Review, error) {
	return s.reviews.GetByProvider(ctx, providerID, limit)
}
