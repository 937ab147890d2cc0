package notification

import (
	"context"
	"fmt"
)

// Service persists notifications and mirrors them onto the websocket hub.
// Senders are fire-and-forget: callers ignore errors so a failed push can
// never roll back the state transition that produced it.
type Service struct {
	repo *Repository
	hub  *Hub
}

func NewService(repo *Repository, hub *Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

func (s *Service) Create(ctx context.Context, userID int64, t Type, title, message string, data map[string]any) error {
	n := &Notification{
		UserID:  userID,
		Type:    t,
		Title:   title,
		Message: message,
		IsRead:  false,
	}
	if err := s.repo.Create(ctx, n, data); err != nil {
		return err
	}
	if s.hub != nil {
		_ = s.hub.SendToUser(userID, n)
	}
	return nil
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	list, err := s.repo.GetByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, providerUserID, bookingID int64, subService, city string) error {
	return s.Create(
		ctx,
		providerUserID,
		TypeBookingCreated,
		"New booking request",
		fmt.Sprintf("New %s booking request in %s", subService, city),
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingAccepted(ctx context.Context, customerUserID, bookingID int64) error {
	return s.Create(
		ctx,
		customerUserID,
		TypeBookingAccepted,
		"Booking accepted",
		"Your booking was accepted by the provider",
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingRejected(ctx context.Context, customerUserID, bookingID int64) error {
	return s.Create(
		ctx,
		customerUserID,
		TypeBookingRejected,
		"Booking rejected",
		"Your booking was rejected by the provider",
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyBookingCompleted(ctx context.Context, customerUserID, bookingID int64) error {
	return s.Create(
		ctx,
		customerUserID,
		TypeBookingCompleted,
		"Booking completed",
		"Your booking was marked completed. You can leave a review now",
		map[string]any{"booking_id": bookingID},
	)
}

func (s *Service) NotifyProviderApproved(ctx context.Context, providerUserID, providerID int64) error {
	return s.Create(
		ctx,
		providerUserID,
		TypeProviderApproved,
		"Profile approved",
		"Your provider profile was approved. You can go online and receive bookings",
		map[string]any{"provider_id": providerID},
	)
}

func (s *Service) NotifyProviderRejected(ctx context.Context, providerUserID, providerID int64) error {
	return s.Create(
		ctx,
		providerUserID,
		TypeProviderRejected,
		"Profile rejected",
		"Your provider profile was rejected by the administrator",
		map[string]any{"provider_id": providerID},
	)
}

func (s *Service) NotifyNewReview(ctx context.Context, providerUserID, reviewID int64, rating int) error {
	return s.Create(
		ctx,
		providerUserID,
		TypeNewReview,
		"New review",
		fmt.Sprintf("A customer rated your service %d/5", rating),
		map[string]any{"review_id": reviewID, "rating": rating},
	)
}
