package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type MockProviderRepository struct {
	mock.Mock
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) GetByUserID(ctx context.Context, userID int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) ListApproved(ctx context.Context, f repository.ProviderFilter) ([]domain.ServiceProvider, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ServiceProvider), args.Error(1)
}

func (m *MockProviderRepository) SetOnline(ctx context.Context, providerID int64, online bool) error {
	args := m.Called(ctx, providerID, online)
	return args.Error(0)
}

type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) GetCategoryByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceCategory), args.Error(1)
}

func (m *MockCatalogReader) GetSubServiceByID(ctx context.Context, id int64) (*domain.SubService, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubService), args.Error(1)
}

type MockReviewReader struct {
	mock.Mock
}

func (m *MockReviewReader) GetByProvider(ctx context.Context, providerID int64, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, providerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

type MockBookingStats struct {
	mock.Mock
}

func (m *MockBookingStats) CountForProvider(ctx context.Context, providerID int64, status domain.BookingStatus) (int64, error) {
	args := m.Called(ctx, providerID, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingStats) SumProviderEarnings(ctx context.Context, providerID int64) (float64, error) {
	args := m.Called(ctx, providerID)
	return args.Get(0).(float64), args.Error(1)
}

func newTestService() (*Service, *MockProviderRepository, *MockCatalogReader, *MockReviewReader, *MockBookingStats) {
	providers := new(MockProviderRepository)
	catalog := new(MockCatalogReader)
	reviews := new(MockReviewReader)
	bookings := new(MockBookingStats)
	svc := NewService(providers, catalog, reviews, bookings)
	return svc, providers, catalog, reviews, bookings
}

func TestService_List_AttachesNames(t *testing.T) {
	svc, providers, catalog, _, _ := newTestService()

	listed := []domain.ServiceProvider{
		{ID: 1, CategoryID: 2, SubServiceID: 7, IsApproved: true, IsOnline: true, Rating: 4.8},
		{ID: 2, CategoryID: 2, SubServiceID: 7, IsApproved: true, Rating: 4.9},
	}
	providers.On("ListApproved", mock.Anything, repository.ProviderFilter{City: "Ahmedabad"}).Return(listed, nil)
	catalog.On("GetCategoryByID", mock.Anything, int64(2)).Return(&domain.ServiceCategory{ID: 2, Name: "Home Services"}, nil)
	catalog.On("GetSubServiceByID", mock.Anything, int64(7)).Return(&domain.SubService{ID: 7, Name: "Plumber"}, nil)

	got, err := svc.List(context.Background(), repository.ProviderFilter{City: "Ahmedabad"})

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "Home Services", got[0].CategoryName)
	assert.Equal(t, "Plumber", got[1].SubServiceName)
	// Repository ordering is preserved as-is.
	assert.Equal(t, int64(1), got[0].ID)
}

func TestService_Get_NotFound(t *testing.T) {
	svc, providers, _, _, _ := newTestService()

	providers.On("GetByID", mock.Anything, int64(9)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_ToggleOnline_FlipsState(t *testing.T) {
	svc, providers, _, _, _ := newTestService()

	p := &domain.ServiceProvider{ID: 5, UserID: 50, IsApproved: true, IsOnline: false}
	providers.On("GetByUserID", mock.Anything, int64(50)).Return(p, nil)
	providers.On("SetOnline", mock.Anything, int64(5), true).Return(nil)

	online, err := svc.ToggleOnline(context.Background(), 50)

	assert.NoError(t, err)
	assert.True(t, online)
}

func TestService_ToggleOnline_Unapproved(t *testing.T) {
	svc, providers, _, _, _ := newTestService()

	p := &domain.ServiceProvider{ID: 5, UserID: 50, IsApproved: false}
	providers.On("GetByUserID", mock.Anything, int64(50)).Return(p, nil)

	_, err := svc.ToggleOnline(context.Background(), 50)
	assert.ErrorIs(t, err, ErrNotApproved)
	providers.AssertNotCalled(t, "SetOnline", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_ToggleOnline_Rejected(t *testing.T) {
	svc, providers, _, _, _ := newTestService()

	p := &domain.ServiceProvider{ID: 5, UserID: 50, IsApproved: true, IsRejected: true}
	providers.On("GetByUserID", mock.Anything, int64(50)).Return(p, nil)

	_, err := svc.ToggleOnline(context.Background(), 50)
	assert.ErrorIs(t, err, ErrNotApproved)
}

func TestService_DashboardStats(t *testing.T) {
	svc, providers, catalog, _, bookings := newTestService()

	p := &domain.ServiceProvider{ID: 5, UserID: 50, CategoryID: 2, SubServiceID: 7, IsApproved: true}
	providers.On("GetByUserID", mock.Anything, int64(50)).Return(p, nil)
	catalog.On("GetCategoryByID", mock.Anything, int64(2)).Return(&domain.ServiceCategory{ID: 2, Name: "Home Services"}, nil)
	catalog.On("GetSubServiceByID", mock.Anything, int64(7)).Return(&domain.SubService{ID: 7, Name: "Plumber"}, nil)
	bookings.On("CountForProvider", mock.Anything, int64(5), domain.BookingStatus("")).Return(int64(12), nil)
	bookings.On("CountForProvider", mock.Anything, int64(5), domain.BookingPending).Return(int64(3), nil)
	bookings.On("CountForProvider", mock.Anything, int64(5), domain.BookingCompleted).Return(int64(8), nil)
	bookings.On("SumProviderEarnings", mock.Anything, int64(5)).Return(3400.0, nil)

	stats, err := svc.DashboardStats(context.Background(), 50)

	assert.NoError(t, err)
	assert.Equal(t, int64(12), stats.TotalBookings)
	assert.Equal(t, int64(3), stats.PendingBookings)
	assert.Equal(t, int64(8), stats.CompletedBookings)
	assert.Equal(t, 3400.0, stats.TotalEarnings)
}
