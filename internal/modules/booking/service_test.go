package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatusFrom(ctx context.Context, bookingID int64, from, to domain.BookingStatus) (bool, error) {
	args := m.Called(ctx, bookingID, from, to)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) Complete(ctx context.Context, bookingID int64, commissionPct, commission, earnings float64) (bool, error) {
	args := m.Called(ctx, bookingID, commissionPct, commission, earnings)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

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

type MockUserReader struct {
	mock.Mock
}

func (m *MockUserReader) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
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

type MockSettingsReader struct {
	mock.Mock
}

func (m *MockSettingsReader) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlatformSettings), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, providerUserID, bookingID int64, subService, city string) error {
	args := m.Called(ctx, providerUserID, bookingID, subService, city)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingAccepted(ctx context.Context, customerUserID, bookingID int64) error {
	args := m.Called(ctx, customerUserID, bookingID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingRejected(ctx context.Context, customerUserID, bookingID int64) error {
	args := m.Called(ctx, customerUserID, bookingID)
	return args.Error(0)
}

func (m *MockNotificationSender) NotifyBookingCompleted(ctx context.Context, customerUserID, bookingID int64) error {
	args := m.Called(ctx, customerUserID, bookingID)
	return args.Error(0)
}

func newTestService() (*Service, *MockBookingRepository, *MockProviderRepository, *MockUserReader, *MockCatalogReader, *MockSettingsReader, *MockNotificationSender) {
	bookings := new(MockBookingRepository)
	providers := new(MockProviderRepository)
	users := new(MockUserReader)
	catalog := new(MockCatalogReader)
	settings := new(MockSettingsReader)
	notifs := new(MockNotificationSender)
	svc := NewService(bookings, providers, users, catalog, settings, notifs)
	return svc, bookings, providers, users, catalog, settings, notifs
}

func approvedProvider() *domain.ServiceProvider {
	return &domain.ServiceProvider{
		ID:         5,
		UserID:     50,
		FullName:   "Ramesh Patel",
		CategoryID: 2,
		BasePrice:  500,
		IsApproved: true,
	}
}

func validCreateRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ProviderID:   5,
		SubServiceID: 7,
		BookingDate:  "2026-09-15",
		BookingTime:  "10:00",
		Address:      "12 MG Road",
		City:         "Ahmedabad",
	}
}

func TestService_Create_Success(t *testing.T) {
	svc, bookings, providers, users, catalog, _, notifs := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1, FullName: "Priya Shah"}, nil)
	providers.On("GetByID", mock.Anything, int64(5)).Return(approvedProvider(), nil)
	catalog.On("GetSubServiceByID", mock.Anything, int64(7)).Return(&domain.SubService{ID: 7, Name: "Plumber"}, nil)
	catalog.On("GetCategoryByID", mock.Anything, int64(2)).Return(&domain.ServiceCategory{ID: 2, Name: "Home Services"}, nil)
	bookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	notifs.On("NotifyBookingCreated", mock.Anything, int64(50), int64(999), "Plumber", "Ahmedabad").Return(nil)

	b, err := svc.Create(context.Background(), 1, "customer", validCreateRequest())

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, 500.0, b.BasePrice)
	assert.Equal(t, "Priya Shah", b.CustomerName)
	assert.Equal(t, "Ramesh Patel", b.ProviderName)
	assert.Equal(t, "Plumber", b.SubServiceName)
	assert.Equal(t, "Home Services", b.CategoryName)
	assert.Zero(t, b.Commission)
	assert.Zero(t, b.ProviderEarnings)
	notifs.AssertCalled(t, "NotifyBookingCreated", mock.Anything, int64(50), int64(999), "Plumber", "Ahmedabad")
}

func TestService_Create_ProviderRoleForbidden(t *testing.T) {
	svc, _, _, _, _, _, _ := newTestService()

	_, err := svc.Create(context.Background(), 1, "provider", validCreateRequest())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Create_MissingFields(t *testing.T) {
	svc, _, _, _, _, _, _ := newTestService()

	req := validCreateRequest()
	req.Address = "   "

	_, err := svc.Create(context.Background(), 1, "customer", req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Create_UnapprovedProvider(t *testing.T) {
	svc, _, providers, users, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	p := approvedProvider()
	p.IsApproved = false
	providers.On("GetByID", mock.Anything, int64(5)).Return(p, nil)

	_, err := svc.Create(context.Background(), 1, "customer", validCreateRequest())
	assert.ErrorIs(t, err, ErrProviderNotApproved)
}

func TestService_Create_RejectedProvider(t *testing.T) {
	svc, _, providers, users, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	p := approvedProvider()
	p.IsRejected = true
	providers.On("GetByID", mock.Anything, int64(5)).Return(p, nil)

	_, err := svc.Create(context.Background(), 1, "customer", validCreateRequest())
	assert.ErrorIs(t, err, ErrProviderNotApproved)
}

func TestService_Create_ProviderNotFound(t *testing.T) {
	svc, _, providers, users, _, _, _ := newTestService()

	users.On("GetByID", mock.Anything, int64(1)).Return(&domain.User{ID: 1}, nil)
	providers.On("GetByID", mock.Anything, int64(5)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), 1, "customer", validCreateRequest())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Accept_Success(t *testing.T) {
	svc, bookings, providers, _, _, _, notifs := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(approvedProvider(), nil)
	pending := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingPending}
	accepted := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingAccepted}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(pending, nil).Once()
	bookings.On("UpdateStatusFrom", mock.Anything, int64(7), domain.BookingPending, domain.BookingAccepted).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(accepted, nil)
	notifs.On("NotifyBookingAccepted", mock.Anything, int64(1), int64(7)).Return(nil)

	b, err := svc.Accept(context.Background(), 50, 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAccepted, b.Status)
}

func TestService_Accept_LostRace(t *testing.T) {
	svc, bookings, providers, _, _, _, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(approvedProvider(), nil)
	pending := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingPending}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(pending, nil)
	// Another transition already claimed the row.
	bookings.On("UpdateStatusFrom", mock.Anything, int64(7), domain.BookingPending, domain.BookingAccepted).Return(false, nil)

	_, err := svc.Accept(context.Background(), 50, 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_Accept_ForeignBooking(t *testing.T) {
	svc, bookings, providers, _, _, _, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(approvedProvider(), nil)
	other := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 99, Status: domain.BookingPending}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(other, nil)

	_, err := svc.Accept(context.Background(), 50, 7)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_Reject_Success(t *testing.T) {
	svc, bookings, providers, _, _, _, notifs := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(approvedProvider(), nil)
	pending := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingPending}
	rejected := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingRejected}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(pending, nil).Once()
	bookings.On("UpdateStatusFrom", mock.Anything, int64(7), domain.BookingPending, domain.BookingRejected).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(rejected, nil)
	notifs.On("NotifyBookingRejected", mock.Anything, int64(1), int64(7)).Return(nil)

	b, err := svc.Reject(context.Background(), 50, 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingRejected, b.Status)
}

func TestService_Complete_StoresEarningsSplit(t *testing.T) {
	svc, bookings, providers, _, _, settings, notifs := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(approvedProvider(), nil)
	accepted := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingAccepted, BasePrice: 500}
	completed := &domain.Booking{
		ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingCompleted,
		BasePrice: 500, CommissionPct: 15, Commission: 75, ProviderEarnings: 425,
	}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(accepted, nil).Once()
	settings.On("Get", mock.Anything).Return(&domain.PlatformSettings{CommissionPercentage: 15}, nil)
	bookings.On("Complete", mock.Anything, int64(7), 15.0, 75.0, 425.0).Return(true, nil)
	bookings.On("GetByID", mock.Anything, int64(7)).Return(completed, nil)
	notifs.On("NotifyBookingCompleted", mock.Anything, int64(1), int64(7)).Return(nil)

	b, err := svc.Complete(context.Background(), 50, 7)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, b.Status)
	assert.Equal(t, 75.0, b.Commission)
	assert.Equal(t, 425.0, b.ProviderEarnings)
	bookings.AssertCalled(t, "Complete", mock.Anything, int64(7), 15.0, 75.0, 425.0)
}

func TestService_Complete_NotAccepted(t *testing.T) {
	svc, bookings, providers, _, _, settings, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(approvedProvider(), nil)
	pending := &domain.Booking{ID: 7, CustomerID: 1, ProviderID: 5, Status: domain.BookingPending, BasePrice: 500}
	bookings.On("GetByID", mock.Anything, int64(7)).Return(pending, nil)
	settings.On("Get", mock.Anything).Return(&domain.PlatformSettings{CommissionPercentage: 15}, nil)
	bookings.On("Complete", mock.Anything, int64(7), 15.0, 75.0, 425.0).Return(false, nil)

	_, err := svc.Complete(context.Background(), 50, 7)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestService_ListForProvider_NoProfile(t *testing.T) {
	svc, _, providers, _, _, _, _ := newTestService()

	providers.On("GetByUserID", mock.Anything, int64(50)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ListForProvider(context.Background(), 50)
	assert.ErrorIs(t, err, ErrNotFound)
}
