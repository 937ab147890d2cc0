package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) DB() *gorm.DB { return nil }

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	if u != nil && args.Error(0) == nil {
		u.ID = 10 // simulate DB insert
	}
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) UpdateCity(ctx context.Context, userID int64, city string) error {
	args := m.Called(ctx, userID, city)
	return args.Error(0)
}

type mockProviderRepo struct {
	mock.Mock
}

func (m *mockProviderRepo) CreateTx(tx *gorm.DB, p *domain.ServiceProvider) error {
	args := m.Called(tx, p)
	return args.Error(0)
}

func (m *mockProviderRepo) GetByUserID(ctx context.Context, userID int64) (*domain.ServiceProvider, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ServiceProvider), args.Error(1)
}

type mockCityRepo struct {
	mock.Mock
}

func (m *mockCityRepo) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Signup_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	providerRepo := new(mockProviderRepo)
	cityRepo := new(mockCityRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	jwtSvc.On("GenerateToken", mock.Anything, "customer").Return("fake-jwt-token", nil)

	service := NewService(userRepo, providerRepo, cityRepo, jwtSvc)

	res, err := service.Signup(context.Background(), SignupRequest{
		FullName:        "Priya Shah",
		Email:           "Priya@Example.com",
		Password:        "securepass",
		ConfirmPassword: "securepass",
		Role:            "customer",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", res.Token)
	assert.Equal(t, "priya@example.com", res.User.Email)
	assert.Empty(t, res.User.PasswordHash)
}

func TestService_Signup_PasswordMismatch(t *testing.T) {
	service := NewService(new(mockUserRepo), new(mockProviderRepo), new(mockCityRepo), new(mockJWTService))

	_, err := service.Signup(context.Background(), SignupRequest{
		FullName:        "Priya Shah",
		Email:           "priya@example.com",
		Password:        "securepass",
		ConfirmPassword: "other",
		Role:            "customer",
	})

	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestService_Signup_AdminRoleRefused(t *testing.T) {
	service := NewService(new(mockUserRepo), new(mockProviderRepo), new(mockCityRepo), new(mockJWTService))

	_, err := service.Signup(context.Background(), SignupRequest{
		FullName:        "Sneaky",
		Email:           "sneaky@example.com",
		Password:        "securepass",
		ConfirmPassword: "securepass",
		Role:            "admin",
	})

	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_Signup_EmailTaken(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	service := NewService(userRepo, new(mockProviderRepo), new(mockCityRepo), new(mockJWTService))

	_, err := service.Signup(context.Background(), SignupRequest{
		FullName:        "Priya Shah",
		Email:           "priya@example.com",
		Password:        "securepass",
		ConfirmPassword: "securepass",
		Role:            "customer",
	})

	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestService_ProviderSignup_UnknownCity(t *testing.T) {
	cityRepo := new(mockCityRepo)
	cityRepo.On("ExistsByName", mock.Anything, "Atlantis").Return(false, nil)

	service := NewService(new(mockUserRepo), new(mockProviderRepo), cityRepo, new(mockJWTService))

	_, err := service.ProviderSignup(context.Background(), ProviderSignupRequest{
		FullName:        "Ramesh Patel",
		Email:           "ramesh@example.com",
		Password:        "securepass",
		ConfirmPassword: "securepass",
		CategoryID:      1,
		SubServiceID:    2,
		BasePrice:       500,
		City:            "Atlantis",
	})

	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{
		ID:           10,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleCustomer,
	}
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)
	jwtSvc.On("GenerateToken", int64(10), "customer").Return("fake-jwt-token", nil)

	service := NewService(userRepo, new(mockProviderRepo), new(mockCityRepo), jwtSvc)

	res, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "fake-jwt-token", res.Token)
	assert.Empty(t, res.User.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existing := &domain.User{ID: 10, Email: "user@example.com", PasswordHash: string(hashed)}
	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existing, nil)

	service := NewService(userRepo, new(mockProviderRepo), new(mockCityRepo), new(mockJWTService))

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, new(mockProviderRepo), new(mockCityRepo), new(mockJWTService))

	_, err := service.Login(context.Background(), LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_UpdateCity_UnknownCity(t *testing.T) {
	cityRepo := new(mockCityRepo)
	cityRepo.On("ExistsByName", mock.Anything, "Atlantis").Return(false, nil)

	service := NewService(new(mockUserRepo), new(mockProviderRepo), cityRepo, new(mockJWTService))

	err := service.UpdateCity(context.Background(), 10, "Atlantis")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestService_Me_AttachesProviderProfile(t *testing.T) {
	userRepo := new(mockUserRepo)
	providerRepo := new(mockProviderRepo)

	userRepo.On("GetByID", mock.Anything, int64(10)).Return(&domain.User{ID: 10, Role: domain.RoleProvider}, nil)
	providerRepo.On("GetByUserID", mock.Anything, int64(10)).Return(&domain.ServiceProvider{ID: 5, UserID: 10}, nil)

	service := NewService(userRepo, providerRepo, new(mockCityRepo), new(mockJWTService))

	user, profile, err := service.Me(context.Background(), 10)

	assert.NoError(t, err)
	assert.Equal(t, int64(10), user.ID)
	assert.NotNil(t, profile)
	assert.Equal(t, int64(5), profile.ID)
}
