package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users     UserRepository
	providers ProviderRepository
	cities    CityRepository
	jwt       jwtService
}

type AuthResult struct {
	User       *domain.User
	Token      string
	ProviderID int64
}

func NewService(users UserRepository, providers ProviderRepository, cities CityRepository, jwt jwtService) *Service {
	return &Service{
		users:     users,
		providers: providers,
		cities:    cities,
		jwt:       jwt,
	}
}

// Signup registers a plain account. Role is restricted to customer or
// provider; admin accounts come only from seeding.
func (s *Service) Signup(ctx context.Context, req SignupRequest) (*AuthResult, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	role := domain.UserRole(req.Role)
	if role != domain.RoleCustomer && role != domain.RoleProvider {
		return nil, ErrValidation
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        normalizeEmail(req.Email),
		PasswordHash: hash,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, Token: token}, nil
}

// ProviderSignup creates the user and the pending provider profile in one
// transaction; the profile starts unapproved and offline.
func (s *Service) ProviderSignup(ctx context.Context, req ProviderSignupRequest) (*AuthResult, error) {
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if req.BasePrice < 0 || req.Experience < 0 {
		return nil, ErrValidation
	}

	if ok, err := s.cities.ExistsByName(ctx, req.City); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrUnknownCity
	}

	hash, err := s.hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user := &domain.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleProvider,
		City:         req.City,
	}
	profile := &domain.ServiceProvider{
		FullName:        user.FullName,
		Email:           user.Email,
		CategoryID:      req.CategoryID,
		SubServiceID:    req.SubServiceID,
		ExperienceYears: req.Experience,
		BasePrice:       req.BasePrice,
		City:            req.City,
		IsApproved:      false,
		IsOnline:        false,
	}

	err = s.users.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return s.providers.CreateTx(tx, profile)
	})
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, Token: token, ProviderID: profile.ID}, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""
	return &AuthResult{User: user, Token: token}, nil
}

// Me returns the acting user, with the provider profile attached when the
// account has one.
func (s *Service) Me(ctx context.Context, userID int64) (*domain.User, *domain.ServiceProvider, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	user.PasswordHash = ""

	if user.Role != domain.RoleProvider {
		return user, nil, nil
	}

	profile, err := s.providers.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user, nil, nil
		}
		return nil, nil, err
	}
	return user, profile, nil
}

func (s *Service) UpdateCity(ctx context.Context, userID int64, city string) error {
	if ok, err := s.cities.ExistsByName(ctx, city); err != nil {
		return err
	} else if !ok {
		return ErrUnknownCity
	}
	return s.users.UpdateCity(ctx, userID, city)
}

func (s *Service) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
