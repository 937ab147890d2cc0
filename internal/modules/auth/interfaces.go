package auth

import (
	"context"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type UserRepository interface {
	DB() *gorm.DB
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateCity(ctx context.Context, userID int64, city string) error
}

type ProviderRepository interface {
	CreateTx(tx *gorm.DB, p *domain.ServiceProvider) error
	GetByUserID(ctx context.Context, userID int64) (*domain.ServiceProvider, error)
}

type CityRepository interface {
	ExistsByName(ctx context.Context, name string) (bool, error)
}
