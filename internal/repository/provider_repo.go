package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type ProviderRepository struct {
	db *gorm.DB
}

func NewProviderRepository(db *gorm.DB) *ProviderRepository {
	return &ProviderRepository{db: db}
}

type providerModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	UserID          int64     `gorm:"column:user_id;uniqueIndex"`
	FullName        string    `gorm:"column:full_name"`
	Email           string    `gorm:"column:email"`
	CategoryID      int64     `gorm:"column:category_id;index"`
	SubServiceID    int64     `gorm:"column:sub_service_id;index"`
	ExperienceYears int       `gorm:"column:experience_years"`
	BasePrice       float64   `gorm:"column:base_price"`
	Rating          float64   `gorm:"column:rating"`
	TotalReviews    int       `gorm:"column:total_reviews"`
	IsVerified      bool      `gorm:"column:is_verified"`
	IsApproved      bool      `gorm:"column:is_approved;index"`
	IsRejected      bool      `gorm:"column:is_rejected"`
	IsOnline        bool      `gorm:"column:is_online"`
	City            string    `gorm:"column:city;index"`
	CreatedAt       time.Time `gorm:"column:created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at"`
}

func (providerModel) TableName() string { return "service_providers" }

func toDomainProvider(m providerModel) *domain.ServiceProvider {
	return &domain.ServiceProvider{
		ID:              m.ID,
		UserID:          m.UserID,
		FullName:        m.FullName,
		Email:           m.Email,
		CategoryID:      m.CategoryID,
		SubServiceID:    m.SubServiceID,
		ExperienceYears: m.ExperienceYears,
		BasePrice:       m.BasePrice,
		Rating:          m.Rating,
		TotalReviews:    m.TotalReviews,
		IsVerified:      m.IsVerified,
		IsApproved:      m.IsApproved,
		IsRejected:      m.IsRejected,
		IsOnline:        m.IsOnline,
		City:            m.City,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toProviderModel(p *domain.ServiceProvider) providerModel {
	return providerModel{
		ID:              p.ID,
		UserID:          p.UserID,
		FullName:        p.FullName,
		Email:           p.Email,
		CategoryID:      p.CategoryID,
		SubServiceID:    p.SubServiceID,
		ExperienceYears: p.ExperienceYears,
		BasePrice:       p.BasePrice,
		Rating:          p.Rating,
		TotalReviews:    p.TotalReviews,
		IsVerified:      p.IsVerified,
		IsApproved:      p.IsApproved,
		IsRejected:      p.IsRejected,
		IsOnline:        p.IsOnline,
		City:            p.City,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func (r *ProviderRepository) Create(ctx context.Context, p *domain.ServiceProvider) error {
	return r.CreateTx(r.db.WithContext(ctx), p)
}

// CreateTx inserts within the caller's transaction; provider signup creates
// the user row and the profile row atomically.
func (r *ProviderRepository) CreateTx(tx *gorm.DB, p *domain.ServiceProvider) error {
	m := toProviderModel(p)
	if err := tx.Create(&m).Error; err != nil {
		return err
	}
	*p = *toDomainProvider(m)
	return nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (*domain.ServiceProvider, error) {
	var m providerModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProvider(m), nil
}

func (r *ProviderRepository) GetByUserID(ctx context.Context, userID int64) (*domain.ServiceProvider, error) {
	var m providerModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProvider(m), nil
}

// ProviderFilter narrows the public directory listing; zero values are
// ignored.
type ProviderFilter struct {
	SubServiceID int64
	CategoryID   int64
	City         string
}

// ListApproved returns bookable providers only. Ordering is a contract:
// online first, then rating desc, experience desc, id asc.
func (r *ProviderRepository) ListApproved(ctx context.Context, f ProviderFilter) ([]domain.ServiceProvider, error) {
	q := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("is_approved = ? AND is_rejected = ?", true, false)

	if f.SubServiceID > 0 {
		q = q.Where("sub_service_id = ?", f.SubServiceID)
	}
	if f.CategoryID > 0 {
		q = q.Where("category_id = ?", f.CategoryID)
	}
	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}

	var rows []providerModel
	err := q.Order("is_online DESC, rating DESC, experience_years DESC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ServiceProvider, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProvider(m))
	}
	return out, nil
}

// ListAll returns every profile regardless of vetting state (admin view).
func (r *ProviderRepository) ListAll(ctx context.Context) ([]domain.ServiceProvider, error) {
	var rows []providerModel
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.ServiceProvider, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainProvider(m))
	}
	return out, nil
}

func (r *ProviderRepository) SetApproved(ctx context.Context, providerID int64) error {
	return r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("id = ?", providerID).
		Updates(map[string]any{"is_approved": true, "is_verified": true}).Error
}

// SetRejected flips the terminal flag and forces the profile offline.
func (r *ProviderRepository) SetRejected(ctx context.Context, providerID int64) error {
	return r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("id = ?", providerID).
		Updates(map[string]any{"is_rejected": true, "is_approved": false, "is_online": false}).Error
}

func (r *ProviderRepository) SetOnline(ctx context.Context, providerID int64, online bool) error {
	return r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("id = ?", providerID).
		Update("is_online", online).Error
}

func (r *ProviderRepository) CountApproved(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("is_approved = ?", true).
		Count(&cnt).Error
	return cnt, err
}

func (r *ProviderRepository) CountPending(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("is_approved = ?", false).
		Count(&cnt).Error
	return cnt, err
}

func (r *ProviderRepository) CountApprovedByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&providerModel{}).
		Where("category_id = ? AND is_approved = ?", categoryID, true).
		Count(&cnt).Error
	return cnt, err
}
