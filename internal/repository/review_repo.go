package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

var ErrDuplicateBookingReview = errors.New("review already exists for booking")

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	BookingID    int64     `gorm:"column:booking_id;uniqueIndex"`
	CustomerID   int64     `gorm:"column:customer_id"`
	CustomerName string    `gorm:"column:customer_name"`
	ProviderID   int64     `gorm:"column:provider_id;index"`
	Rating       int       `gorm:"column:rating"`
	Comment      *string   `gorm:"column:comment"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) *domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}

	return &domain.Review{
		ID:           m.ID,
		BookingID:    m.BookingID,
		CustomerID:   m.CustomerID,
		CustomerName: m.CustomerName,
		ProviderID:   m.ProviderID,
		Rating:       m.Rating,
		Comment:      comment,
		CreatedAt:    m.CreatedAt,
	}
}

func toReviewModel(rv *domain.Review) reviewModel {
	var comment *string
	if rv.Comment != "" {
		v := rv.Comment
		comment = &v
	}

	return reviewModel{
		ID:           rv.ID,
		BookingID:    rv.BookingID,
		CustomerID:   rv.CustomerID,
		CustomerName: rv.CustomerName,
		ProviderID:   rv.ProviderID,
		Rating:       rv.Rating,
		Comment:      comment,
		CreatedAt:    rv.CreatedAt,
	}
}

// CreateWithRatingUpdate inserts the review and folds it into the provider's
// running mean inside one transaction. The provider update is a single SQL
// statement doing the arithmetic in place, so concurrent submissions for the
// same provider serialize on the row instead of losing increments:
//
//	rating = round((rating*total_reviews + new) / (total_reviews+1), 1)
//
// The unique index on booking_id turns a duplicate submission into
// ErrDuplicateBookingReview.
func (r *ReviewRepository) CreateWithRatingUpdate(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := toReviewModel(rv)
		if err := tx.Create(&m).Error; err != nil {
			if IsUniqueViolation(err) {
				return ErrDuplicateBookingReview
			}
			return err
		}
		*rv = *toDomainReview(m)

		res := tx.Exec(`
UPDATE service_providers
SET rating = ROUND((rating * total_reviews + ?) * 1.0 / (total_reviews + 1), 1),
    total_reviews = total_reviews + 1
WHERE id = ?`, rv.Rating, rv.ProviderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *ReviewRepository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.Review, error) {
	var m reviewModel
	tx := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainReview(m), nil
}

func (r *ReviewRepository) GetByProvider(ctx context.Context, providerID int64, limit int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainReview(m))
	}
	return out, nil
}
