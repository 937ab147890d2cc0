package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID               int64      `gorm:"column:id;primaryKey"`
	CustomerID       int64      `gorm:"column:customer_id;index"`
	CustomerName     string     `gorm:"column:customer_name"`
	ProviderID       int64      `gorm:"column:provider_id;index"`
	ProviderName     string     `gorm:"column:provider_name"`
	SubServiceID     int64      `gorm:"column:sub_service_id"`
	SubServiceName   string     `gorm:"column:sub_service_name"`
	CategoryName     string     `gorm:"column:category_name"`
	BookingDate      string     `gorm:"column:booking_date"`
	BookingTime      string     `gorm:"column:booking_time"`
	Address          string     `gorm:"column:address"`
	City             string     `gorm:"column:city"`
	Notes            *string    `gorm:"column:notes"`
	Status           string     `gorm:"column:status;index"`
	BasePrice        float64    `gorm:"column:base_price"`
	CommissionPct    float64    `gorm:"column:commission_percentage"`
	Commission       float64    `gorm:"column:commission"`
	ProviderEarnings float64    `gorm:"column:provider_earnings"`
	CreatedAt        time.Time  `gorm:"column:created_at"`
	UpdatedAt        time.Time  `gorm:"column:updated_at"`
	CompletedAt      *time.Time `gorm:"column:completed_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	var notes string
	if m.Notes != nil {
		notes = *m.Notes
	}

	return &domain.Booking{
		ID:               m.ID,
		CustomerID:       m.CustomerID,
		CustomerName:     m.CustomerName,
		ProviderID:       m.ProviderID,
		ProviderName:     m.ProviderName,
		SubServiceID:     m.SubServiceID,
		SubServiceName:   m.SubServiceName,
		CategoryName:     m.CategoryName,
		BookingDate:      m.BookingDate,
		BookingTime:      m.BookingTime,
		Address:          m.Address,
		City:             m.City,
		Notes:            notes,
		Status:           domain.BookingStatus(m.Status),
		BasePrice:        m.BasePrice,
		CommissionPct:    m.CommissionPct,
		Commission:       m.Commission,
		ProviderEarnings: m.ProviderEarnings,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		CompletedAt:      m.CompletedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	var notes *string
	if b.Notes != "" {
		v := b.Notes
		notes = &v
	}

	return bookingModel{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		CustomerName:     b.CustomerName,
		ProviderID:       b.ProviderID,
		ProviderName:     b.ProviderName,
		SubServiceID:     b.SubServiceID,
		SubServiceName:   b.SubServiceName,
		CategoryName:     b.CategoryName,
		BookingDate:      b.BookingDate,
		BookingTime:      b.BookingTime,
		Address:          b.Address,
		City:             b.City,
		Notes:            notes,
		Status:           string(b.Status),
		BasePrice:        b.BasePrice,
		CommissionPct:    b.CommissionPct,
		Commission:       b.Commission,
		ProviderEarnings: b.ProviderEarnings,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		CompletedAt:      b.CompletedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// UpdateStatusFrom is the compare-and-set for the state machine: the row is
// touched only while it still holds the expected status. Returns false when
// another transition already won.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, bookingID int64, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", bookingID, string(from)).
		Update("status", string(to))
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

// Complete is the terminal CAS: accepted -> completed plus the financial
// snapshot, written in the same statement so the split can never be applied
// twice or recomputed later.
func (r *BookingRepository) Complete(ctx context.Context, bookingID int64, commissionPct, commission, earnings float64) (bool, error) {
	now := time.Now()
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", bookingID, string(domain.BookingAccepted)).
		Updates(map[string]any{
			"status":                string(domain.BookingCompleted),
			"commission_percentage": commissionPct,
			"commission":            commission,
			"provider_earnings":     earnings,
			"completed_at":          now,
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *BookingRepository) listWhere(ctx context.Context, query string, args ...any) ([]domain.Booking, error) {
	var rows []bookingModel
	q := r.db.WithContext(ctx)
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	return r.listWhere(ctx, "customer_id = ?", customerID)
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	return r.listWhere(ctx, "provider_id = ?", providerID)
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	return r.listWhere(ctx, "")
}

func (r *BookingRepository) CountByStatus(ctx context.Context, status domain.BookingStatus) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", string(status)).
		Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) CountTotal(ctx context.Context) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&bookingModel{}).Count(&cnt).Error
	return cnt, err
}

func (r *BookingRepository) CountForProvider(ctx context.Context, providerID int64, status domain.BookingStatus) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("provider_id = ?", providerID)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}
	var cnt int64
	err := q.Count(&cnt).Error
	return cnt, err
}

// SumPlatformRevenue sums recorded commission over completed bookings.
func (r *BookingRepository) SumPlatformRevenue(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("status = ?", string(domain.BookingCompleted)).
		Select("COALESCE(SUM(commission), 0)").
		Scan(&total).Error
	return total, err
}

// SumProviderEarnings sums recorded net earnings for one provider.
func (r *BookingRepository) SumProviderEarnings(ctx context.Context, providerID int64) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("provider_id = ? AND status = ?", providerID, string(domain.BookingCompleted)).
		Select("COALESCE(SUM(provider_earnings), 0)").
		Scan(&total).Error
	return total, err
}
