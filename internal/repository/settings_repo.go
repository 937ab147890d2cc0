package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

// settingsRowID pins the singleton row.
const settingsRowID = 1

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

type settingsModel struct {
	ID                   int64     `gorm:"column:id;primaryKey"`
	CommissionPercentage float64   `gorm:"column:commission_percentage"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (settingsModel) TableName() string { return "platform_settings" }

// Get returns the live settings; a missing row falls back to the default
// commission, same as the original deployment before first admin write.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.PlatformSettings, error) {
	var m settingsModel
	tx := r.db.WithContext(ctx).First(&m, settingsRowID)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return &domain.PlatformSettings{
				ID:                   settingsRowID,
				CommissionPercentage: domain.DefaultCommissionPercentage,
			}, nil
		}
		return nil, tx.Error
	}

	return &domain.PlatformSettings{
		ID:                   m.ID,
		CommissionPercentage: m.CommissionPercentage,
		UpdatedAt:            m.UpdatedAt,
	}, nil
}

func (r *SettingsRepository) SetCommission(ctx context.Context, pct float64) error {
	m := settingsModel{
		ID:                   settingsRowID,
		CommissionPercentage: pct,
		UpdatedAt:            time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"commission_percentage", "updated_at"}),
		}).
		Create(&m).Error
}
