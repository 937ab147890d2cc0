package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type CityRepository struct {
	db *gorm.DB
}

func NewCityRepository(db *gorm.DB) *CityRepository {
	return &CityRepository{db: db}
}

type cityModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Name  string `gorm:"column:name;uniqueIndex"`
	State string `gorm:"column:state"`
	Kind  string `gorm:"column:kind"`
}

func (cityModel) TableName() string { return "cities" }

func (r *CityRepository) Create(ctx context.Context, c *domain.City) error {
	m := cityModel{Name: c.Name, State: c.State, Kind: string(c.Kind)}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	c.ID = m.ID
	return nil
}

func (r *CityRepository) List(ctx context.Context, kind domain.CityKind) ([]domain.City, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if kind != "" {
		q = q.Where("kind = ?", string(kind))
	}

	var rows []cityModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.City, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.City{
			ID:    m.ID,
			Name:  m.Name,
			State: m.State,
			Kind:  domain.CityKind(m.Kind),
		})
	}
	return out, nil
}

func (r *CityRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).
		Model(&cityModel{}).
		Where("name = ?", name).
		Count(&cnt).Error
	return cnt > 0, err
}
