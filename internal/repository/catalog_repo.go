package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

type categoryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Icon        string    `gorm:"column:icon"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (categoryModel) TableName() string { return "service_categories" }

type subServiceModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	CategoryID  int64     `gorm:"column:category_id;index"`
	Name        string    `gorm:"column:name"`
	Icon        string    `gorm:"column:icon"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (subServiceModel) TableName() string { return "sub_services" }

func toDomainCategory(m categoryModel) domain.ServiceCategory {
	return domain.ServiceCategory{
		ID:          m.ID,
		Name:        m.Name,
		Icon:        m.Icon,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainSubService(m subServiceModel) domain.SubService {
	return domain.SubService{
		ID:          m.ID,
		CategoryID:  m.CategoryID,
		Name:        m.Name,
		Icon:        m.Icon,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, c *domain.ServiceCategory) error {
	m := categoryModel{Name: c.Name, Icon: c.Icon, Description: c.Description}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*c = toDomainCategory(m)
	return nil
}

func (r *CatalogRepository) CreateSubService(ctx context.Context, s *domain.SubService) error {
	m := subServiceModel{CategoryID: s.CategoryID, Name: s.Name, Icon: s.Icon, Description: s.Description}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*s = toDomainSubService(m)
	return nil
}

func (r *CatalogRepository) GetCategoryByID(ctx context.Context, id int64) (*domain.ServiceCategory, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	c := toDomainCategory(m)
	return &c, nil
}

func (r *CatalogRepository) GetSubServiceByID(ctx context.Context, id int64) (*domain.SubService, error) {
	var m subServiceModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	s := toDomainSubService(m)
	return &s, nil
}

func (r *CatalogRepository) ListCategories(ctx context.Context) ([]domain.ServiceCategory, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.ServiceCategory, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainCategory(m))
	}
	return out, nil
}

func (r *CatalogRepository) ListSubServices(ctx context.Context, categoryID int64) ([]domain.SubService, error) {
	q := r.db.WithContext(ctx).Order("id ASC")
	if categoryID > 0 {
		q = q.Where("category_id = ?", categoryID)
	}

	var rows []subServiceModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.SubService, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainSubService(m))
	}
	return out, nil
}

// Search matches categories and sub-services by name or description,
// case-insensitive.
func (r *CatalogRepository) Search(ctx context.Context, q string) ([]domain.ServiceCategory, []domain.SubService, error) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(q)) + "%"

	var catRows []categoryModel
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&catRows).Error
	if err != nil {
		return nil, nil, err
	}

	var subRows []subServiceModel
	err = r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Find(&subRows).Error
	if err != nil {
		return nil, nil, err
	}

	cats := make([]domain.ServiceCategory, 0, len(catRows))
	for _, m := range catRows {
		cats = append(cats, toDomainCategory(m))
	}
	subs := make([]domain.SubService, 0, len(subRows))
	for _, m := range subRows {
		subs = append(subs, toDomainSubService(m))
	}
	return cats, subs, nil
}

// DeleteCategory removes the category and cascades to its sub-services in
// one transaction. Historical bookings keep their snapshotted names.
func (r *CatalogRepository) DeleteCategory(ctx context.Context, categoryID int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&categoryModel{}, categoryID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("category_id = ?", categoryID).Delete(&subServiceModel{}).Error
	})
}

func (r *CatalogRepository) DeleteSubService(ctx context.Context, subServiceID int64) error {
	res := r.db.WithContext(ctx).Delete(&subServiceModel{}, subServiceID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
