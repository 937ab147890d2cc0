package domain

import "time"

type ServiceCategory struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name" validate:"required"`
	Icon          string    `json:"icon"`
	Description   string    `json:"description"`
	ProviderCount int       `json:"provider_count" gorm:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

type SubService struct {
	ID          int64     `json:"id"`
	CategoryID  int64     `json:"category_id" gorm:"index" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Icon        string    `json:"icon"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
