package catalog

import "github.com/aynul321/Vokzo-mvp/internal/domain"

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Icon        string `json:"icon" validate:"max=50"`
	Description string `json:"description" validate:"max=500"`
}

type CreateSubServiceRequest struct {
	CategoryID  int64  `json:"category_id" validate:"required,gt=0"`
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Icon        string `json:"icon" validate:"max=50"`
	Description string `json:"description" validate:"max=500"`
}

type SearchResponse struct {
	Categories  []domain.ServiceCategory `json:"categories"`
	SubServices []domain.SubService      `json:"sub_services"`
}

type CitiesResponse struct {
	Cities []domain.City `json:"cities"`
	Towns  []domain.City `json:"towns"`
}
