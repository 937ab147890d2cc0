package auth

type SignupRequest struct {
	FullName        string `json:"full_name" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
	Role            string `json:"role" binding:"required"`
}

type ProviderSignupRequest struct {
	FullName        string  `json:"full_name" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Password        string  `json:"password" binding:"required,min=6"`
	ConfirmPassword string  `json:"confirm_password" binding:"required"`
	CategoryID      int64   `json:"category_id" binding:"required"`
	SubServiceID    int64   `json:"sub_service_id" binding:"required"`
	Experience      int     `json:"experience"`
	BasePrice       float64 `json:"base_price" binding:"required"`
	City            string  `json:"city" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateCityRequest struct {
	City string `json:"city" binding:"required"`
}
