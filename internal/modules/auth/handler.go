package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aynul321/Vokzo-mvp/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/signup", h.Signup)
	rg.POST("/auth/provider-signup", h.ProviderSignup)
	rg.POST("/auth/login", h.Login)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.GET("/auth/me", h.Me)
	rg.PUT("/auth/update-city", h.UpdateCity)
}

func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token": res.Token,
		"user":  res.User,
	})
}

func (h *Handler) ProviderSignup(c *gin.Context) {
	var req ProviderSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.ProviderSignup(c.Request.Context(), req)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"token":       res.Token,
		"user":        res.User,
		"provider_id": res.ProviderID,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Login failed")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token,
		"user":  res.User,
	})
}

func (h *Handler) Me(c *gin.Context) {
	user, profile, err := h.service.Me(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load profile")
		return
	}

	data := gin.H{"user": user}
	if profile != nil {
		data["provider"] = profile
	}
	response.Success(c, http.StatusOK, data)
}

func (h *Handler) UpdateCity(c *gin.Context) {
	var req UpdateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	if err := h.service.UpdateCity(c.Request.Context(), c.GetInt64("user_id"), req.City); err != nil {
		if err == ErrUnknownCity {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown city")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update city")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"city": req.City})
}

func (h *Handler) writeAuthError(c *gin.Context, err error) {
	switch err {
	case ErrPasswordMismatch:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Passwords do not match")
	case ErrEmailTaken:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Email already registered")
	case ErrUnknownCity:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown city")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid signup data")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Signup failed")
	}
}
