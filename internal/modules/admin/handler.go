package admin

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aynul321/Vokzo-mvp/internal/domain"
	"github.com/aynul321/Vokzo-mvp/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers", h.ListProviders)
	rg.PUT("/providers/:id/approve", h.ApproveProvider)
	rg.PUT("/providers/:id/reject", h.RejectProvider)
	rg.GET("/bookings", h.ListBookings)
	rg.GET("/analytics", h.GetAnalytics)
	rg.PUT("/settings/commission", h.UpdateCommission)
}

func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.service.ListProviders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load providers")
		return
	}
	response.Success(c, http.StatusOK, providers)
}

func (h *Handler) ApproveProvider(c *gin.Context) {
	h.moderate(c, h.service.ApproveProvider)
}

func (h *Handler) RejectProvider(c *gin.Context) {
	h.moderate(c, h.service.RejectProvider)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.ListBookings(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) GetAnalytics(c *gin.Context) {
	analytics, err := h.service.GetAnalytics(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute analytics")
		return
	}
	response.Success(c, http.StatusOK, analytics)
}

func (h *Handler) UpdateCommission(c *gin.Context) {
	var req UpdateCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	settings, err := h.service.UpdateCommission(c.Request.Context(), req.CommissionPercentage)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Commission must be between 0 and 100")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update commission")
		return
	}
	response.Success(c, http.StatusOK, settings)
}

type moderateFn func(ctx context.Context, providerID int64) (*domain.ServiceProvider, error)

func (h *Handler) moderate(c *gin.Context, fn moderateFn) {
	providerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || providerID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid provider ID")
		return
	}

	p, err := fn(c.Request.Context(), providerID)
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
		case ErrProviderRejected:
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Rejected providers cannot be approved")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update provider")
		}
		return
	}
	response.Success(c, http.StatusOK, p)
}
