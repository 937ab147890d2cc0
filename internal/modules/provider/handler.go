package provider

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aynul321/Vokzo-mvp/internal/pkg/response"
	"github.com/aynul321/Vokzo-mvp/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers", h.List)
	rg.GET("/providers/:id", h.Get)
}

// RegisterProviderRoutes are gated by the provider role middleware.
func (h *Handler) RegisterProviderRoutes(rg *gin.RouterGroup) {
	rg.PUT("/providers/toggle-online", h.ToggleOnline)
	rg.GET("/providers/dashboard/stats", h.DashboardStats)
}

func (h *Handler) List(c *gin.Context) {
	var f repository.ProviderFilter
	if v := c.Query("sub_service_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sub_service_id")
			return
		}
		f.SubServiceID = id
	}
	if v := c.Query("category_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category_id")
			return
		}
		f.CategoryID = id
	}
	f.City = c.Query("city")

	providers, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load providers")
		return
	}
	response.Success(c, http.StatusOK, providers)
}

func (h *Handler) Get(c *gin.Context) {
	providerID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || providerID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid provider ID")
		return
	}

	p, err := h.service.Get(c.Request.Context(), providerID)
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load provider")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ToggleOnline(c *gin.Context) {
	online, err := h.service.ToggleOnline(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		switch err {
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
		case ErrNotApproved:
			response.Error(c, http.StatusForbidden, "NOT_APPROVED", "Profile must be approved before going online")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to toggle availability")
		}
		return
	}
	response.Success(c, http.StatusOK, gin.H{"is_online": online})
}

func (h *Handler) DashboardStats(c *gin.Context) {
	stats, err := h.service.DashboardStats(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load stats")
		return
	}
	response.Success(c, http.StatusOK, stats)
}
