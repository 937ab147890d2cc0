package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aynul321/Vokzo-mvp/internal/pkg/response"
	"github.com/aynul321/Vokzo-mvp/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the read-only catalog.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/services/categories", h.ListCategories)
	rg.GET("/services/categories/:id/sub-services", h.ListSubServicesByCategory)
	rg.GET("/services/sub-services", h.ListSubServices)
	rg.GET("/services/search", h.Search)
	rg.GET("/cities", h.ListCities)
}

// RegisterAdminRoutes exposes taxonomy management; the group is expected to
// carry the admin role middleware.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/categories", h.CreateCategory)
	rg.POST("/sub-services", h.CreateSubService)
	rg.DELETE("/categories/:id", h.DeleteCategory)
	rg.DELETE("/sub-services/:id", h.DeleteSubService)
}

func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.service.ListCategories(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load categories")
		return
	}
	response.Success(c, http.StatusOK, cats)
}

func (h *Handler) ListSubServicesByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || categoryID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category ID")
		return
	}

	subs, err := h.service.ListSubServices(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load sub-services")
		return
	}
	response.Success(c, http.StatusOK, subs)
}

func (h *Handler) ListSubServices(c *gin.Context) {
	subs, err := h.service.ListSubServices(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load sub-services")
		return
	}
	response.Success(c, http.StatusOK, subs)
}

func (h *Handler) Search(c *gin.Context) {
	res, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing search query")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Search failed")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) ListCities(c *gin.Context) {
	res, err := h.service.ListCities(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load cities")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category data", errs)
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), req)
	if err != nil {
		if err == ErrValidation {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category data")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create category")
		return
	}
	response.Success(c, http.StatusCreated, cat)
}

func (h *Handler) CreateSubService(c *gin.Context) {
	var req CreateSubServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sub-service data", errs)
		return
	}

	sub, err := h.service.CreateSubService(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrValidation:
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sub-service data")
		case ErrNotFound:
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create sub-service")
		}
		return
	}
	response.Success(c, http.StatusCreated, sub)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	categoryID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || categoryID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid category ID")
		return
	}

	if err := h.service.DeleteCategory(c.Request.Context(), categoryID); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete category")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": categoryID})
}

func (h *Handler) DeleteSubService(c *gin.Context) {
	subServiceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || subServiceID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid sub-service ID")
		return
	}

	if err := h.service.DeleteSubService(c.Request.Context(), subServiceID); err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Sub-service not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete sub-service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": subServiceID})
}
