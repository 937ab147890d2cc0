package booking

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
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/customer", h.ListForCustomer)
	rg.GET("/bookings/provider", h.ListForProvider)
	rg.PUT("/bookings/:id/accept", h.Accept)
	rg.PUT("/bookings/:id/reject", h.Reject)
	rg.PUT("/bookings/:id/complete", h.Complete)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), c.GetString("role"), req)
	if err != nil {
		h.writeError(c, err, "Failed to create booking")
		return
	}

	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) ListForCustomer(c *gin.Context) {
	list, err := h.service.ListForCustomer(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) ListForProvider(c *gin.Context) {
	if c.GetString("role") != string(domain.RoleProvider) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Provider access required")
		return
	}

	list, err := h.service.ListForProvider(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		if err == ErrNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider profile not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, list)
}

func (h *Handler) Accept(c *gin.Context) {
	h.transition(c, h.service.Accept)
}

func (h *Handler) Reject(c *gin.Context) {
	h.transition(c, h.service.Reject)
}

func (h *Handler) Complete(c *gin.Context) {
	h.transition(c, h.service.Complete)
}

func (h *Handler) transition(c *gin.Context, fn func(ctx context.Context, providerUserID, bookingID int64) (*domain.Booking, error)) {
	if c.GetString("role") != string(domain.RoleProvider) {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Provider access required")
		return
	}

	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || bookingID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking ID")
		return
	}

	b, err := fn(c.Request.Context(), c.GetInt64("user_id"), bookingID)
	if err != nil {
		h.writeError(c, err, "Failed to update booking")
		return
	}

	response.Success(c, http.StatusOK, b)
}

func (h *Handler) writeError(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Missing or invalid booking fields")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or provider not found")
	case ErrForbidden:
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this booking")
	case ErrProviderNotApproved:
		response.Error(c, http.StatusForbidden, "NOT_APPROVED", "Provider is not approved for bookings")
	case ErrInvalidTransition:
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Booking status does not allow this transition")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}
