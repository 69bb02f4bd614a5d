package handlers

import (
	"net/http"

	"serviceboard/middleware"
	"serviceboard/models"
	"serviceboard/services"
	"serviceboard/services/booking"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
	Service       booking.BookingService
	ExposeDetails bool
}

func NewBookingHandler(svc booking.BookingService, exposeDetails bool) *BookingHandler {
	return &BookingHandler{Service: svc, ExposeDetails: exposeDetails}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.Service.CreateBooking(c.Request.Context(), &b)
	if err != nil {
		respondError(c, err, "CreateBooking: failed to insert booking", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListUserBookingsHandler handles GET /bookings/:email.
func (h *BookingHandler) ListUserBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListUserBookings(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "ListUserBookings: failed to fetch bookings", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// ListProviderBookingsHandler handles GET /bookings/provider/:email.
func (h *BookingHandler) ListProviderBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListProviderBookings(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, err, "ListProviderBookings: failed to fetch bookings", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateStatusHandler handles PATCH /bookings/status/:id.
func (h *BookingHandler) UpdateStatusHandler(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondError(c, services.ErrUnauthorized, "UpdateStatus: missing claims", h.ExposeDetails)
		return
	}

	var req struct {
		Status string `json:"serviceStatus"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	result, err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status, claims.Email)
	if err != nil {
		respondError(c, err, "UpdateStatus: failed to update booking status", h.ExposeDetails)
		return
	}
	c.JSON(http.StatusOK, result)
}
