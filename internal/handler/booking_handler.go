package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/dto"
	"github.com/strakotou/travel-backend/internal/service"
)

// Browser clients call the notification endpoint cross-origin, so every
// response carries these headers and OPTIONS is answered before any logic.
const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
)

type BookingHandler struct {
	svc service.NotificationService
}

func NewBookingHandler(svc service.NotificationService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	e.OPTIONS("/api/v1/bookings/notify", h.Preflight)
	e.POST("/api/v1/bookings/notify", h.Notify)
}

func (h *BookingHandler) Preflight(c echo.Context) error {
	setCORSHeaders(c)
	return c.NoContent(http.StatusOK)
}

// Notify owns its response shape end to end: success and failure both use the
// BookingResult envelope, never the central error handler.
func (h *BookingHandler) Notify(c echo.Context) error {
	setCORSHeaders(c)

	var req dto.BookingRequest
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		log.Printf("[Notify] rejected unparsable booking request: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.BookingResult{
			Success: false,
			Error:   err.Error(),
		})
	}

	if err := h.svc.SendBookingRequest(c.Request().Context(), req); err != nil {
		log.Printf("[Notify] booking request failed: %v", err)
		return c.JSON(http.StatusInternalServerError, dto.BookingResult{
			Success: false,
			Error:   err.Error(),
		})
	}

	return c.JSON(http.StatusOK, dto.BookingResult{
		Success: true,
		Message: "Booking request sent successfully",
	})
}

func setCORSHeaders(c echo.Context) {
	h := c.Response().Header()
	h.Set(echo.HeaderAccessControlAllowOrigin, corsAllowOrigin)
	h.Set(echo.HeaderAccessControlAllowHeaders, corsAllowHeaders)
}
