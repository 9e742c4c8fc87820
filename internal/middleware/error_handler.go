package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/strakotou/travel-backend/internal/dto"
)

// ErrorHandler converts echo errors into the catalog API's JSON error shape.
// The booking notification endpoint writes its own responses and never
// reaches this handler.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := err.Error()

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	_ = c.JSON(code, dto.ErrorResponse{Message: msg})
}
