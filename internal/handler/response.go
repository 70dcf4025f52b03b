package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body returned for 4xx and 5xx outcomes.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// Error sends an error response using the shared error shape.
func Error(c echo.Context, status int, message string) error {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, ErrorResponse{Error: message})
}
