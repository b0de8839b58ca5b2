package handler

import (
	"net/http"

	"rolodex/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Hello is the unauthenticated landing handler.
func Hello(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"message": "Welcome to the rolodex API"}, "Hello")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
