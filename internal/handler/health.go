package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func SetupSystemRoutes(e *echo.Echo) {
	e.GET("/", Root())
	e.GET("/health", Health())
}

func Root() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "ProvaLab API",
			"version": "1.0.0",
			"docs":    "/swagger/index.html",
		})
	}
}

// Health godoc
// @Summary Liveness probe
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}
