package server

import (
	"net/http"

	"orderservice/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, menuH *handler.MenuHandler, orderH *handler.OrderHandler) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api")
	menuH.RegisterRoutes(api)
	orderH.RegisterRoutes(api)
}
