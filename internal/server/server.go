package server

import (
	"orderservice/internal/handler"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// New はミドルウェアを組んだechoインスタンスを返す。
func New() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	return e
}

func Start(e *echo.Echo, addr string, menuH *handler.MenuHandler, orderH *handler.OrderHandler) error {
	RegisterRoutes(e, menuH, orderH)
	return e.Start(addr)
}
