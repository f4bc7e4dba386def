package server

import (
	"net/http"

	"minishop/internal/handler"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, productH *handler.ProductHandler, cartH *handler.CartHandler) {
	e.GET("/healthz", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	productH.RegisterRoutes(e)
	cartH.RegisterRoutes(e)
}
