// Package web embeds the single-page dashboard served at the root path.
package web

import (
	"embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

//go:embed index.html
var content embed.FS

// RegisterRoutes serves the dashboard page.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/", func(c echo.Context) error {
		b, err := content.ReadFile("index.html")
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
		return c.HTMLBlob(http.StatusOK, b)
	})
}
