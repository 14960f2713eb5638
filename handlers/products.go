package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/provision-store/provision-backend-go/models"
)

// ListProducts serves the fixed grocery catalog.
func ListProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, models.Catalog())
}
