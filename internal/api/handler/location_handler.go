package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// LocationHandler handles the restaurant site routes. Read only.
type LocationHandler struct {
	service ports.LocationService
}

func NewLocationHandler(service ports.LocationService) *LocationHandler {
	return &LocationHandler{service: service}
}

type locationsResponse struct {
	Locations []domain.Location `json:"locations"`
}

// List returns all restaurant sites. Public.
//
// @Summary      List restaurant locations
// @Tags         locations
// @Produce      json
// @Success      200  {object}  locationsResponse
// @Router       /api/v1/locations [get]
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, locationsResponse{Locations: locations})
}

// Get returns one restaurant site. Public.
//
// @Summary      Get a restaurant location
// @Tags         locations
// @Produce      json
// @Param        id  path  int  true  "Location id"
// @Success      200  {object}  map[string]domain.Location
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/locations/{id} [get]
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	location, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Location{"location": location})
}
