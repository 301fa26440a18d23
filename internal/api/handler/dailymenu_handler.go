package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// DailyMenuHandler handles the meal-of-the-day routes.
type DailyMenuHandler struct {
	service ports.DailyMenuService
}

func NewDailyMenuHandler(service ports.DailyMenuService) *DailyMenuHandler {
	return &DailyMenuHandler{service: service}
}

type assignDailyMenuRequest struct {
	MealID int64 `json:"meal_id" validate:"required"`
}

type dailyMenuResponse struct {
	Message string                 `json:"message"`
	Entry   *domain.DailyMenuEntry `json:"entry"`
}

type dailyMenuListResponse struct {
	Menu []domain.DailyMenuEntry `json:"menu"`
}

// List returns the whole weekday schedule. Public.
//
// @Summary      List the daily menu schedule
// @Tags         dailymenu
// @Produce      json
// @Success      200  {object}  dailyMenuListResponse
// @Router       /api/v1/dailymenu [get]
func (h *DailyMenuHandler) List(c echo.Context) error {
	menu, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dailyMenuListResponse{Menu: menu})
}

// GetByDay returns the meal assigned to one weekday. Public.
//
// @Summary      Get the meal of a weekday
// @Tags         dailymenu
// @Produce      json
// @Param        day  path  string  true  "Weekday (monday..sunday)"
// @Success      200  {object}  map[string]domain.DailyMenuEntry
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/dailymenu/{day} [get]
func (h *DailyMenuHandler) GetByDay(c echo.Context) error {
	day := strings.ToLower(c.Param("day"))

	entry, err := h.service.GetByDay(c.Request().Context(), day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.DailyMenuEntry{"entry": entry})
}

// Assign sets the meal for one weekday, replacing any previous assignment.
// Admin only.
//
// @Summary      Assign the meal of a weekday
// @Tags         dailymenu
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        day   path      string                  true  "Weekday (monday..sunday)"
// @Param        body  body      assignDailyMenuRequest  true  "Meal id"
// @Success      200   {object}  dailyMenuResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/dailymenu/{day} [put]
func (h *DailyMenuHandler) Assign(c echo.Context) error {
	day := strings.ToLower(c.Param("day"))

	var req assignDailyMenuRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	entry, err := h.service.Assign(c.Request().Context(), day, req.MealID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dailyMenuResponse{Message: "Daily menu updated", Entry: entry})
}
