package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// CategoryHandler handles the product category routes.
type CategoryHandler struct {
	service ports.CategoryService
}

func NewCategoryHandler(service ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

type categoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type categoryResponse struct {
	Message  string           `json:"message"`
	Category *domain.Category `json:"category"`
}

type categoriesResponse struct {
	Categories []domain.Category `json:"categories"`
}

// Create adds a category. Admin only.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      categoryRequest  true  "Category name"
// @Success      201   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.service.Create(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, categoryResponse{Message: "Category created", Category: category})
}

// List returns all categories. Public.
//
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {object}  categoriesResponse
// @Router       /api/v1/categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoriesResponse{Categories: categories})
}

// Get returns one category. Public.
//
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id  path  int  true  "Category id"
// @Success      200  {object}  map[string]domain.Category
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/categories/{id} [get]
func (h *CategoryHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	category, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Category{"category": category})
}

// Update renames a category. Admin only.
//
// @Summary      Update a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int              true  "Category id"
// @Param        body  body      categoryRequest  true  "New name"
// @Success      200   {object}  categoryResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/categories/{id} [put]
func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	category, err := h.service.Update(c.Request().Context(), id, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryResponse{Message: "Category updated", Category: category})
}

// Delete removes a category. Admin only.
//
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Category id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/categories/{id} [delete]
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Category deleted"})
}
