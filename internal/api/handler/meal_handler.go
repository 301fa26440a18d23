package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// MealHandler handles the meal bundle routes.
type MealHandler struct {
	service ports.MealService
	images  ports.ImageStore
}

func NewMealHandler(service ports.MealService, images ports.ImageStore) *MealHandler {
	return &MealHandler{service: service, images: images}
}

type createMealRequest struct {
	Name  string  `json:"name"  form:"name"  validate:"required,min=2,max=50"`
	Price float64 `json:"price" form:"price" validate:"required,gt=0"`
}

type updateMealRequest struct {
	Name  *string  `json:"name"  form:"name"  validate:"omitempty,min=2,max=50"`
	Price *float64 `json:"price" form:"price" validate:"omitempty,gt=0"`
}

type mealResponse struct {
	Message string       `json:"message"`
	Meal    *domain.Meal `json:"meal"`
}

type mealsResponse struct {
	Meals []domain.Meal `json:"meals"`
}

// Create adds a meal, optionally with a card image. Admin only.
//
// @Summary      Create a meal
// @Tags         meals
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name   formData  string  true   "Meal name"
// @Param        price  formData  number  true   "Price"
// @Param        image  formData  file    false  "Card image"
// @Success      201  {object}  mealResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/meals [post]
func (h *MealHandler) Create(c echo.Context) error {
	var req createMealRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	filename, err := saveImage(c, h.images)
	if err != nil {
		return err
	}

	meal, err := h.service.Create(c.Request().Context(), ports.CreateMealInput{
		Name:     req.Name,
		Price:    req.Price,
		Filename: filename,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, mealResponse{Message: "Meal created", Meal: meal})
}

// List returns all meals. Public.
//
// @Summary      List meals
// @Tags         meals
// @Produce      json
// @Success      200  {object}  mealsResponse
// @Router       /api/v1/meals [get]
func (h *MealHandler) List(c echo.Context) error {
	meals, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, mealsResponse{Meals: meals})
}

// Get returns one meal. Public.
//
// @Summary      Get a meal
// @Tags         meals
// @Produce      json
// @Param        id  path  int  true  "Meal id"
// @Success      200  {object}  map[string]domain.Meal
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/meals/{id} [get]
func (h *MealHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	meal, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Meal{"meal": meal})
}

// ListProducts returns the products bundled in a meal. Public.
//
// @Summary      List the products of a meal
// @Tags         meals
// @Produce      json
// @Param        id  path  int  true  "Meal id"
// @Success      200  {object}  productsResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/meals/{id}/products [get]
func (h *MealHandler) ListProducts(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.service.ListProducts(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Update changes meal fields and optionally replaces the image. Admin only.
//
// @Summary      Update a meal
// @Tags         meals
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int   true   "Meal id"
// @Param        image  formData  file  false  "Replacement card image"
// @Success      200  {object}  mealResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/meals/{id} [put]
func (h *MealHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateMealRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := ports.UpdateMealInput{
		Name:  req.Name,
		Price: req.Price,
	}

	filename, err := saveImage(c, h.images)
	if err != nil {
		return err
	}
	if filename != "" {
		input.Filename = &filename
	}

	meal, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mealResponse{Message: "Meal updated", Meal: meal})
}

// Delete removes a meal and its stored image. Admin only.
//
// @Summary      Delete a meal
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Meal id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/meals/{id} [delete]
func (h *MealHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	meal, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	_ = h.images.Remove(ctx, meal.Filename)

	return c.JSON(http.StatusOK, map[string]string{"message": "Meal deleted"})
}

// AddProduct bundles a product into a meal. Admin only.
//
// @Summary      Add a product to a meal
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  int  true  "Meal id"
// @Param        productid  path  int  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/meals/{id}/products/{productid} [post]
func (h *MealHandler) AddProduct(c echo.Context) error {
	mealID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productid")
	if err != nil {
		return err
	}

	if err := h.service.AddProduct(c.Request().Context(), mealID, productID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product added"})
}

// RemoveProduct removes a product from a meal. Admin only.
//
// @Summary      Remove a product from a meal
// @Tags         meals
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  int  true  "Meal id"
// @Param        productid  path  int  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/meals/{id}/products/{productid} [delete]
func (h *MealHandler) RemoveProduct(c echo.Context) error {
	mealID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productid")
	if err != nil {
		return err
	}

	if err := h.service.RemoveProduct(c.Request().Context(), mealID, productID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Product removed"})
}
