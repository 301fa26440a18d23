package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// ProductHandler handles the product catalog routes.
type ProductHandler struct {
	service ports.ProductService
	images  ports.ImageStore
}

func NewProductHandler(service ports.ProductService, images ports.ImageStore) *ProductHandler {
	return &ProductHandler{service: service, images: images}
}

type createProductRequest struct {
	Name        string  `json:"name"        form:"name"        validate:"required,min=2,max=50"`
	Ingredients string  `json:"ingredients" form:"ingredients" validate:"required,min=2,max=700"`
	Price       float64 `json:"price"       form:"price"       validate:"required,gt=0"`
	CategoryID  int64   `json:"category_id" form:"category_id" validate:"required"`
	Description string  `json:"description" form:"description" validate:"omitempty,max=700"`
}

type updateProductRequest struct {
	Name        *string  `json:"name"        form:"name"        validate:"omitempty,min=2,max=50"`
	Ingredients *string  `json:"ingredients" form:"ingredients" validate:"omitempty,min=2,max=700"`
	Price       *float64 `json:"price"       form:"price"       validate:"omitempty,gt=0"`
	CategoryID  *int64   `json:"category_id" form:"category_id"`
	Description *string  `json:"description" form:"description" validate:"omitempty,max=700"`
}

type productResponse struct {
	Message string          `json:"message"`
	Product *domain.Product `json:"product"`
}

type productsResponse struct {
	Products []domain.Product `json:"products"`
}

// Create adds a product, optionally with an image sent as the multipart
// field "image". Admin only.
//
// @Summary      Create a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        name         formData  string  true   "Product name"
// @Param        ingredients  formData  string  true   "Ingredients"
// @Param        price        formData  number  true   "Price"
// @Param        category_id  formData  int     true   "Category id"
// @Param        description  formData  string  false  "Description"
// @Param        image        formData  file    false  "Card image"
// @Success      201  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	filename, err := saveImage(c, h.images)
	if err != nil {
		return err
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
		Filename:    filename,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, productResponse{Message: "Product created", Product: product})
}

// List returns the full catalog. Public.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {object}  productsResponse
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Get returns one product with its tags. Public.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Product id"
// @Success      200  {object}  map[string]domain.Product
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Product{"product": product})
}

// ListByCategory returns the products in one category. Public.
//
// @Summary      List products by category
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Category id"
// @Success      200  {object}  productsResponse
// @Router       /api/v1/products/category/{id} [get]
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.service.ListByCategory(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// ListByTag returns the products carrying one tag. Public.
//
// @Summary      List products by tag
// @Tags         products
// @Produce      json
// @Param        id  path  int  true  "Tag id"
// @Success      200  {object}  productsResponse
// @Router       /api/v1/products/tag/{id} [get]
func (h *ProductHandler) ListByTag(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	products, err := h.service.ListByTag(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, productsResponse{Products: products})
}

// Update changes product fields and optionally replaces the image. Admin
// only.
//
// @Summary      Update a product
// @Tags         products
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      int   true   "Product id"
// @Param        image  formData  file  false  "Replacement card image"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := ports.UpdateProductInput{
		Name:        req.Name,
		Ingredients: req.Ingredients,
		Price:       req.Price,
		CategoryID:  req.CategoryID,
		Description: req.Description,
	}

	filename, err := saveImage(c, h.images)
	if err != nil {
		return err
	}
	if filename != "" {
		input.Filename = &filename
	}

	product, err := h.service.Update(c.Request().Context(), id, input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, productResponse{Message: "Product updated", Product: product})
}

// Delete removes a product and its stored image. Admin only.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	product, err := h.service.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := h.service.Delete(ctx, id); err != nil {
		return err
	}
	_ = h.images.Remove(ctx, product.Filename)

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}

// AddTag attaches a tag to a product. Admin only.
//
// @Summary      Tag a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int  true  "Product id"
// @Param        tagid  path  int  true  "Tag id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id}/tags/{tagid} [post]
func (h *ProductHandler) AddTag(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "tagid")
	if err != nil {
		return err
	}

	if err := h.service.AddTag(c.Request().Context(), productID, tagID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tag added"})
}

// RemoveTag detaches a tag from a product. Admin only.
//
// @Summary      Untag a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id     path  int  true  "Product id"
// @Param        tagid  path  int  true  "Tag id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/products/{id}/tags/{tagid} [delete]
func (h *ProductHandler) RemoveTag(c echo.Context) error {
	productID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	tagID, err := pathID(c, "tagid")
	if err != nil {
		return err
	}

	if err := h.service.RemoveTag(c.Request().Context(), productID, tagID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Tag removed"})
}
