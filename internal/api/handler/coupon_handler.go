package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// CouponHandler handles the discount coupon routes. All of them are admin
// gated; coupons reach customers out of band.
type CouponHandler struct {
	service ports.CouponService
}

func NewCouponHandler(service ports.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

type createCouponRequest struct {
	Code               string  `json:"coupon"              validate:"required,min=2,max=50"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"required,gt=0,lte=100"`
	StartDate          string  `json:"start_date"          validate:"required,datetime=2006-01-02"`
	EndDate            string  `json:"end_date"            validate:"required,datetime=2006-01-02"`
}

type updateCouponRequest struct {
	Code               *string  `json:"coupon"              validate:"omitempty,min=2,max=50"`
	DiscountPercentage *float64 `json:"discount_percentage" validate:"omitempty,gt=0,lte=100"`
	StartDate          *string  `json:"start_date"          validate:"omitempty,datetime=2006-01-02"`
	EndDate            *string  `json:"end_date"            validate:"omitempty,datetime=2006-01-02"`
}

type couponResponse struct {
	Message string         `json:"message"`
	Coupon  *domain.Coupon `json:"coupon"`
}

type couponsResponse struct {
	Coupons []domain.Coupon `json:"coupons"`
}

// Create adds a coupon.
//
// @Summary      Create a coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCouponRequest  true  "Coupon details"
// @Success      201   {object}  couponResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/v1/coupons [post]
func (h *CouponHandler) Create(c echo.Context) error {
	var req createCouponRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	coupon, err := h.service.Create(c.Request().Context(), domain.Coupon{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, couponResponse{Message: "Coupon created", Coupon: coupon})
}

// List returns all coupons.
//
// @Summary      List coupons
// @Tags         coupons
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  couponsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/coupons [get]
func (h *CouponHandler) List(c echo.Context) error {
	coupons, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, couponsResponse{Coupons: coupons})
}

// Get returns one coupon.
//
// @Summary      Get a coupon
// @Tags         coupons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Coupon id"
// @Success      200  {object}  map[string]domain.Coupon
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/coupons/{id} [get]
func (h *CouponHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	coupon, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Coupon{"coupon": coupon})
}

// Update changes coupon fields.
//
// @Summary      Update a coupon
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Coupon id"
// @Param        body  body      updateCouponRequest  true  "Fields to change"
// @Success      200   {object}  couponResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/coupons/{id} [put]
func (h *CouponHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateCouponRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	coupon, err := h.service.Update(c.Request().Context(), id, ports.UpdateCouponInput{
		Code:               req.Code,
		DiscountPercentage: req.DiscountPercentage,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, couponResponse{Message: "Coupon updated", Coupon: coupon})
}

// Delete removes a coupon.
//
// @Summary      Delete a coupon
// @Tags         coupons
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Coupon id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/coupons/{id} [delete]
func (h *CouponHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Coupon deleted"})
}
