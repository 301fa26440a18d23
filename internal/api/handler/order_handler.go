package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fastbite/ordering-api/internal/core/domain"
	"github.com/fastbite/ordering-api/internal/core/ports"
)

// OrderHandler handles the order routes.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

type orderItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,gte=1"`
}

type createOrderRequest struct {
	OrderType       string             `json:"order_type"       validate:"required,oneof=delivery pickup"`
	DeliveryAddress string             `json:"delivery_address" validate:"required_if=OrderType delivery,omitempty,min=5,max=100,address"`
	PizzeriaAddress string             `json:"pizzeria_address" validate:"omitempty,min=5,max=100,address"`
	Price           float64            `json:"price"            validate:"required,gt=0"`
	Items           []orderItemRequest `json:"items"            validate:"required,min=1,dive"`
}

type updateOrderRequest struct {
	Status          *string  `json:"status"           validate:"omitempty,oneof=received preparing ready delivered cancelled"`
	OrderType       *string  `json:"order_type"       validate:"omitempty,oneof=delivery pickup"`
	DeliveryAddress *string  `json:"delivery_address" validate:"omitempty,min=5,max=100,address"`
	PizzeriaAddress *string  `json:"pizzeria_address" validate:"omitempty,min=5,max=100,address"`
	Price           *float64 `json:"price"            validate:"omitempty,gt=0"`
}

type orderResponse struct {
	Message string        `json:"message"`
	Order   *domain.Order `json:"order"`
}

type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
}

type orderItemsResponse struct {
	Items []domain.OrderItem `json:"items"`
}

// Create places an order for the authenticated account. The order always
// belongs to the caller, regardless of the payload.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order details"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/v1/orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, domain.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	order, err := h.service.Create(c.Request().Context(), ports.CreateOrderInput{
		UserID:          principal.UserID,
		OrderType:       req.OrderType,
		DeliveryAddress: req.DeliveryAddress,
		PizzeriaAddress: req.PizzeriaAddress,
		Price:           req.Price,
		Items:           items,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, orderResponse{Message: "Order placed", Order: order})
}

// List returns all orders. Admin only.
//
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ordersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: orders})
}

// Get returns one order. The service rejects callers who neither own the
// order nor hold the admin role.
//
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order id"
// @Success      200  {object}  map[string]domain.Order
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.service.Get(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]*domain.Order{"order": order})
}

// ListByUser returns the orders of one account. Owner or admin.
//
// @Summary      List the orders of an account
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "User id"
// @Success      200  {object}  ordersResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/v1/orders/user/{id} [get]
func (h *OrderHandler) ListByUser(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	orders, err := h.service.ListByUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ordersResponse{Orders: orders})
}

// Update changes order fields. Status changes must follow the lifecycle.
// Admin only.
//
// @Summary      Update an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                 true  "Order id"
// @Param        body  body      updateOrderRequest  true  "Fields to change"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/orders/{id} [put]
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.service.Update(c.Request().Context(), id, ports.UpdateOrderInput{
		Status:          req.Status,
		OrderType:       req.OrderType,
		DeliveryAddress: req.DeliveryAddress,
		PizzeriaAddress: req.PizzeriaAddress,
		Price:           req.Price,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, orderResponse{Message: "Order updated", Order: order})
}

// Delete removes an order. Admin only.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Order deleted"})
}

// ListItems returns the product lines of an order. Owner or admin.
//
// @Summary      List the items of an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  int  true  "Order id"
// @Success      200  {object}  orderItemsResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id}/products [get]
func (h *OrderHandler) ListItems(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.service.ListItems(c.Request().Context(), principal, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orderItemsResponse{Items: items})
}

// AddItem adds a product line to an order. Owner or admin.
//
// @Summary      Add an item to an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int               true  "Order id"
// @Param        body  body      orderItemRequest  true  "Item"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/v1/orders/{id}/products [post]
func (h *OrderHandler) AddItem(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req orderItemRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	item := domain.OrderItem{ProductID: req.ProductID, Quantity: req.Quantity}
	if err := h.service.AddItem(c.Request().Context(), principal, id, item); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item added"})
}

// RemoveItem removes a product line from an order. Owner or admin.
//
// @Summary      Remove an item from an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  int  true  "Order id"
// @Param        productid  path  int  true  "Product id"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/v1/orders/{id}/products/{productid} [delete]
func (h *OrderHandler) RemoveItem(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	productID, err := pathID(c, "productid")
	if err != nil {
		return err
	}

	if err := h.service.RemoveItem(c.Request().Context(), principal, id, productID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Item removed"})
}
