package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ajayscafe/cafe-api/internal/models"
	"github.com/ajayscafe/cafe-api/internal/services"
	"github.com/gin-gonic/gin"
)

// UpdateStatusRequest is the payload for the order status transition endpoint
type UpdateStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// OrderController handles HTTP requests related to the order ledger
type OrderController interface {
	// GetAllOrders retrieves all orders, most recent first
	GetAllOrders(c *gin.Context)
	// GetOrdersByStatus retrieves orders in a given status, most recent first
	GetOrdersByStatus(c *gin.Context)
	// GetOrderByID retrieves an order by its ID
	GetOrderByID(c *gin.Context)
	// CreateOrder creates a new order
	CreateOrder(c *gin.Context)
	// UpdateOrderStatus transitions an order to a new status
	UpdateOrderStatus(c *gin.Context)
	// DeleteOrder deletes an order by its ID
	DeleteOrder(c *gin.Context)
}

type orderController struct {
	service services.OrderService
}

// NewOrderController creates a new instance of OrderController
func NewOrderController(service services.OrderService) *orderController {
	return &orderController{service: service}
}

// GetAllOrders godoc
// @Summary Get all orders
// @Description Get every order in the ledger, most recent first
// @Tags orders
// @Accept json
// @Produce json
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/orders [get]
func (c *orderController) GetAllOrders(ctx *gin.Context) {
	orders, err := c.service.GetAllOrders()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve orders"))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrdersByStatus godoc
// @Summary Get orders by status
// @Description Get all orders whose status equals the given value, most recent
// @Description first. Unknown status values yield an empty list, not an error.
// @Tags orders
// @Accept json
// @Produce json
// @Param status path string true "Order status"
// @Success 200 {array} models.Order
// @Failure 500 {object} models.APIError
// @Router /api/orders/status/{status} [get]
func (c *orderController) GetOrdersByStatus(ctx *gin.Context) {
	orders, err := c.service.GetOrdersByStatus(models.OrderStatus(ctx.Param("status")))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve orders"))
		return
	}
	ctx.JSON(http.StatusOK, orders)
}

// GetOrderByID godoc
// @Summary Get order by ID
// @Description Get a single order by its ID
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Router /api/orders/{id} [get]
func (c *orderController) GetOrderByID(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid order ID format"))
		return
	}

	order, err := c.service.GetOrderByID(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve order"))
		return
	}
	ctx.JSON(http.StatusOK, order)
}

// CreateOrder godoc
// @Summary Create a new order
// @Description Create a new order with the input payload. The ID and order
// @Description date are server-assigned; a missing status defaults to pending.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body models.Order true "Order object"
// @Success 201 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/orders [post]
func (c *orderController) CreateOrder(ctx *gin.Context) {
	var order models.Order
	if err := ctx.ShouldBindJSON(&order); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderInvalidData, "Invalid request body"))
		return
	}

	if order.Status != "" && !order.Status.IsValid() {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderInvalidStatus, "Unrecognized order status", map[string]interface{}{
			"status": order.Status,
		}))
		return
	}

	created, err := c.service.CreateOrder(order)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to create order"))
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Set the status of an existing order. Only the status field
// @Description changes; every other field is left untouched.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param status body controllers.UpdateStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/orders/{id}/status [put]
func (c *orderController) UpdateOrderStatus(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid order ID format"))
		return
	}

	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderInvalidData, "Invalid request body"))
		return
	}

	if !req.Status.IsValid() {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrOrderInvalidStatus, "Unrecognized order status", map[string]interface{}{
			"status": req.Status,
		}))
		return
	}

	updated, err := c.service.UpdateOrderStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrOrderNotFound, "Order not found"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to update order status"))
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteOrder godoc
// @Summary Delete an order
// @Description Delete an order by its ID. Deleting an absent ID succeeds.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/orders/{id} [delete]
func (c *orderController) DeleteOrder(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid order ID format"))
		return
	}

	if err := c.service.DeleteOrder(id); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to delete order"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}
