package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pizza-store/middleware"
	"pizza-store/models"
	"pizza-store/store"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	StoreID uint `json:"store_id" binding:"required"`
	Items   []struct {
		ItemName string `json:"item_name" binding:"required"`
		Quantity int    `json:"quantity" binding:"required,min=1"`
	} `json:"items" binding:"required,min=1"`
}

// PlaceOrder creates a new order for the caller.
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lines := make([]store.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		lines = append(lines, store.OrderLine{ItemName: item.ItemName, Quantity: item.Quantity})
	}

	order, err := gw.PlaceOrder(middleware.GetLogin(c), req.StoreID, lines)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Store or item not found"})
		case errors.Is(err, store.ErrEmptyOrder), errors.Is(err, store.ErrBadQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order placed successfully",
		"order":       order,
		"total_price": order.TotalPrice,
	})
}

// GetOrders returns order history newest first. Customers are scoped to
// themselves; drivers and managers may name any login with ?login=. The
// caller's role comes from the store, not the token, so a demotion takes
// effect immediately.
func GetOrders(c *gin.Context) {
	target := middleware.GetLogin(c)
	if login := c.Query("login"); login != "" {
		role, err := gw.RoleOf(target)
		if err != nil || !role.AtLeast(models.RoleDriver) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Customers may only view their own orders"})
			return
		}
		target = login
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = n
	}

	orders, err := gw.OrdersFor(target, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns one order's row and its item rows. The ownership
// predicate is part of the lookup for customers, so an order belonging to
// someone else is indistinguishable from one that does not exist.
func GetOrderDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}

	login := middleware.GetLogin(c)
	role, err := gw.RoleOf(login)
	if err != nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "Could not resolve role"})
		return
	}
	var order *models.FoodOrder
	if role.AtLeast(models.RoleDriver) {
		order, err = gw.GetOrder(uint(id))
	} else {
		order, err = gw.GetOrderFor(uint(id), login)
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// UpdateOrderStatus lets drivers and managers set any order's status to any
// text.
func UpdateOrderStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := gw.SetOrderStatus(uint(id), req.Status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully", "order_id": id, "status": req.Status})
}
