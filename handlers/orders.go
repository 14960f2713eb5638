package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/provision-store/provision-backend-go/models"
	"github.com/provision-store/provision-backend-go/store"
)

type OrderHandler struct {
	store store.UserStore
}

func NewOrderHandler(s store.UserStore) *OrderHandler {
	return &OrderHandler{store: s}
}

type createOrderRequest struct {
	Items json.RawMessage `json:"items"`
	Total float64         `json:"total"`
}

// CreateOrder appends a new order to the authenticated user's history.
// There is no idempotency key: a double-submitted checkout creates two
// orders, matching the storefront's existing contract.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	userID := c.Get("userID").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"message": "Invalid request format"})
	}

	items, count := decodeOrderItems(req.Items)

	order := models.Order{
		OrderID:   fmt.Sprintf("ORD-%d", time.Now().UnixMilli()),
		Date:      time.Now(),
		Items:     items,
		ItemCount: count,
		Total:     req.Total,
		Status:    "Processing",
	}

	if err := h.store.AppendOrder(c.Request().Context(), userID, order); err != nil {
		if err == store.ErrNotFound {
			return c.JSON(http.StatusNotFound, map[string]string{"message": "User not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"message": "Server error creating order"})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Order created successfully",
		"order":   order,
	})
}

// decodeOrderItems accepts the canonical structured item list as well as
// the legacy payload where items is just a count. Anything else is treated
// as an empty order line.
func decodeOrderItems(raw json.RawMessage) ([]models.OrderItem, int) {
	if len(raw) > 0 {
		var items []models.OrderItem
		if err := json.Unmarshal(raw, &items); err == nil {
			if items == nil {
				items = []models.OrderItem{}
			}
			return items, len(items)
		}

		var count int
		if err := json.Unmarshal(raw, &count); err == nil && count >= 0 {
			return []models.OrderItem{}, count
		}
	}
	return []models.OrderItem{}, 0
}
