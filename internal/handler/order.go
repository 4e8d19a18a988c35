package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/middleware"
	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/service"
)

// OrderHandler serves the shop owner's fulfillment flow. Every route is
// scoped to the shop bound into the session token.
type OrderHandler struct {
	orderService *service.OrderService
	projections  *service.ProjectionService
}

func NewOrderHandler(orderService *service.OrderService, projections *service.ProjectionService) *OrderHandler {
	return &OrderHandler{orderService: orderService, projections: projections}
}

func (h *OrderHandler) List(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	c.JSON(http.StatusOK, toOrderListResponse(h.projections.ShopOrders(shopID)))
}

func (h *OrderHandler) Create(c *gin.Context) {
	shopID := middleware.GetShopID(c)

	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	items := make([]model.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.orderService.Create(shopID, req.CustomerName, items)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoItems):
			c.JSON(http.StatusBadRequest, gin.H{"error": "order must contain at least one item"})
		case errors.Is(err, service.ErrShopNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *OrderHandler) Advance(c *gin.Context) {
	order, ok := h.shopOrder(c)
	if !ok {
		return
	}

	var req dto.AdvanceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orderService.Advance(order.ID, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "illegal status transition"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) Decline(c *gin.Context) {
	order, ok := h.shopOrder(c)
	if !ok {
		return
	}

	if err := h.orderService.Decline(order.ID); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		case errors.Is(err, service.ErrIllegalTransition):
			c.JSON(http.StatusConflict, gin.H{"error": "only received orders can be declined"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// shopOrder resolves the :id param and refuses orders belonging to another
// shop before the lifecycle service ever sees them.
func (h *OrderHandler) shopOrder(c *gin.Context) (*model.Order, bool) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return nil, false
	}

	order, err := h.orderService.GetByID(orderID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return nil, false
	}
	if order.ShopID != middleware.GetShopID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return nil, false
	}
	return order, true
}
