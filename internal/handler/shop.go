package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/middleware"
	"github.com/nexuslabs/marketplace-api/internal/service"
)

// ShopHandler serves the owner's own storefront: profile, online toggle, and
// the dashboard stats.
type ShopHandler struct {
	shopService *service.ShopService
	projections *service.ProjectionService
}

func NewShopHandler(shopService *service.ShopService, projections *service.ProjectionService) *ShopHandler {
	return &ShopHandler{shopService: shopService, projections: projections}
}

func (h *ShopHandler) GetProfile(c *gin.Context) {
	shop, err := h.shopService.GetByID(middleware.GetShopID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
		return
	}
	c.JSON(http.StatusOK, toShopResponse(shop))
}

func (h *ShopHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.shopService.UpdateProfile(middleware.GetShopID(c), req); err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	shop, err := h.shopService.GetByID(middleware.GetShopID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, toShopResponse(shop))
}

func (h *ShopHandler) ToggleOnline(c *gin.Context) {
	if err := h.shopService.ToggleOnline(middleware.GetShopID(c)); err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ShopHandler) Stats(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	c.JSON(http.StatusOK, dto.ShopStatsResponse{
		Revenue:      h.projections.ShopRevenue(shopID),
		ActiveOrders: h.projections.ActiveOrderCount(shopID),
		NewOrders:    h.projections.NewOrderBadgeCount(shopID),
	})
}
