package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/service"
)

// AdminHandler serves the platform console: application review, shop
// oversight, and the cross-shop order monitor.
type AdminHandler struct {
	shopService *service.ShopService
	projections *service.ProjectionService
}

func NewAdminHandler(shopService *service.ShopService, projections *service.ProjectionService) *AdminHandler {
	return &AdminHandler{shopService: shopService, projections: projections}
}

func (h *AdminHandler) ListPendingShops(c *gin.Context) {
	c.JSON(http.StatusOK, toShopListResponse(h.projections.PendingShops()))
}

func (h *AdminHandler) ListShops(c *gin.Context) {
	c.JSON(http.StatusOK, toShopListResponse(h.projections.AllShops()))
}

func (h *AdminHandler) Decide(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.shopService.Decide(shopID, req.Verdict, req.Reason); err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ToggleOnline(c *gin.Context) {
	shopID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shop ID"})
		return
	}

	if err := h.shopService.ToggleOnline(shopID); err != nil {
		if errors.Is(err, service.ErrShopNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, toOrderListResponse(h.projections.AllOrders()))
}

func (h *AdminHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, dto.AdminStatsResponse{
		PendingShops: len(h.projections.PendingShops()),
		ActiveShops:  len(h.projections.ActiveShops()),
		ActiveOrders: h.projections.ActiveOrderCountAll(),
		TotalRevenue: h.projections.TotalRevenue(),
	})
}
