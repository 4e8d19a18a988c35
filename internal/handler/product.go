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

type ProductHandler struct {
	productService *service.ProductService
	projections    *service.ProjectionService
}

func NewProductHandler(productService *service.ProductService, projections *service.ProjectionService) *ProductHandler {
	return &ProductHandler{productService: productService, projections: projections}
}

func (h *ProductHandler) List(c *gin.Context) {
	shopID := middleware.GetShopID(c)
	products := h.projections.ShopProducts(shopID)

	items := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, toProductResponse(&products[i]))
	}
	c.JSON(http.StatusOK, dto.ProductListResponse{Products: items, Total: len(items)})
}

func (h *ProductHandler) Create(c *gin.Context) {
	shopID := middleware.GetShopID(c)

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := h.productService.Add(shopID, req)
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toProductResponse(product))
}

func (h *ProductHandler) Update(c *gin.Context) {
	product, ok := h.shopProduct(c)
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.productService.Update(product.ID, req)
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProductResponse(updated))
}

func (h *ProductHandler) SetEnabled(c *gin.Context) {
	product, ok := h.shopProduct(c)
	if !ok {
		return
	}

	var req dto.SetEnabledRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.productService.SetEnabled(product.ID, *req.Enabled); err != nil {
		h.writeProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	product, ok := h.shopProduct(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(product.ID); err != nil {
		h.writeProductError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ProductHandler) shopProduct(c *gin.Context) (*model.Product, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product ID"})
		return nil, false
	}

	product, err := h.productService.GetByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return nil, false
	}
	if product.ShopID != middleware.GetShopID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})
		return nil, false
	}
	return product, true
}

func (h *ProductHandler) writeProductError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNameRequired), errors.Is(err, service.ErrMRPRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and MRP are required"})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
	case errors.Is(err, service.ErrShopNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "shop not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
