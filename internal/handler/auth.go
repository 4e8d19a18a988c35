package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
	shopService *service.ShopService
}

func NewAuthHandler(authService *service.AuthService, shopService *service.ShopService) *AuthHandler {
	return &AuthHandler{authService: authService, shopService: shopService}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Authenticate(req.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no account for this email"})
		return
	}

	session, err := h.authService.EstablishSession(user)
	if err != nil {
		var rejected *service.RejectedError
		switch {
		case errors.As(err, &rejected):
			c.JSON(http.StatusForbidden, gin.H{"error": "application rejected", "reason": rejected.Reason})
		case errors.Is(err, service.ErrVerificationPending):
			c.JSON(http.StatusForbidden, gin.H{"error": "verification pending"})
		case errors.Is(err, service.ErrNoShopProfile):
			c.JSON(http.StatusForbidden, gin.H{"error": "no shop profile found"})
		case errors.Is(err, service.ErrShopBlocked):
			c.JSON(http.StatusForbidden, gin.H{"error": "shop is blocked"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	token, err := h.authService.IssueToken(session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	resp := dto.LoginResponse{Token: token, User: toUserResponse(session.SessionUser())}
	if shopSess, ok := session.(*service.ShopSession); ok {
		shop := toShopResponse(shopSess.Shop)
		resp.Shop = &shop
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, shop, err := h.shopService.Register(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, toShopResponse(shop))
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.shopService.ChangePassword(req.NewPassword, req.ConfirmPassword); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordMismatch):
			c.JSON(http.StatusBadRequest, gin.H{"error": "passwords do not match"})
		case errors.Is(err, service.ErrPasswordTooShort):
			c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 6 characters"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
