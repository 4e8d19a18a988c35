package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexuslabs/marketplace-api/internal/model"
)

// --- Auth ---

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  UserResponse  `json:"user"`
	Shop  *ShopResponse `json:"shop,omitempty"`
}

type ChangePasswordRequest struct {
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type UserResponse struct {
	ID    uuid.UUID      `json:"id"`
	Email string         `json:"email"`
	Role  model.UserRole `json:"role"`
	Name  string         `json:"name"`
}

// --- Shop ---

type RegisterShopRequest struct {
	Name      string             `json:"name" binding:"required"`
	OwnerName string             `json:"owner_name" binding:"required"`
	Email     string             `json:"email" binding:"required,email"`
	Category  model.ShopCategory `json:"category" binding:"required,oneof=FOOD GROCERY PHARMACY ELECTRONICS COSMETICS"`
	Contact   string             `json:"contact" binding:"required"`
	Address   string             `json:"address" binding:"required"`
	OpenTime  string             `json:"open_time" binding:"required"`
	CloseTime string             `json:"close_time" binding:"required"`
}

type DecisionRequest struct {
	Verdict model.ShopStatus `json:"verdict" binding:"required,oneof=APPROVED REJECTED"`
	Reason  string           `json:"reason"`
}

type UpdateProfileRequest struct {
	ShopName  string             `json:"shop_name" binding:"required"`
	OwnerName string             `json:"owner_name" binding:"required"`
	Contact   string             `json:"contact" binding:"required"`
	Category  model.ShopCategory `json:"category" binding:"required,oneof=FOOD GROCERY PHARMACY ELECTRONICS COSMETICS"`
	Address   string             `json:"address" binding:"required"`
	OpenTime  string             `json:"open_time" binding:"required"`
	CloseTime string             `json:"close_time" binding:"required"`
}

type ShopResponse struct {
	ID              uuid.UUID          `json:"id"`
	OwnerID         uuid.UUID          `json:"owner_id"`
	Name            string             `json:"name"`
	Category        model.ShopCategory `json:"category"`
	Contact         string             `json:"contact"`
	Address         string             `json:"address"`
	Lat             float64            `json:"lat"`
	Lng             float64            `json:"lng"`
	OpenTime        string             `json:"open_time"`
	CloseTime       string             `json:"close_time"`
	Status          model.ShopStatus   `json:"status"`
	IsOnline        bool               `json:"is_online"`
	RejectionReason string             `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

type ShopListResponse struct {
	Shops []ShopResponse `json:"shops"`
	Total int            `json:"total"`
}

// --- Product ---

type ProductRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Description string                  `json:"description"`
	MRP         decimal.Decimal         `json:"mrp" binding:"required"`
	Discount    decimal.Decimal         `json:"discount"`
	Category    string                  `json:"category"`
	Image       string                  `json:"image"`
	IsEnabled   bool                    `json:"is_enabled"`
	Stock       int                     `json:"stock" binding:"min=0"`
	Attributes  model.ProductAttributes `json:"attributes"`
}

type SetEnabledRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type ProductResponse struct {
	ID          uuid.UUID               `json:"id"`
	ShopID      uuid.UUID               `json:"shop_id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	MRP         decimal.Decimal         `json:"mrp"`
	Discount    decimal.Decimal         `json:"discount"`
	Price       decimal.Decimal         `json:"price"`
	Category    string                  `json:"category"`
	Image       string                  `json:"image"`
	IsEnabled   bool                    `json:"is_enabled"`
	Stock       int                     `json:"stock"`
	Attributes  model.ProductAttributes `json:"attributes"`
	CreatedAt   time.Time               `json:"created_at"`
	UpdatedAt   time.Time               `json:"updated_at"`
}

type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// --- Order ---

type OrderItemRequest struct {
	ProductID uuid.UUID       `json:"product_id" binding:"required"`
	Name      string          `json:"name" binding:"required"`
	Quantity  int             `json:"quantity" binding:"required,min=1"`
	Price     decimal.Decimal `json:"price" binding:"required"`
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Items        []OrderItemRequest `json:"items" binding:"required"`
}

type AdvanceOrderRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

type OrderItemResponse struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

type OrderResponse struct {
	ID              uuid.UUID              `json:"id"`
	ShopID          uuid.UUID              `json:"shop_id"`
	CustomerName    string                 `json:"customer_name"`
	Items           []OrderItemResponse    `json:"items"`
	Total           decimal.Decimal        `json:"total"`
	Status          model.OrderStatus      `json:"status"`
	CreatedAt       time.Time              `json:"created_at"`
	RejectionReason string                 `json:"rejection_reason,omitempty"`
	DeliveryPartner *model.DeliveryPartner `json:"delivery_partner,omitempty"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int             `json:"total"`
}

// --- Stats ---

type AdminStatsResponse struct {
	PendingShops int             `json:"pending_shops"`
	ActiveShops  int             `json:"active_shops"`
	ActiveOrders int             `json:"active_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ShopStatsResponse struct {
	Revenue      decimal.Decimal `json:"revenue"`
	ActiveOrders int             `json:"active_orders"`
	NewOrders    int             `json:"new_orders"`
}
