package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleShop  UserRole = "SHOP"
)

type ShopStatus string

const (
	ShopStatusPending  ShopStatus = "PENDING"
	ShopStatusApproved ShopStatus = "APPROVED"
	ShopStatusRejected ShopStatus = "REJECTED"
	ShopStatusBlocked  ShopStatus = "BLOCKED"
)

type ShopCategory string

const (
	CategoryFood        ShopCategory = "FOOD"
	CategoryGrocery     ShopCategory = "GROCERY"
	CategoryPharmacy    ShopCategory = "PHARMACY"
	CategoryElectronics ShopCategory = "ELECTRONICS"
	CategoryCosmetics   ShopCategory = "COSMETICS"
)

type OrderStatus string

const (
	OrderStatusReceived       OrderStatus = "RECEIVED"
	OrderStatusAccepted       OrderStatus = "ACCEPTED"
	OrderStatusPreparing      OrderStatus = "PREPARING"
	OrderStatusReadyForPickup OrderStatus = "READY_FOR_PICKUP"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
)

// DefaultRejectionReason is used when an admin rejects a shop application
// without giving an explicit reason.
const DefaultRejectionReason = "Policy Violation"

type User struct {
	ID        uuid.UUID
	Email     string
	Role      UserRole
	Name      string
	CreatedAt time.Time
}

type Location struct {
	Lat     float64
	Lng     float64
	Address string
}

type Timing struct {
	Open  string
	Close string
}

type Shop struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	Category        ShopCategory
	Contact         string
	Location        Location
	Timing          Timing
	Status          ShopStatus
	IsOnline        bool
	Logo            string
	RejectionReason string
	CreatedAt       time.Time
}

// ProductAttributes carries the category-specific optional fields. Only the
// fields relevant to the owning shop's category are populated.
type ProductAttributes struct {
	// Food
	PreparationTime        int  `json:"preparation_time,omitempty"`
	IsVeg                  bool `json:"is_veg,omitempty"`
	CustomizationAvailable bool `json:"customization_available,omitempty"`
	// Grocery
	UnitType        string `json:"unit_type,omitempty"`
	QuantityPerUnit string `json:"quantity_per_unit,omitempty"`
	ExpiryDate      string `json:"expiry_date,omitempty"`
	// Electronics
	Brand          string `json:"brand,omitempty"`
	ModelNumber    string `json:"model_number,omitempty"`
	WarrantyPeriod string `json:"warranty_period,omitempty"`
	IsReturnable   bool   `json:"is_returnable,omitempty"`
	// Pharmacy
	RequiresPrescription bool   `json:"requires_prescription,omitempty"`
	BatchNumber          string `json:"batch_number,omitempty"`
	// Cosmetics
	SkinType    string `json:"skin_type,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
}

type Product struct {
	ID          uuid.UUID
	ShopID      uuid.UUID
	Name        string
	Description string
	MRP         decimal.Decimal
	Discount    decimal.Decimal
	// Price is the final selling price, always max(0, MRP - Discount).
	// It is recomputed by the catalog service and never edited directly.
	Price      decimal.Decimal
	Category   string
	Image      string
	IsEnabled  bool
	Stock      int
	Attributes ProductAttributes
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SellingPrice computes max(0, mrp - discount).
func SellingPrice(mrp, discount decimal.Decimal) decimal.Decimal {
	price := mrp.Sub(discount)
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

type OrderItem struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int
	Price     decimal.Decimal
}

type DeliveryPartner struct {
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

type Order struct {
	ID           uuid.UUID
	ShopID       uuid.UUID
	CustomerName string
	Items        []OrderItem
	// Total is a snapshot computed at creation time; later product price
	// edits never change it.
	Total           decimal.Decimal
	Status          OrderStatus
	CreatedAt       time.Time
	RejectionReason string
	DeliveryPartner *DeliveryPartner
}
