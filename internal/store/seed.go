package store

import (
	"github.com/shopspring/decimal"

	"github.com/nexuslabs/marketplace-api/internal/model"
)

// Seed loads the demo dataset: an admin, an approved food shop with a catalog
// and three fresh orders, and a pharmacy still waiting for review.
func (s *Store) Seed(adminEmail, adminName string) {
	admin := &model.User{Email: adminEmail, Role: model.RoleAdmin, Name: adminName}
	s.CreateUser(admin)

	owner := &model.User{Email: "owner@shop.com", Role: model.RoleShop, Name: "suresh"}
	foodShop := &model.Shop{
		Name:     "suresh",
		Category: model.CategoryFood,
		Contact:  "9876543210",
		Location: model.Location{Lat: 12.9716, Lng: 77.5946, Address: "4th Block, Koramangala, Bengaluru"},
		Timing:   model.Timing{Open: "09:00", Close: "22:00"},
		Status:   model.ShopStatusApproved,
		IsOnline: true,
	}
	s.CreateShopWithOwner(owner, foodShop)

	pharmacyOwner := &model.User{Email: "owner@pharmacy.com", Role: model.RoleShop, Name: "Pharmacy Plus"}
	pharmacy := &model.Shop{
		Name:     "Pharmacy Plus",
		Category: model.CategoryPharmacy,
		Contact:  "9123456789",
		Location: model.Location{Lat: 12.9141, Lng: 77.6413, Address: "HSR Layout, Bengaluru"},
		Timing:   model.Timing{Open: "08:00", Close: "23:00"},
		Status:   model.ShopStatusPending,
	}
	s.CreateShopWithOwner(pharmacyOwner, pharmacy)

	butterChicken := &model.Product{
		ShopID:      foodShop.ID,
		Name:        "Butter Chicken",
		Description: "Creamy and rich tomato-based curry with tender chicken pieces",
		MRP:         decimal.NewFromInt(400),
		Discount:    decimal.NewFromInt(50),
		Price:       decimal.NewFromInt(350),
		Category:    "Main",
		Image:       "https://images.unsplash.com/photo-1603894584373-5ac82b2ae398?q=80&w=1000&auto=format&fit=crop",
		IsEnabled:   true,
		Stock:       50,
		Attributes:  model.ProductAttributes{PreparationTime: 25},
	}
	s.CreateProduct(butterChicken)

	masalaDosa := &model.Product{
		ShopID:      foodShop.ID,
		Name:        "Masala Dosa",
		Description: "Crispy rice pancake with spiced potato filling",
		MRP:         decimal.NewFromInt(100),
		Discount:    decimal.NewFromInt(20),
		Price:       decimal.NewFromInt(80),
		Category:    "Breakfast",
		Image:       "https://images.unsplash.com/photo-1589301760014-d929f3979dbc?q=80&w=1000&auto=format&fit=crop",
		IsEnabled:   true,
		Stock:       100,
		Attributes:  model.ProductAttributes{PreparationTime: 10},
	}
	s.CreateProduct(masalaDosa)

	s.CreateOrder(&model.Order{
		ShopID:       foodShop.ID,
		CustomerName: "Rahul Sharma",
		Items: []model.OrderItem{
			{ProductID: butterChicken.ID, Name: "Butter Chicken", Quantity: 2, Price: decimal.NewFromInt(350)},
		},
		Total:  decimal.NewFromInt(700),
		Status: model.OrderStatusReceived,
	})

	s.CreateOrder(&model.Order{
		ShopID:       foodShop.ID,
		CustomerName: "Priya Verma",
		Items: []model.OrderItem{
			{ProductID: masalaDosa.ID, Name: "Masala Dosa", Quantity: 3, Price: decimal.NewFromInt(80)},
		},
		Total:  decimal.NewFromInt(240),
		Status: model.OrderStatusReceived,
	})

	s.CreateOrder(&model.Order{
		ShopID:       foodShop.ID,
		CustomerName: "Amit Patel",
		Items: []model.OrderItem{
			{ProductID: butterChicken.ID, Name: "Butter Chicken", Quantity: 1, Price: decimal.NewFromInt(350)},
			{ProductID: masalaDosa.ID, Name: "Masala Dosa", Quantity: 2, Price: decimal.NewFromInt(80)},
		},
		Total:  decimal.NewFromInt(510),
		Status: model.OrderStatusReceived,
	})
}
