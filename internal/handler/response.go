package handler

import (
	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/model"
)

func toUserResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{ID: user.ID, Email: user.Email, Role: user.Role, Name: user.Name}
}

func toShopResponse(shop *model.Shop) dto.ShopResponse {
	return dto.ShopResponse{
		ID:              shop.ID,
		OwnerID:         shop.OwnerID,
		Name:            shop.Name,
		Category:        shop.Category,
		Contact:         shop.Contact,
		Address:         shop.Location.Address,
		Lat:             shop.Location.Lat,
		Lng:             shop.Location.Lng,
		OpenTime:        shop.Timing.Open,
		CloseTime:       shop.Timing.Close,
		Status:          shop.Status,
		IsOnline:        shop.IsOnline,
		RejectionReason: shop.RejectionReason,
		CreatedAt:       shop.CreatedAt,
	}
}

func toShopListResponse(shops []model.Shop) dto.ShopListResponse {
	items := make([]dto.ShopResponse, 0, len(shops))
	for i := range shops {
		items = append(items, toShopResponse(&shops[i]))
	}
	return dto.ShopListResponse{Shops: items, Total: len(items)}
}

func toProductResponse(p *model.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          p.ID,
		ShopID:      p.ShopID,
		Name:        p.Name,
		Description: p.Description,
		MRP:         p.MRP,
		Discount:    p.Discount,
		Price:       p.Price,
		Category:    p.Category,
		Image:       p.Image,
		IsEnabled:   p.IsEnabled,
		Stock:       p.Stock,
		Attributes:  p.Attributes,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toOrderResponse(order *model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	return dto.OrderResponse{
		ID:              order.ID,
		ShopID:          order.ShopID,
		CustomerName:    order.CustomerName,
		Items:           items,
		Total:           order.Total,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		RejectionReason: order.RejectionReason,
		DeliveryPartner: order.DeliveryPartner,
	}
}

func toOrderListResponse(orders []model.Order) dto.OrderListResponse {
	items := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		items = append(items, toOrderResponse(&orders[i]))
	}
	return dto.OrderListResponse{Orders: items, Total: len(items)}
}
