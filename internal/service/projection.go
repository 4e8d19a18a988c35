package service

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

// ProjectionService computes the read-side views over the current entity
// snapshot. Every call recomputes from the store; nothing here is cached,
// so the views can never go stale.
type ProjectionService struct {
	store *store.Store
}

func NewProjectionService(st *store.Store) *ProjectionService {
	return &ProjectionService{store: st}
}

// PendingShops is the admin review queue.
func (s *ProjectionService) PendingShops() []model.Shop {
	return filterShops(s.store.Shops(), model.ShopStatusPending)
}

func (s *ProjectionService) ActiveShops() []model.Shop {
	return filterShops(s.store.Shops(), model.ShopStatusApproved)
}

func (s *ProjectionService) AllShops() []model.Shop {
	return s.store.Shops()
}

func (s *ProjectionService) AllOrders() []model.Order {
	return s.store.Orders()
}

// TotalRevenue sums the totals of COMPLETED orders across the platform.
func (s *ProjectionService) TotalRevenue() decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.store.Orders() {
		if o.Status == model.OrderStatusCompleted {
			total = total.Add(o.Total)
		}
	}
	return total
}

// ActiveOrderCountAll counts every order still in flight, platform-wide.
func (s *ProjectionService) ActiveOrderCountAll() int {
	count := 0
	for _, o := range s.store.Orders() {
		if !isSettled(o.Status) {
			count++
		}
	}
	return count
}

// ActiveOrderCount counts a shop's orders that are neither completed nor
// cancelled.
func (s *ProjectionService) ActiveOrderCount(shopID uuid.UUID) int {
	count := 0
	for _, o := range s.store.Orders() {
		if o.ShopID == shopID && !isSettled(o.Status) {
			count++
		}
	}
	return count
}

// NewOrderBadgeCount counts a shop's RECEIVED orders; it drives the
// notification indicator.
func (s *ProjectionService) NewOrderBadgeCount(shopID uuid.UUID) int {
	count := 0
	for _, o := range s.store.Orders() {
		if o.ShopID == shopID && o.Status == model.OrderStatusReceived {
			count++
		}
	}
	return count
}

// ShopRevenue sums the totals of a shop's COMPLETED orders.
func (s *ProjectionService) ShopRevenue(shopID uuid.UUID) decimal.Decimal {
	total := decimal.Zero
	for _, o := range s.store.Orders() {
		if o.ShopID == shopID && o.Status == model.OrderStatusCompleted {
			total = total.Add(o.Total)
		}
	}
	return total
}

// ShopOrders returns a shop's orders in insertion order.
func (s *ProjectionService) ShopOrders(shopID uuid.UUID) []model.Order {
	var out []model.Order
	for _, o := range s.store.Orders() {
		if o.ShopID == shopID {
			out = append(out, o)
		}
	}
	return out
}

// ShopProducts returns a shop's catalog in insertion order.
func (s *ProjectionService) ShopProducts(shopID uuid.UUID) []model.Product {
	var out []model.Product
	for _, p := range s.store.Products() {
		if p.ShopID == shopID {
			out = append(out, p)
		}
	}
	return out
}

func filterShops(shops []model.Shop, status model.ShopStatus) []model.Shop {
	var out []model.Shop
	for _, sh := range shops {
		if sh.Status == status {
			out = append(out, sh)
		}
	}
	return out
}

func isSettled(status model.OrderStatus) bool {
	return status == model.OrderStatusCompleted || status == model.OrderStatusCancelled
}
