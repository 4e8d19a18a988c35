package service

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrNoItems           = errors.New("order must contain at least one item")
	ErrIllegalTransition = errors.New("illegal order status transition")
)

// nextStatus is the single legal successor for each order status. Statuses
// absent from the map (COMPLETED, CANCELLED) are terminal.
var nextStatus = map[model.OrderStatus]model.OrderStatus{
	model.OrderStatusReceived:       model.OrderStatusAccepted,
	model.OrderStatusAccepted:       model.OrderStatusPreparing,
	model.OrderStatusPreparing:      model.OrderStatusReadyForPickup,
	model.OrderStatusReadyForPickup: model.OrderStatusCompleted,
}

// OrderService owns the order lifecycle. Advance is the only way an order's
// status changes, and it refuses anything but the next step in the chain.
type OrderService struct {
	store *store.Store
}

func NewOrderService(st *store.Store) *OrderService {
	return &OrderService{store: st}
}

// Create opens a new RECEIVED order. The total is snapshotted from the given
// item prices and never recomputed from the live catalog.
func (s *OrderService) Create(shopID uuid.UUID, customerName string, items []model.OrderItem) (*model.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if _, ok := s.store.ShopByID(shopID); !ok {
		return nil, ErrShopNotFound
	}

	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := &model.Order{
		ShopID:       shopID,
		CustomerName: customerName,
		Items:        items,
		Total:        total,
		Status:       model.OrderStatusReceived,
	}
	s.store.CreateOrder(order)
	return order, nil
}

// Advance moves an order one step along
// RECEIVED -> ACCEPTED -> PREPARING -> READY_FOR_PICKUP -> COMPLETED.
// Any other target, including skips and backward moves, is rejected.
func (s *OrderService) Advance(orderID uuid.UUID, target model.OrderStatus) error {
	err := s.store.UpdateOrder(orderID, func(order *model.Order) error {
		if nextStatus[order.Status] != target {
			return ErrIllegalTransition
		}
		order.Status = target
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrOrderNotFound
	}
	return err
}

// Decline removes a RECEIVED order outright. The record is deleted rather
// than marked CANCELLED, matching the console's observed behavior.
func (s *OrderService) Decline(orderID uuid.UUID) error {
	order, ok := s.store.OrderByID(orderID)
	if !ok {
		return ErrOrderNotFound
	}
	if order.Status != model.OrderStatusReceived {
		return ErrIllegalTransition
	}
	if err := s.store.DeleteOrder(orderID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *OrderService) GetByID(orderID uuid.UUID) (*model.Order, error) {
	order, ok := s.store.OrderByID(orderID)
	if !ok {
		return nil, ErrOrderNotFound
	}
	return order, nil
}
