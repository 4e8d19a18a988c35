package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

func newOrderFixture(t *testing.T) (*OrderService, *store.Store, *model.Shop) {
	t.Helper()
	st := store.New()
	owner := &model.User{Email: "owner@shop.com", Role: model.RoleShop, Name: "suresh"}
	shop := &model.Shop{Name: "suresh", Category: model.CategoryFood, Status: model.ShopStatusApproved, IsOnline: true}
	st.CreateShopWithOwner(owner, shop)
	return NewOrderService(st), st, shop
}

func butterChickenItems() []model.OrderItem {
	return []model.OrderItem{
		{ProductID: uuid.New(), Name: "Butter Chicken", Quantity: 2, Price: decimal.NewFromInt(350)},
	}
}

func TestOrderService_Create(t *testing.T) {
	svc, _, shop := newOrderFixture(t)

	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)

	assert.Equal(t, model.OrderStatusReceived, order.Status)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(700)), "want total 700, got %s", order.Total)
	assert.Equal(t, shop.ID, order.ShopID)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestOrderService_Create_MultiItemTotal(t *testing.T) {
	svc, _, shop := newOrderFixture(t)

	order, err := svc.Create(shop.ID, "Amit Patel", []model.OrderItem{
		{ProductID: uuid.New(), Name: "Butter Chicken", Quantity: 1, Price: decimal.NewFromInt(350)},
		{ProductID: uuid.New(), Name: "Masala Dosa", Quantity: 2, Price: decimal.NewFromInt(80)},
	})
	require.NoError(t, err)
	assert.True(t, order.Total.Equal(decimal.NewFromInt(510)))
}

func TestOrderService_Create_NoItems(t *testing.T) {
	svc, _, shop := newOrderFixture(t)
	_, err := svc.Create(shop.ID, "Rahul Sharma", nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestOrderService_Create_ShopNotFound(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	_, err := svc.Create(uuid.New(), "Rahul Sharma", butterChickenItems())
	assert.ErrorIs(t, err, ErrShopNotFound)
}

// The total is a creation-time snapshot: later catalog edits never touch it.
func TestOrderService_TotalImmutable(t *testing.T) {
	svc, st, shop := newOrderFixture(t)
	products := NewProductService(st)

	product, err := products.Add(shop.ID, productRequest("Butter Chicken", 400, 50))
	require.NoError(t, err)

	order, err := svc.Create(shop.ID, "Rahul Sharma", []model.OrderItem{
		{ProductID: product.ID, Name: product.Name, Quantity: 2, Price: product.Price},
	})
	require.NoError(t, err)
	require.True(t, order.Total.Equal(decimal.NewFromInt(700)))

	_, err = products.Update(product.ID, productRequest("Butter Chicken", 900, 0))
	require.NoError(t, err)

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(700)))
	assert.True(t, got.Items[0].Price.Equal(decimal.NewFromInt(350)))
}

func TestOrderService_Advance_FullChain(t *testing.T) {
	svc, _, shop := newOrderFixture(t)
	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)

	chain := []model.OrderStatus{
		model.OrderStatusAccepted,
		model.OrderStatusPreparing,
		model.OrderStatusReadyForPickup,
		model.OrderStatusCompleted,
	}
	for _, status := range chain {
		require.NoError(t, svc.Advance(order.ID, status))
		got, err := svc.GetByID(order.ID)
		require.NoError(t, err)
		assert.Equal(t, status, got.Status)
	}
}

func TestOrderService_Advance_RejectsSkip(t *testing.T) {
	svc, _, shop := newOrderFixture(t)
	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)

	// RECEIVED -> PREPARING skips ACCEPTED.
	err = svc.Advance(order.ID, model.OrderStatusPreparing)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	require.NoError(t, svc.Advance(order.ID, model.OrderStatusAccepted))

	// ACCEPTED -> READY_FOR_PICKUP skips PREPARING.
	err = svc.Advance(order.ID, model.OrderStatusReadyForPickup)
	assert.ErrorIs(t, err, ErrIllegalTransition)

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusAccepted, got.Status)
}

func TestOrderService_Advance_RejectsBackward(t *testing.T) {
	svc, _, shop := newOrderFixture(t)
	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)

	require.NoError(t, svc.Advance(order.ID, model.OrderStatusAccepted))
	assert.ErrorIs(t, svc.Advance(order.ID, model.OrderStatusReceived), ErrIllegalTransition)
}

func TestOrderService_Advance_TerminalStatus(t *testing.T) {
	svc, _, shop := newOrderFixture(t)
	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)

	for _, status := range []model.OrderStatus{
		model.OrderStatusAccepted,
		model.OrderStatusPreparing,
		model.OrderStatusReadyForPickup,
		model.OrderStatusCompleted,
	} {
		require.NoError(t, svc.Advance(order.ID, status))
	}

	assert.ErrorIs(t, svc.Advance(order.ID, model.OrderStatusAccepted), ErrIllegalTransition)
	assert.ErrorIs(t, svc.Advance(order.ID, model.OrderStatusCancelled), ErrIllegalTransition)
}

func TestOrderService_Advance_NotFound(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	assert.ErrorIs(t, svc.Advance(uuid.New(), model.OrderStatusAccepted), ErrOrderNotFound)
}

func TestOrderService_Decline_Received(t *testing.T) {
	svc, st, shop := newOrderFixture(t)
	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)

	require.NoError(t, svc.Decline(order.ID))

	// Declined orders are removed outright, not marked CANCELLED.
	_, err = svc.GetByID(order.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
	assert.Empty(t, st.Orders())
}

func TestOrderService_Decline_AfterAccept(t *testing.T) {
	svc, _, shop := newOrderFixture(t)
	order, err := svc.Create(shop.ID, "Rahul Sharma", butterChickenItems())
	require.NoError(t, err)
	require.NoError(t, svc.Advance(order.ID, model.OrderStatusAccepted))

	assert.ErrorIs(t, svc.Decline(order.ID), ErrIllegalTransition)

	got, err := svc.GetByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusAccepted, got.Status)
}

func TestOrderService_Decline_NotFound(t *testing.T) {
	svc, _, _ := newOrderFixture(t)
	assert.ErrorIs(t, svc.Decline(uuid.New()), ErrOrderNotFound)
}
