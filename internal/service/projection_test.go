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

// projectionFixture builds the console's demo world: an approved food shop
// with three orders (700 and 240 completed, 510 still in flight) and a
// pending pharmacy.
func projectionFixture(t *testing.T) (*ProjectionService, *store.Store, *model.Shop) {
	t.Helper()
	st := store.New()

	owner := &model.User{Email: "owner@shop.com", Role: model.RoleShop, Name: "suresh"}
	foodShop := &model.Shop{Name: "suresh", Category: model.CategoryFood, Status: model.ShopStatusApproved}
	st.CreateShopWithOwner(owner, foodShop)

	pharmacyOwner := &model.User{Email: "owner@pharmacy.com", Role: model.RoleShop}
	pharmacy := &model.Shop{Name: "Pharmacy Plus", Category: model.CategoryPharmacy, Status: model.ShopStatusPending}
	st.CreateShopWithOwner(pharmacyOwner, pharmacy)

	totals := []struct {
		amount int64
		status model.OrderStatus
	}{
		{700, model.OrderStatusCompleted},
		{240, model.OrderStatusCompleted},
		{510, model.OrderStatusReceived},
	}
	for _, o := range totals {
		st.CreateOrder(&model.Order{
			ShopID: foodShop.ID,
			Items:  []model.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(o.amount)}},
			Total:  decimal.NewFromInt(o.amount),
			Status: o.status,
		})
	}

	return NewProjectionService(st), st, foodShop
}

func TestProjection_PendingAndActiveShops(t *testing.T) {
	svc, _, _ := projectionFixture(t)

	pending := svc.PendingShops()
	require.Len(t, pending, 1)
	assert.Equal(t, "Pharmacy Plus", pending[0].Name)

	active := svc.ActiveShops()
	require.Len(t, active, 1)
	assert.Equal(t, "suresh", active[0].Name)
}

func TestProjection_TotalRevenue(t *testing.T) {
	svc, _, _ := projectionFixture(t)
	// Only the completed 700 and 240 count; the received 510 does not.
	assert.True(t, svc.TotalRevenue().Equal(decimal.NewFromInt(940)), "want 940, got %s", svc.TotalRevenue())
}

func TestProjection_ActiveOrderCount(t *testing.T) {
	svc, st, shop := projectionFixture(t)

	assert.Equal(t, 1, svc.ActiveOrderCount(shop.ID))
	assert.Equal(t, 1, svc.ActiveOrderCountAll())

	// A cancelled order counts as settled too.
	st.CreateOrder(&model.Order{
		ShopID: shop.ID,
		Total:  decimal.NewFromInt(50),
		Status: model.OrderStatusCancelled,
	})
	assert.Equal(t, 1, svc.ActiveOrderCount(shop.ID))
}

func TestProjection_NewOrderBadgeCount(t *testing.T) {
	svc, st, shop := projectionFixture(t)

	assert.Equal(t, 1, svc.NewOrderBadgeCount(shop.ID))

	st.CreateOrder(&model.Order{
		ShopID: shop.ID,
		Total:  decimal.NewFromInt(80),
		Status: model.OrderStatusReceived,
	})
	assert.Equal(t, 2, svc.NewOrderBadgeCount(shop.ID))
}

// Projections recompute from the live snapshot on every call; completing an
// order moves it between views immediately.
func TestProjection_NeverStale(t *testing.T) {
	svc, st, shop := projectionFixture(t)
	orders := NewOrderService(st)

	received := svc.ShopOrders(shop.ID)[2]
	require.Equal(t, model.OrderStatusReceived, received.Status)

	for _, status := range []model.OrderStatus{
		model.OrderStatusAccepted,
		model.OrderStatusPreparing,
		model.OrderStatusReadyForPickup,
		model.OrderStatusCompleted,
	} {
		require.NoError(t, orders.Advance(received.ID, status))
	}

	assert.Equal(t, 0, svc.ActiveOrderCount(shop.ID))
	assert.Equal(t, 0, svc.NewOrderBadgeCount(shop.ID))
	assert.True(t, svc.TotalRevenue().Equal(decimal.NewFromInt(1450)))
}

func TestProjection_ShopOrders_FiltersAndPreservesOrder(t *testing.T) {
	svc, st, shop := projectionFixture(t)

	otherOwner := &model.User{Email: "other@shop.com", Role: model.RoleShop}
	otherShop := &model.Shop{Name: "Other", Status: model.ShopStatusApproved}
	st.CreateShopWithOwner(otherOwner, otherShop)
	st.CreateOrder(&model.Order{ShopID: otherShop.ID, Total: decimal.NewFromInt(99), Status: model.OrderStatusReceived})

	orders := svc.ShopOrders(shop.ID)
	require.Len(t, orders, 3)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(700)))
	assert.True(t, orders[1].Total.Equal(decimal.NewFromInt(240)))
	assert.True(t, orders[2].Total.Equal(decimal.NewFromInt(510)))

	assert.Len(t, svc.ShopOrders(otherShop.ID), 1)
	assert.Empty(t, svc.ShopOrders(uuid.New()))
}

func TestProjection_ShopProducts(t *testing.T) {
	svc, st, shop := projectionFixture(t)
	products := NewProductService(st)

	first, err := products.Add(shop.ID, productRequest("Butter Chicken", 400, 50))
	require.NoError(t, err)
	second, err := products.Add(shop.ID, productRequest("Masala Dosa", 100, 20))
	require.NoError(t, err)

	got := svc.ShopProducts(shop.ID)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestProjection_ShopRevenue(t *testing.T) {
	svc, st, shop := projectionFixture(t)

	otherOwner := &model.User{Email: "other@shop.com", Role: model.RoleShop}
	otherShop := &model.Shop{Name: "Other", Status: model.ShopStatusApproved}
	st.CreateShopWithOwner(otherOwner, otherShop)
	st.CreateOrder(&model.Order{ShopID: otherShop.ID, Total: decimal.NewFromInt(99), Status: model.OrderStatusCompleted})

	assert.True(t, svc.ShopRevenue(shop.ID).Equal(decimal.NewFromInt(940)))
	assert.True(t, svc.TotalRevenue().Equal(decimal.NewFromInt(1039)))
}
