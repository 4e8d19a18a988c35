package store

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexuslabs/marketplace-api/internal/model"
)

func TestStore_UserByEmail_CaseInsensitive(t *testing.T) {
	st := New()
	st.CreateUser(&model.User{Email: "Owner@Shop.com", Role: model.RoleShop, Name: "suresh"})

	user, ok := st.UserByEmail("owner@shop.com")
	require.True(t, ok)
	assert.Equal(t, "Owner@Shop.com", user.Email)

	_, ok = st.UserByEmail("nobody@shop.com")
	assert.False(t, ok)
}

func TestStore_CreateShopWithOwner(t *testing.T) {
	st := New()
	owner := &model.User{Email: "owner@shop.com", Role: model.RoleShop}
	shop := &model.Shop{Name: "suresh", Status: model.ShopStatusPending}

	st.CreateShopWithOwner(owner, shop)

	require.NotEqual(t, uuid.Nil, owner.ID)
	require.NotEqual(t, uuid.Nil, shop.ID)
	assert.Equal(t, owner.ID, shop.OwnerID)

	found, ok := st.ShopByOwner(owner.ID)
	require.True(t, ok)
	assert.Equal(t, shop.ID, found.ID)
}

func TestStore_Reads_ReturnCopies(t *testing.T) {
	st := New()
	shop := &model.Shop{Name: "suresh", Status: model.ShopStatusPending}
	st.CreateShop(shop)

	got, ok := st.ShopByID(shop.ID)
	require.True(t, ok)
	got.Status = model.ShopStatusApproved

	again, ok := st.ShopByID(shop.ID)
	require.True(t, ok)
	assert.Equal(t, model.ShopStatusPending, again.Status)
}

func TestStore_UpdateShop_AllOrNothing(t *testing.T) {
	st := New()
	shop := &model.Shop{Name: "suresh", Status: model.ShopStatusPending}
	st.CreateShop(shop)

	boom := errors.New("boom")
	err := st.UpdateShop(shop.ID, func(sh *model.Shop) error {
		sh.Status = model.ShopStatusApproved
		sh.Name = "changed"
		return boom
	})
	require.ErrorIs(t, err, boom)

	got, ok := st.ShopByID(shop.ID)
	require.True(t, ok)
	assert.Equal(t, model.ShopStatusPending, got.Status)
	assert.Equal(t, "suresh", got.Name)
}

func TestStore_UpdateShop_NotFound(t *testing.T) {
	st := New()
	err := st.UpdateShop(uuid.New(), func(*model.Shop) error { return nil })
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_UpdateOwnerProfile_Atomic(t *testing.T) {
	st := New()
	owner := &model.User{Email: "owner@shop.com", Role: model.RoleShop, Name: "suresh"}
	shop := &model.Shop{Name: "suresh", Status: model.ShopStatusApproved}
	st.CreateShopWithOwner(owner, shop)

	err := st.UpdateOwnerProfile(shop.ID, func(u *model.User, sh *model.Shop) error {
		u.Name = "Suresh Kumar"
		sh.Name = "Suresh Kitchen"
		sh.Contact = "9000000000"
		return nil
	})
	require.NoError(t, err)

	user, ok := st.UserByID(owner.ID)
	require.True(t, ok)
	assert.Equal(t, "Suresh Kumar", user.Name)

	got, ok := st.ShopByID(shop.ID)
	require.True(t, ok)
	assert.Equal(t, "Suresh Kitchen", got.Name)
	assert.Equal(t, "9000000000", got.Contact)
}

func TestStore_UpdateOwnerProfile_FailureTouchesNeither(t *testing.T) {
	st := New()
	owner := &model.User{Email: "owner@shop.com", Role: model.RoleShop, Name: "suresh"}
	shop := &model.Shop{Name: "suresh", Status: model.ShopStatusApproved}
	st.CreateShopWithOwner(owner, shop)

	boom := errors.New("boom")
	err := st.UpdateOwnerProfile(shop.ID, func(u *model.User, sh *model.Shop) error {
		u.Name = "changed"
		sh.Name = "changed"
		return boom
	})
	require.ErrorIs(t, err, boom)

	user, _ := st.UserByID(owner.ID)
	assert.Equal(t, "suresh", user.Name)
	got, _ := st.ShopByID(shop.ID)
	assert.Equal(t, "suresh", got.Name)
}

func TestStore_Orders_InsertionOrder(t *testing.T) {
	st := New()
	shopID := uuid.New()
	names := []string{"Rahul", "Priya", "Amit"}
	for _, name := range names {
		st.CreateOrder(&model.Order{
			ShopID:       shopID,
			CustomerName: name,
			Items:        []model.OrderItem{{Name: "x", Quantity: 1, Price: decimal.NewFromInt(10)}},
			Total:        decimal.NewFromInt(10),
			Status:       model.OrderStatusReceived,
		})
	}

	orders := st.Orders()
	require.Len(t, orders, 3)
	for i, name := range names {
		assert.Equal(t, name, orders[i].CustomerName)
	}
}

func TestStore_DeleteOrder(t *testing.T) {
	st := New()
	order := &model.Order{CustomerName: "Rahul", Status: model.OrderStatusReceived}
	st.CreateOrder(order)

	require.NoError(t, st.DeleteOrder(order.ID))
	_, ok := st.OrderByID(order.ID)
	assert.False(t, ok)
	assert.Empty(t, st.Orders())

	assert.ErrorIs(t, st.DeleteOrder(order.ID), ErrNotFound)
}

func TestStore_DeleteProduct(t *testing.T) {
	st := New()
	p := &model.Product{Name: "Butter Chicken"}
	st.CreateProduct(p)

	require.NoError(t, st.DeleteProduct(p.ID))
	assert.Empty(t, st.Products())
	assert.ErrorIs(t, st.DeleteProduct(p.ID), ErrNotFound)
}

func TestStore_Seed(t *testing.T) {
	st := New()
	st.Seed("admin@nexus.com", "Admin User")

	admin, ok := st.UserByEmail("admin@nexus.com")
	require.True(t, ok)
	assert.Equal(t, model.RoleAdmin, admin.Role)

	shops := st.Shops()
	require.Len(t, shops, 2)
	assert.Equal(t, model.ShopStatusApproved, shops[0].Status)
	assert.Equal(t, model.ShopStatusPending, shops[1].Status)

	orders := st.Orders()
	require.Len(t, orders, 3)
	assert.True(t, orders[0].Total.Equal(decimal.NewFromInt(700)))
	assert.True(t, orders[1].Total.Equal(decimal.NewFromInt(240)))
	assert.True(t, orders[2].Total.Equal(decimal.NewFromInt(510)))

	products := st.Products()
	require.Len(t, products, 2)
	for _, p := range products {
		assert.Equal(t, shops[0].ID, p.ShopID)
	}
}
