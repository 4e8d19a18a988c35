package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/nexuslabs/marketplace-api/internal/model"
)

// ErrNotFound is returned by mutation primitives when the referenced id is
// absent from the collection.
var ErrNotFound = errors.New("entity not found")

// Store owns the four entity collections. All access goes through its typed
// methods; there is no ambient global state. Mutations run fully inside the
// write lock and are all-or-nothing: an update closure that returns an error
// leaves the collection untouched. Reads return copies, so a caller never
// observes an entity mid-transition. Insertion order is preserved per
// collection.
type Store struct {
	mu sync.RWMutex

	users    []*model.User
	userByID map[uuid.UUID]*model.User

	shops    []*model.Shop
	shopByID map[uuid.UUID]*model.Shop

	products    []*model.Product
	productByID map[uuid.UUID]*model.Product

	orders    []*model.Order
	orderByID map[uuid.UUID]*model.Order
}

func New() *Store {
	return &Store{
		userByID:    make(map[uuid.UUID]*model.User),
		shopByID:    make(map[uuid.UUID]*model.Shop),
		productByID: make(map[uuid.UUID]*model.Product),
		orderByID:   make(map[uuid.UUID]*model.Order),
	}
}

// --- Users ---

func (s *Store) CreateUser(user *model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createUserLocked(user)
}

func (s *Store) createUserLocked(user *model.User) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	stored := *user
	s.users = append(s.users, &stored)
	s.userByID[stored.ID] = &stored
}

func (s *Store) UserByID(id uuid.UUID) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.userByID[id]
	if !ok {
		return nil, false
	}
	copied := *u
	return &copied, true
}

// UserByEmail matches by case-insensitive equality.
func (s *Store) UserByEmail(email string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			copied := *u
			return &copied, true
		}
	}
	return nil, false
}

// --- Shops ---

func (s *Store) CreateShop(shop *model.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createShopLocked(shop)
}

func (s *Store) createShopLocked(shop *model.Shop) {
	if shop.ID == uuid.Nil {
		shop.ID = uuid.New()
	}
	if shop.CreatedAt.IsZero() {
		shop.CreatedAt = time.Now()
	}
	stored := *shop
	s.shops = append(s.shops, &stored)
	s.shopByID[stored.ID] = &stored
}

// CreateShopWithOwner inserts a new owner User and its Shop as a single
// unit-of-work, wiring the ownership reference before either is visible.
func (s *Store) CreateShopWithOwner(owner *model.User, shop *model.Shop) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createUserLocked(owner)
	shop.OwnerID = owner.ID
	s.createShopLocked(shop)
}

func (s *Store) ShopByID(id uuid.UUID) (*model.Shop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sh, ok := s.shopByID[id]
	if !ok {
		return nil, false
	}
	copied := *sh
	return &copied, true
}

// ShopByOwner returns the shop owned by the given user, if any. Ownership is
// 1:1 by convention, so the first match wins.
func (s *Store) ShopByOwner(ownerID uuid.UUID) (*model.Shop, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, sh := range s.shops {
		if sh.OwnerID == ownerID {
			copied := *sh
			return &copied, true
		}
	}
	return nil, false
}

func (s *Store) Shops() []model.Shop {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Shop, 0, len(s.shops))
	for _, sh := range s.shops {
		out = append(out, *sh)
	}
	return out
}

// UpdateShop applies fn to a copy of the shop and installs the result only if
// fn returns nil.
func (s *Store) UpdateShop(id uuid.UUID, fn func(*model.Shop) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shopByID[id]
	if !ok {
		return ErrNotFound
	}
	updated := *sh
	if err := fn(&updated); err != nil {
		return err
	}
	updated.ID = sh.ID
	*sh = updated
	return nil
}

// UpdateOwnerProfile mutates a shop and its owning user under one lock
// acquisition, so a reader never sees only half of a profile edit.
func (s *Store) UpdateOwnerProfile(shopID uuid.UUID, fn func(*model.User, *model.Shop) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shopByID[shopID]
	if !ok {
		return ErrNotFound
	}
	owner, ok := s.userByID[sh.OwnerID]
	if !ok {
		return ErrNotFound
	}
	updatedUser := *owner
	updatedShop := *sh
	if err := fn(&updatedUser, &updatedShop); err != nil {
		return err
	}
	updatedUser.ID = owner.ID
	updatedShop.ID = sh.ID
	updatedShop.OwnerID = owner.ID
	*owner = updatedUser
	*sh = updatedShop
	return nil
}

// --- Products ---

func (s *Store) CreateProduct(p *model.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	stored := *p
	s.products = append(s.products, &stored)
	s.productByID[stored.ID] = &stored
}

func (s *Store) ProductByID(id uuid.UUID) (*model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.productByID[id]
	if !ok {
		return nil, false
	}
	copied := *p
	return &copied, true
}

func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, *p)
	}
	return out
}

func (s *Store) UpdateProduct(id uuid.UUID, fn func(*model.Product) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.productByID[id]
	if !ok {
		return ErrNotFound
	}
	updated := *p
	if err := fn(&updated); err != nil {
		return err
	}
	updated.ID = p.ID
	updated.UpdatedAt = time.Now()
	*p = updated
	return nil
}

func (s *Store) DeleteProduct(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.productByID[id]; !ok {
		return ErrNotFound
	}
	delete(s.productByID, id)
	for i, p := range s.products {
		if p.ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			break
		}
	}
	return nil
}

// --- Orders ---

func (s *Store) CreateOrder(o *model.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now()
	}
	stored := *o
	stored.Items = cloneItems(o.Items)
	s.orders = append(s.orders, &stored)
	s.orderByID[stored.ID] = &stored
}

func (s *Store) OrderByID(id uuid.UUID) (*model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orderByID[id]
	if !ok {
		return nil, false
	}
	copied := copyOrder(o)
	return &copied, true
}

func (s *Store) Orders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, copyOrder(o))
	}
	return out
}

func (s *Store) UpdateOrder(id uuid.UUID, fn func(*model.Order) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orderByID[id]
	if !ok {
		return ErrNotFound
	}
	updated := copyOrder(o)
	if err := fn(&updated); err != nil {
		return err
	}
	updated.ID = o.ID
	*o = updated
	return nil
}

// DeleteOrder removes the order outright; declined orders leave no record.
func (s *Store) DeleteOrder(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orderByID[id]; !ok {
		return ErrNotFound
	}
	delete(s.orderByID, id)
	for i, o := range s.orders {
		if o.ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			break
		}
	}
	return nil
}

func copyOrder(o *model.Order) model.Order {
	copied := *o
	copied.Items = cloneItems(o.Items)
	if o.DeliveryPartner != nil {
		dp := *o.DeliveryPartner
		copied.DeliveryPartner = &dp
	}
	return copied
}

func cloneItems(items []model.OrderItem) []model.OrderItem {
	if items == nil {
		return nil
	}
	out := make([]model.OrderItem, len(items))
	copy(out, items)
	return out
}
