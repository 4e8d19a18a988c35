package service

import (
	"errors"

	"github.com/google/uuid"

	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrNameRequired    = errors.New("product name is required")
	ErrMRPRequired     = errors.New("product MRP is required")
)

// ProductService owns catalog mutations. The selling price is always derived
// server-side from MRP and discount; clients never set it.
type ProductService struct {
	store *store.Store
}

func NewProductService(st *store.Store) *ProductService {
	return &ProductService{store: st}
}

func (s *ProductService) Add(shopID uuid.UUID, req dto.ProductRequest) (*model.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	if _, ok := s.store.ShopByID(shopID); !ok {
		return nil, ErrShopNotFound
	}

	product := &model.Product{
		ShopID:      shopID,
		Name:        req.Name,
		Description: req.Description,
		MRP:         req.MRP,
		Discount:    req.Discount,
		Price:       model.SellingPrice(req.MRP, req.Discount),
		Category:    req.Category,
		Image:       req.Image,
		IsEnabled:   req.IsEnabled,
		Stock:       req.Stock,
		Attributes:  req.Attributes,
	}
	s.store.CreateProduct(product)
	return product, nil
}

func (s *ProductService) Update(id uuid.UUID, req dto.ProductRequest) (*model.Product, error) {
	if err := validateProduct(req); err != nil {
		return nil, err
	}
	err := s.store.UpdateProduct(id, func(p *model.Product) error {
		p.Name = req.Name
		p.Description = req.Description
		p.MRP = req.MRP
		p.Discount = req.Discount
		p.Price = model.SellingPrice(req.MRP, req.Discount)
		p.Category = req.Category
		p.Image = req.Image
		p.IsEnabled = req.IsEnabled
		p.Stock = req.Stock
		p.Attributes = req.Attributes
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	product, _ := s.store.ProductByID(id)
	return product, nil
}

func (s *ProductService) SetEnabled(id uuid.UUID, enabled bool) error {
	err := s.store.UpdateProduct(id, func(p *model.Product) error {
		p.IsEnabled = enabled
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *ProductService) Delete(id uuid.UUID) error {
	err := s.store.DeleteProduct(id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *ProductService) GetByID(id uuid.UUID) (*model.Product, error) {
	product, ok := s.store.ProductByID(id)
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func validateProduct(req dto.ProductRequest) error {
	if req.Name == "" {
		return ErrNameRequired
	}
	if !req.MRP.IsPositive() {
		return ErrMRPRequired
	}
	return nil
}
