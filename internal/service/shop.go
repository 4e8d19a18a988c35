package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/nexuslabs/marketplace-api/internal/dto"
	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

var (
	ErrShopNotFound     = errors.New("shop not found")
	ErrEmailTaken       = errors.New("email already registered")
	ErrInvalidVerdict   = errors.New("verdict must be APPROVED or REJECTED")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
)

// ShopService owns the approval state machine: PENDING -> APPROVED|REJECTED,
// plus the orthogonal online toggle and the owner-facing profile operations.
type ShopService struct {
	store *store.Store
}

func NewShopService(st *store.Store) *ShopService {
	return &ShopService{store: st}
}

// Register files a new shop application: a fresh SHOP user and a PENDING shop
// created as one unit-of-work. Applications are never auto-approved.
// Geocoding is out of scope, so coordinates are always zero.
func (s *ShopService) Register(req dto.RegisterShopRequest) (*model.User, *model.Shop, error) {
	if _, exists := s.store.UserByEmail(req.Email); exists {
		return nil, nil, ErrEmailTaken
	}

	owner := &model.User{
		Email: req.Email,
		Role:  model.RoleShop,
		Name:  req.OwnerName,
	}
	shop := &model.Shop{
		Name:     req.Name,
		Category: req.Category,
		Contact:  req.Contact,
		Location: model.Location{Address: req.Address},
		Timing:   model.Timing{Open: req.OpenTime, Close: req.CloseTime},
		Status:   model.ShopStatusPending,
		IsOnline: false,
	}
	s.store.CreateShopWithOwner(owner, shop)
	return owner, shop, nil
}

// Decide records the admin verdict on an application. Re-deciding an already
// decided shop overwrites the previous verdict; there is deliberately no
// guard against that.
func (s *ShopService) Decide(shopID uuid.UUID, verdict model.ShopStatus, reason string) error {
	if verdict != model.ShopStatusApproved && verdict != model.ShopStatusRejected {
		return ErrInvalidVerdict
	}
	err := s.store.UpdateShop(shopID, func(shop *model.Shop) error {
		shop.Status = verdict
		if verdict == model.ShopStatusRejected {
			if reason == "" {
				reason = model.DefaultRejectionReason
			}
			shop.RejectionReason = reason
		}
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrShopNotFound
	}
	return err
}

// ToggleOnline flips the shop's online bit. The toggle is independent of
// approval status: admins may force any shop on or off.
func (s *ShopService) ToggleOnline(shopID uuid.UUID) error {
	err := s.store.UpdateShop(shopID, func(shop *model.Shop) error {
		shop.IsOnline = !shop.IsOnline
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrShopNotFound
	}
	return err
}

func (s *ShopService) GetByID(shopID uuid.UUID) (*model.Shop, error) {
	shop, ok := s.store.ShopByID(shopID)
	if !ok {
		return nil, ErrShopNotFound
	}
	return shop, nil
}

// UpdateProfile edits the owner's name together with the shop's details as a
// single atomic unit, so no reader sees the user renamed but the shop not.
func (s *ShopService) UpdateProfile(shopID uuid.UUID, req dto.UpdateProfileRequest) error {
	err := s.store.UpdateOwnerProfile(shopID, func(owner *model.User, shop *model.Shop) error {
		owner.Name = req.OwnerName
		shop.Name = req.ShopName
		shop.Contact = req.Contact
		shop.Category = req.Category
		shop.Location.Address = req.Address
		shop.Timing.Open = req.OpenTime
		shop.Timing.Close = req.CloseTime
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return ErrShopNotFound
	}
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}

// ChangePassword validates the credential change request. Nothing is stored:
// real credential handling lives outside this system.
func (s *ShopService) ChangePassword(newPassword, confirmPassword string) error {
	if newPassword != confirmPassword {
		return ErrPasswordMismatch
	}
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}
	return nil
}
