package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nexuslabs/marketplace-api/internal/model"
	"github.com/nexuslabs/marketplace-api/internal/store"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrNoShopProfile       = errors.New("no shop profile found for this owner")
	ErrVerificationPending = errors.New("shop verification pending")
	ErrShopBlocked         = errors.New("shop is blocked")
)

// RejectedError carries the rejection reason stored on the shop so the
// presentation layer can surface it.
type RejectedError struct {
	Reason string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("shop application rejected: %s", e.Reason)
}

// Session is the authorization binding produced by EstablishSession. It is a
// closed variant: AdminSession or ShopSession. Callers dispatch with a type
// switch instead of re-checking role strings.
type Session interface {
	SessionUser() *model.User
	session()
}

type AdminSession struct {
	User *model.User
}

func (s *AdminSession) SessionUser() *model.User { return s.User }
func (s *AdminSession) session()                 {}

type ShopSession struct {
	User *model.User
	Shop *model.Shop
}

func (s *ShopSession) SessionUser() *model.User { return s.User }
func (s *ShopSession) session()                 {}

type AuthService struct {
	store     *store.Store
	jwtSecret []byte
	jwtExpiry time.Duration
}

func NewAuthService(st *store.Store, jwtSecret string, jwtExpiry time.Duration) *AuthService {
	return &AuthService{store: st, jwtSecret: []byte(jwtSecret), jwtExpiry: jwtExpiry}
}

// Authenticate resolves a login credential to a user by case-insensitive
// email equality. No credential secret is checked; hardening that is the
// hosting system's concern.
func (s *AuthService) Authenticate(email string) (*model.User, error) {
	user, ok := s.store.UserByEmail(email)
	if !ok {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// EstablishSession binds a user to a session. Admins are always admitted.
// A shop owner is admitted only while their shop is APPROVED; every other
// admission state maps to a distinct failure.
func (s *AuthService) EstablishSession(user *model.User) (Session, error) {
	if user.Role == model.RoleAdmin {
		return &AdminSession{User: user}, nil
	}

	shop, ok := s.store.ShopByOwner(user.ID)
	if !ok {
		return nil, ErrNoShopProfile
	}

	switch shop.Status {
	case model.ShopStatusApproved:
		return &ShopSession{User: user, Shop: shop}, nil
	case model.ShopStatusPending:
		return nil, ErrVerificationPending
	case model.ShopStatusRejected:
		reason := shop.RejectionReason
		if reason == "" {
			reason = model.DefaultRejectionReason
		}
		return nil, &RejectedError{Reason: reason}
	default:
		return nil, ErrShopBlocked
	}
}

// IssueToken mints the bearer token the HTTP layer hands back after login.
// Shop sessions carry the bound shop id so later requests stay scoped to it.
func (s *AuthService) IssueToken(session Session) (string, error) {
	user := session.SessionUser()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": string(user.Role),
		"exp":  time.Now().Add(s.jwtExpiry).Unix(),
		"iat":  time.Now().Unix(),
	}
	if shopSess, ok := session.(*ShopSession); ok {
		claims["shop"] = shopSess.Shop.ID.String()
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
}
