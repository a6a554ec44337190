package services

import (
	"context"
	"errors"
	"fashion-hub/models"
	"fashion-hub/repositories"
	"fmt"
)

// CheckoutNotice is shown to shoppers in place of a real checkout.
const CheckoutNotice = "Checkout functionality coming soon!"

var (
	ErrProductNotFound     = repositories.ErrProductNotFound
	ErrCheckoutUnavailable = errors.New("checkout is not available yet")
)

// CartService is the only path to a session's cart and sidebar state.
type CartService struct {
	productRepo *repositories.ProductRepository
	sessionRepo repositories.SessionRepository
}

func NewCartService(productRepo *repositories.ProductRepository, sessionRepo repositories.SessionRepository) *CartService {
	return &CartService{
		productRepo: productRepo,
		sessionRepo: sessionRepo,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (models.CartView, error) {
	session, err := s.sessionRepo.Get(ctx, sessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return models.NewSession(sessionID, 0).View(), nil
	}
	if err != nil {
		return models.CartView{}, fmt.Errorf("failed to load cart: %w", err)
	}
	return session.View(), nil
}

func (s *CartService) AddToCart(ctx context.Context, sessionID string, productID int) (models.CartView, error) {
	product, err := s.productRepo.GetProductByID(productID)
	if err != nil {
		return models.CartView{}, err
	}
	return s.update(ctx, sessionID, func(session *models.Session) {
		session.Cart.Add(product)
	})
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID, delta int) (models.CartView, error) {
	return s.update(ctx, sessionID, func(session *models.Session) {
		session.Cart.UpdateQuantity(productID, delta)
	})
}

func (s *CartService) RemoveFromCart(ctx context.Context, sessionID string, productID int) (models.CartView, error) {
	return s.update(ctx, sessionID, func(session *models.Session) {
		session.Cart.Remove(productID)
	})
}

func (s *CartService) OpenCart(ctx context.Context, sessionID string) (models.CartView, error) {
	return s.setOpen(ctx, sessionID, true)
}

func (s *CartService) CloseCart(ctx context.Context, sessionID string) (models.CartView, error) {
	return s.setOpen(ctx, sessionID, false)
}

// Checkout is a placeholder: it never touches the cart and always reports
// ErrCheckoutUnavailable.
func (s *CartService) Checkout(ctx context.Context, sessionID string) error {
	return ErrCheckoutUnavailable
}

func (s *CartService) setOpen(ctx context.Context, sessionID string, open bool) (models.CartView, error) {
	return s.update(ctx, sessionID, func(session *models.Session) {
		session.CartOpen = open
	})
}

func (s *CartService) update(ctx context.Context, sessionID string, fn func(*models.Session)) (models.CartView, error) {
	session, err := s.sessionRepo.Update(ctx, sessionID, fn)
	if err != nil {
		return models.CartView{}, fmt.Errorf("failed to update cart: %w", err)
	}
	return session.View(), nil
}
