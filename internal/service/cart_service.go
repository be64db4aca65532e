package service

import (
	"context"
	"sync"

	"spice-palace/internal/model"
	"spice-palace/internal/repository"

	"github.com/rs/zerolog"
)

// cartService implements CartService with one cart per diner session, all
// guarded by a single mutex so each mutation runs to completion.
type cartService struct {
	mu       sync.Mutex
	carts    map[string]*model.Cart
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(menuRepo repository.MenuRepository, logger zerolog.Logger) CartService {
	return &cartService{
		carts:    make(map[string]*model.Cart),
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// cartFor returns the diner's cart, creating an empty one on first use.
// Callers must hold the mutex.
func (s *cartService) cartFor(username string) *model.Cart {
	cart, ok := s.carts[username]
	if !ok {
		cart = model.NewCart()
		s.carts[username] = cart
	}
	return cart
}

// Get returns a snapshot of the diner's cart.
func (s *cartService) Get(ctx context.Context, username string) (model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartFor(username).Snapshot(), nil
}

// Add puts one unit of a menu item into the diner's cart, snapshotting the
// item's current name and price on the first unit. Unavailable items leave
// the cart unchanged.
func (s *cartService) Add(ctx context.Context, username, foodID string) (model.CartSnapshot, error) {
	item, err := s.menuRepo.GetByID(ctx, foodID)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(username)
	if err := cart.Add(*item); err != nil {
		s.logger.Debug().
			Str("username", username).
			Str("food_id", foodID).
			Msg("unavailable item rejected")
		return cart.Snapshot(), err
	}
	return cart.Snapshot(), nil
}

// SetQuantity sets the quantity of an existing line. Zero removes the line;
// negative quantities are rejected with no state change.
func (s *cartService) SetQuantity(ctx context.Context, username, foodID string, quantity int) (model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(username)
	if err := cart.SetQuantity(foodID, quantity); err != nil {
		return cart.Snapshot(), err
	}
	return cart.Snapshot(), nil
}

// Remove deletes a line if present.
func (s *cartService) Remove(ctx context.Context, username, foodID string) (model.CartSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.cartFor(username)
	cart.Remove(foodID)
	return cart.Snapshot(), nil
}

// Lines returns the cart lines for checkout snapshotting.
func (s *cartService) Lines(ctx context.Context, username string) []model.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartFor(username).Lines()
}

// Clear empties the diner's cart.
func (s *cartService) Clear(ctx context.Context, username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartFor(username).Clear()
}
