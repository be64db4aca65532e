package repository

import (
	"context"
	"sync"

	"spice-palace/internal/model"

	"github.com/rs/zerolog"
)

// menuRepository implements MenuRepository over an in-memory catalogue. The
// catalogue is fixed for the session apart from availability flips and review
// appends, all guarded by a single RWMutex.
type menuRepository struct {
	mu     sync.RWMutex
	items  []*model.MenuItem
	byID   map[string]*model.MenuItem
	logger zerolog.Logger
}

// NewMenuRepository creates a menu repository seeded with the given catalogue.
func NewMenuRepository(items []model.MenuItem, logger zerolog.Logger) MenuRepository {
	repo := &menuRepository{
		byID:   make(map[string]*model.MenuItem, len(items)),
		logger: logger.With().Str("repository", "menu").Logger(),
	}
	for i := range items {
		item := items[i]
		repo.items = append(repo.items, &item)
		repo.byID[item.ID] = &item
	}
	return repo
}

// All retrieves every menu item in catalogue order.
func (r *menuRepository) All(ctx context.Context) ([]model.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, cloneItem(item))
	}
	return items, nil
}

// GetByID retrieves a single menu item by its ID.
func (r *menuRepository) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.byID[id]
	if !ok {
		return nil, model.ErrMenuItemNotFound
	}
	clone := cloneItem(item)
	return &clone, nil
}

// Categories returns the distinct category labels in first-seen order.
func (r *menuRepository) Categories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	var categories []string
	for _, item := range r.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories, nil
}

// AddReview appends a review to the item's collection.
func (r *menuRepository) AddReview(ctx context.Context, itemID string, review model.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[itemID]
	if !ok {
		return model.ErrMenuItemNotFound
	}
	item.Reviews = append(item.Reviews, review)

	r.logger.Debug().
		Str("item_id", itemID).
		Int("rating", review.Rating).
		Int("review_count", len(item.Reviews)).
		Msg("review appended")
	return nil
}

// SetAvailability flips an item's availability flag.
func (r *menuRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.byID[id]
	if !ok {
		return model.ErrMenuItemNotFound
	}
	item.Available = available
	return nil
}

// cloneItem copies an item with its review slice so callers never alias
// repository state.
func cloneItem(item *model.MenuItem) model.MenuItem {
	clone := *item
	clone.Reviews = make([]model.Review, len(item.Reviews))
	copy(clone.Reviews, item.Reviews)
	return clone
}
