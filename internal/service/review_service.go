package service

import (
	"context"
	"time"

	"spice-palace/internal/model"
	"spice-palace/internal/repository"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService. Reviews are an explicit command
// against the owning menu item, never a direct collection mutation, which
// keeps the append-only invariant enforceable in one place.
type reviewService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewReviewService creates a new review aggregation service.
func NewReviewService(menuRepo repository.MenuRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "review").Logger(),
	}
}

// Add appends a review for the item. Out-of-range ratings are clamped into
// [1,5] rather than rejected.
func (s *reviewService) Add(ctx context.Context, itemID, author string, rating int, comment string) error {
	review := model.Review{
		Author:    author,
		Rating:    model.ClampRating(rating),
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	if err := s.menuRepo.AddReview(ctx, itemID, review); err != nil {
		s.logger.Warn().Str("item_id", itemID).Err(err).Msg("review rejected")
		return err
	}

	s.logger.Info().
		Str("item_id", itemID).
		Str("author", author).
		Int("rating", review.Rating).
		Msg("review added")
	return nil
}

// List returns the item's reviews with their aggregate.
func (s *reviewService) List(ctx context.Context, itemID string) ([]model.Review, model.RatingSummary, error) {
	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, model.RatingSummary{}, err
	}
	return item.Reviews, model.Summarise(item.Reviews), nil
}

// Summary returns the running average and count for the item. An item with no
// reviews has average 0 and count 0; that is a defined value, not an error.
func (s *reviewService) Summary(ctx context.Context, itemID string) (model.RatingSummary, error) {
	item, err := s.menuRepo.GetByID(ctx, itemID)
	if err != nil {
		return model.RatingSummary{}, err
	}
	return model.Summarise(item.Reviews), nil
}
