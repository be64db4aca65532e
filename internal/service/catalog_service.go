package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"spice-palace/internal/model"
	"spice-palace/internal/repository"

	"github.com/rs/zerolog"
)

// SortOrder selects how browse results are ordered.
type SortOrder string

const (
	SortRelevance SortOrder = "relevance"
	SortPriceAsc  SortOrder = "priceAsc"
	SortPriceDesc SortOrder = "priceDesc"
	SortPrepAsc   SortOrder = "prepAsc"
	SortPrepDesc  SortOrder = "prepDesc"
)

// ParseSortOrder converts a request string into a SortOrder. Empty input means
// relevance; anything else unrecognised is rejected.
func ParseSortOrder(s string) (SortOrder, bool) {
	if s == "" {
		return SortRelevance, true
	}
	switch SortOrder(s) {
	case SortRelevance, SortPriceAsc, SortPriceDesc, SortPrepAsc, SortPrepDesc:
		return SortOrder(s), true
	}
	return "", false
}

// AllCategories is the wildcard category matching every item.
const AllCategories = "All"

// Query is one browse request over the catalogue.
type Query struct {
	Search   string
	Category string
	Sort     SortOrder
}

// catalogService implements CatalogService.
type catalogService struct {
	menuRepo repository.MenuRepository
	logger   zerolog.Logger
}

// NewCatalogService creates a new catalogue query service.
func NewCatalogService(menuRepo repository.MenuRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "catalog").Logger(),
	}
}

// Browse filters and sorts the catalogue. The filter is a case-insensitive
// substring match on the name combined with an exact category match ("All"
// matches everything). Sorting is stable: ties keep catalogue order.
func (s *catalogService) Browse(ctx context.Context, query Query) ([]model.MenuItem, error) {
	items, err := s.menuRepo.All(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load catalogue")
		return nil, fmt.Errorf("failed to browse menu: %w", err)
	}

	search := strings.ToLower(query.Search)
	filtered := make([]model.MenuItem, 0, len(items))
	for _, item := range items {
		if search != "" && !strings.Contains(strings.ToLower(item.Name), search) {
			continue
		}
		if query.Category != "" && query.Category != AllCategories && item.Category != query.Category {
			continue
		}
		filtered = append(filtered, item)
	}

	switch query.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price < filtered[j].Price })
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].Price > filtered[j].Price })
	case SortPrepAsc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PrepTime < filtered[j].PrepTime })
	case SortPrepDesc:
		sort.SliceStable(filtered, func(i, j int) bool { return filtered[i].PrepTime > filtered[j].PrepTime })
	default:
		// relevance keeps catalogue order
	}

	s.logger.Debug().
		Str("search", query.Search).
		Str("category", query.Category).
		Str("sort", string(query.Sort)).
		Int("count", len(filtered)).
		Msg("catalogue browsed")
	return filtered, nil
}

// Categories returns the distinct category labels prefixed with "All".
func (s *catalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.menuRepo.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return append([]string{AllCategories}, categories...), nil
}

// GetByID retrieves a single menu item.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if id == "" {
		return nil, model.ErrMenuItemNotFound
	}
	return s.menuRepo.GetByID(ctx, id)
}

// SetAvailability flips whether an item can be ordered and returns the updated
// item. Carts already holding the item keep their lines; checkout and further
// adds see the new state.
func (s *catalogService) SetAvailability(ctx context.Context, id string, available bool) (*model.MenuItem, error) {
	if err := s.menuRepo.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("item_id", id).
		Bool("available", available).
		Msg("item availability changed")
	return s.menuRepo.GetByID(ctx, id)
}
