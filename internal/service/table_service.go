package service

import (
	"context"
	"fmt"

	"spice-palace/internal/model"
	"spice-palace/internal/repository"

	"github.com/rs/zerolog"
)

// tableService implements TableService: read-only registry views for the
// staff dashboard. All occupancy mutations go through the order lifecycle.
type tableService struct {
	tableRepo repository.TableRepository
	logger    zerolog.Logger
}

// NewTableService creates a new table dashboard service.
func NewTableService(tableRepo repository.TableRepository, logger zerolog.Logger) TableService {
	return &tableService{
		tableRepo: tableRepo,
		logger:    logger.With().Str("service", "table").Logger(),
	}
}

// List returns all tables, optionally filtered by occupancy status.
func (s *tableService) List(ctx context.Context, status *model.TableStatus) ([]model.Table, error) {
	if status != nil {
		tables, err := s.tableRepo.FilterByStatus(ctx, *status)
		if err != nil {
			return nil, fmt.Errorf("failed to filter tables: %w", err)
		}
		return tables, nil
	}

	tables, err := s.tableRepo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// Summary returns the dashboard headline counts.
func (s *tableService) Summary(ctx context.Context) (model.TableSummary, error) {
	tables, err := s.tableRepo.All(ctx)
	if err != nil {
		return model.TableSummary{}, fmt.Errorf("failed to summarise tables: %w", err)
	}

	var summary model.TableSummary
	for _, table := range tables {
		switch table.Status {
		case model.TableAvailable:
			summary.Available++
		case model.TableOccupied:
			summary.Occupied++
		case model.TableReserved:
			summary.Reserved++
		}
		if table.CurrentOrder != nil {
			summary.ActiveOrders++
		}
	}
	return summary, nil
}
