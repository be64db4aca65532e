package repository

import (
	"context"
	"sync"

	"spice-palace/internal/model"

	"github.com/rs/zerolog"
)

// tableRepository implements TableRepository over the fixed in-memory table
// plan. Every mutation runs as one unit under the registry mutex so the table
// invariant (order attached iff occupied) is never observable violated.
type tableRepository struct {
	mu       sync.RWMutex
	tables   []*model.Table
	byID     map[string]*model.Table
	byNumber map[int]*model.Table
	logger   zerolog.Logger
}

// NewTableRepository creates a table registry seeded with the given plan.
func NewTableRepository(tables []model.Table, logger zerolog.Logger) TableRepository {
	repo := &tableRepository{
		byID:     make(map[string]*model.Table, len(tables)),
		byNumber: make(map[int]*model.Table, len(tables)),
		logger:   logger.With().Str("repository", "table").Logger(),
	}
	for i := range tables {
		table := tables[i]
		repo.tables = append(repo.tables, &table)
		repo.byID[table.ID] = &table
		repo.byNumber[table.Number] = &table
	}
	return repo
}

// All retrieves every table.
func (r *tableRepository) All(ctx context.Context) ([]model.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tables := make([]model.Table, 0, len(r.tables))
	for _, table := range r.tables {
		tables = append(tables, table.Clone())
	}
	return tables, nil
}

// FindByID retrieves a table by its ID.
func (r *tableRepository) FindByID(ctx context.Context, id string) (*model.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.byID[id]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	clone := table.Clone()
	return &clone, nil
}

// FindByNumber retrieves a table by its customer-facing number.
func (r *tableRepository) FindByNumber(ctx context.Context, number int) (*model.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	table, ok := r.byNumber[number]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	clone := table.Clone()
	return &clone, nil
}

// FilterByStatus retrieves every table with the given occupancy status.
func (r *tableRepository) FilterByStatus(ctx context.Context, status model.TableStatus) ([]model.Table, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var tables []model.Table
	for _, table := range r.tables {
		if table.Status == status {
			tables = append(tables, table.Clone())
		}
	}
	return tables, nil
}

// AttachOrder attaches the order to the table with the given number and flips
// the table to occupied in one step.
func (r *tableRepository) AttachOrder(ctx context.Context, tableNumber int, order *model.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.byNumber[tableNumber]
	if !ok {
		return model.ErrTableNotFound
	}
	table.Status = model.TableOccupied
	table.CurrentOrder = order.Clone()

	r.logger.Info().
		Str("table_id", table.ID).
		Str("order_id", order.ID).
		Msg("order attached, table occupied")
	return nil
}

// AdvanceOrder moves the table's active order to the next status. Only the
// stage immediately following the current one is accepted. Moving to served
// detaches the order and frees the table within the same locked step, so an
// order is never visible as served while its table is still occupied.
func (r *tableRepository) AdvanceOrder(ctx context.Context, tableID string, next model.OrderStatus) (*model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	table, ok := r.byID[tableID]
	if !ok {
		return nil, model.ErrTableNotFound
	}
	if table.CurrentOrder == nil {
		return nil, model.ErrNoActiveOrder
	}
	if !table.CurrentOrder.Status.CanAdvanceTo(next) {
		return nil, model.ErrInvalidTransition
	}

	table.CurrentOrder.Status = next
	advanced := table.CurrentOrder.Clone()

	if next.Terminal() {
		table.CurrentOrder = nil
		table.Status = model.TableAvailable
	}

	r.logger.Info().
		Str("table_id", tableID).
		Str("order_id", advanced.ID).
		Str("status", string(next)).
		Msg("order advanced")
	return advanced, nil
}
