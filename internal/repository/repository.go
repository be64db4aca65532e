package repository

import (
	"context"

	"spice-palace/internal/model"
)

// MenuRepository defines the interface for catalogue data access.
type MenuRepository interface {
	// All retrieves every menu item in catalogue order.
	All(ctx context.Context) ([]model.MenuItem, error)

	// GetByID retrieves a single menu item by its ID.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// Categories returns the distinct category labels in first-seen order.
	Categories(ctx context.Context) ([]string, error)

	// AddReview appends a review to the item's collection.
	AddReview(ctx context.Context, itemID string, review model.Review) error

	// SetAvailability flips an item's availability flag.
	SetAvailability(ctx context.Context, id string, available bool) error
}

// TableRepository defines the interface for the table registry. AttachOrder
// and AdvanceOrder are the only occupancy mutators and are invoked exclusively
// by the order lifecycle; this indirection enforces the table invariant.
type TableRepository interface {
	// All retrieves every table.
	All(ctx context.Context) ([]model.Table, error)

	// FindByID retrieves a table by its ID.
	FindByID(ctx context.Context, id string) (*model.Table, error)

	// FindByNumber retrieves a table by its customer-facing number.
	FindByNumber(ctx context.Context, number int) (*model.Table, error)

	// FilterByStatus retrieves every table with the given occupancy status.
	FilterByStatus(ctx context.Context, status model.TableStatus) ([]model.Table, error)

	// AttachOrder attaches the order to the table with the given number and
	// flips the table to occupied in one step.
	AttachOrder(ctx context.Context, tableNumber int, order *model.Order) error

	// AdvanceOrder moves the table's active order to the next status. Moving
	// to served also detaches the order and frees the table in the same step.
	AdvanceOrder(ctx context.Context, tableID string, next model.OrderStatus) (*model.Order, error)
}
