package service

import (
	"context"

	"spice-palace/internal/model"
)

// AuthService defines login and session resolution against the static
// account list.
type AuthService interface {
	// Login checks the credentials and issues a session token.
	Login(ctx context.Context, username, password string) (*model.Session, error)

	// Logout revokes a session token.
	Logout(ctx context.Context, token string)

	// Resolve returns the user behind a session token.
	Resolve(token string) (*model.User, bool)
}

// CatalogService defines queries over the menu plus the staff availability
// toggle. Name, price and category never change within a session.
type CatalogService interface {
	// Browse filters and sorts the catalogue. Empty results are a valid,
	// non-nil slice.
	Browse(ctx context.Context, query Query) ([]model.MenuItem, error)

	// Categories returns the distinct category labels plus the "All" sentinel.
	Categories(ctx context.Context) ([]string, error)

	// GetByID retrieves a single menu item.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)

	// SetAvailability flips whether an item can be ordered.
	SetAvailability(ctx context.Context, id string, available bool) (*model.MenuItem, error)
}

// CartService defines mutations on per-diner carts.
type CartService interface {
	// Get returns a snapshot of the diner's cart.
	Get(ctx context.Context, username string) (model.CartSnapshot, error)

	// Add puts one unit of a menu item into the diner's cart.
	Add(ctx context.Context, username, foodID string) (model.CartSnapshot, error)

	// SetQuantity sets the quantity of an existing line; 0 removes it.
	SetQuantity(ctx context.Context, username, foodID string, quantity int) (model.CartSnapshot, error)

	// Remove deletes a line if present.
	Remove(ctx context.Context, username, foodID string) (model.CartSnapshot, error)

	// Lines returns the cart lines for checkout snapshotting.
	Lines(ctx context.Context, username string) []model.CartLine

	// Clear empties the diner's cart.
	Clear(ctx context.Context, username string)
}

// CheckoutResult is the outcome of a successful checkout.
type CheckoutResult struct {
	Order      model.Order `json:"order"`
	PaymentURI string      `json:"paymentUri"`
}

// OrderService drives the order lifecycle and, through it, table occupancy.
type OrderService interface {
	// Checkout converts the diner's cart into a pending order attached to
	// their table. The cart is cleared only after the attach succeeds.
	Checkout(ctx context.Context, user *model.User) (*CheckoutResult, error)

	// Advance moves a table's active order to the next lifecycle status.
	Advance(ctx context.Context, tableID string, next model.OrderStatus) (*model.Order, error)

	// PaymentQR renders the payment QR PNG for a table's active order.
	PaymentQR(ctx context.Context, tableID string) ([]byte, error)
}

// ReviewService appends reviews and aggregates ratings.
type ReviewService interface {
	// Add appends a review for the item; out-of-range ratings are clamped.
	Add(ctx context.Context, itemID, author string, rating int, comment string) error

	// List returns the item's reviews with their aggregate.
	List(ctx context.Context, itemID string) ([]model.Review, model.RatingSummary, error)

	// Summary returns the running average and count for the item.
	Summary(ctx context.Context, itemID string) (model.RatingSummary, error)
}

// TableService exposes the registry reads behind the staff dashboard.
type TableService interface {
	// List returns all tables, optionally filtered by occupancy status.
	List(ctx context.Context, status *model.TableStatus) ([]model.Table, error)

	// Summary returns the dashboard headline counts.
	Summary(ctx context.Context) (model.TableSummary, error)
}
