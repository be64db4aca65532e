package model

import "time"

// OrderStatus is the preparation stage of a placed order. The lifecycle is a
// fixed forward-only sequence: pending, preparing, ready, served.
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusServed    OrderStatus = "served"
)

// successor holds the single legal next stage for each status. Served is
// terminal and has no entry.
var successor = map[OrderStatus]OrderStatus{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusServed,
}

// ParseOrderStatus converts a request string into an OrderStatus.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case StatusPending, StatusPreparing, StatusReady, StatusServed:
		return OrderStatus(s), true
	}
	return "", false
}

// Next returns the stage immediately following s, or false when s is terminal.
func (s OrderStatus) Next() (OrderStatus, bool) {
	next, ok := successor[s]
	return next, ok
}

// CanAdvanceTo reports whether next is the stage immediately following s.
// Backward moves and skipped stages are never allowed.
func (s OrderStatus) CanAdvanceTo(next OrderStatus) bool {
	legal, ok := successor[s]
	return ok && legal == next
}

// Terminal reports whether s ends the lifecycle.
func (s OrderStatus) Terminal() bool {
	return s == StatusServed
}

// OrderLine is an immutable snapshot of a cart line taken at checkout. Later
// catalogue changes never retroactively alter a placed order.
type OrderLine struct {
	FoodID   string  `json:"foodId"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Note     string  `json:"note,omitempty"`
}

// Order is a placed table order. Only Status changes after creation.
type Order struct {
	ID        string      `json:"id"`
	TableID   string      `json:"tableId"`
	Lines     []OrderLine `json:"items"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	Total     float64     `json:"total"`
}

// NewOrder snapshots cart lines into a pending order with a frozen total.
func NewOrder(id, tableID string, lines []CartLine, now time.Time) *Order {
	orderLines := make([]OrderLine, len(lines))
	total := 0.0
	for i, line := range lines {
		orderLines[i] = OrderLine{
			FoodID:   line.FoodID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
			Note:     line.Note,
		}
		total += line.Price * float64(line.Quantity)
	}
	return &Order{
		ID:        id,
		TableID:   tableID,
		Lines:     orderLines,
		Status:    StatusPending,
		CreatedAt: now,
		Total:     total,
	}
}

// Clone returns a deep copy so callers can hand orders across goroutine
// boundaries without aliasing registry state.
func (o *Order) Clone() *Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Lines = make([]OrderLine, len(o.Lines))
	copy(clone.Lines, o.Lines)
	return &clone
}
