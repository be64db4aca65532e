// Package notify carries fire-and-forget signals raised on order transitions.
// Delivery is best-effort and outside the ordering core's contract; the UI
// uses these for toasts and kitchen chimes.
package notify

import (
	"spice-palace/internal/model"

	"github.com/rs/zerolog"
)

// Notifier observes order lifecycle transitions.
type Notifier interface {
	// OrderPlaced fires after checkout attaches a new order to its table.
	OrderPlaced(order model.Order)

	// OrderStatusChanged fires after a successful status advance.
	OrderStatusChanged(order model.Order)
}

// logNotifier writes transition events to the structured log.
type logNotifier struct {
	logger zerolog.Logger
}

// NewLogNotifier creates a log-backed notifier.
func NewLogNotifier(logger zerolog.Logger) Notifier {
	return &logNotifier{logger: logger.With().Str("component", "notify").Logger()}
}

func (n *logNotifier) OrderPlaced(order model.Order) {
	n.logger.Info().
		Str("order_id", order.ID).
		Str("table_id", order.TableID).
		Float64("total", order.Total).
		Msg("order placed")
}

func (n *logNotifier) OrderStatusChanged(order model.Order) {
	n.logger.Info().
		Str("order_id", order.ID).
		Str("table_id", order.TableID).
		Str("status", string(order.Status)).
		Msg("order status changed")
}
