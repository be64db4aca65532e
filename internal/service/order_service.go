package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"spice-palace/internal/model"
	"spice-palace/internal/notify"
	"spice-palace/internal/payment"
	"spice-palace/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService. Checkouts are serialised under a
// mutex: a double-submitted cart sees the cleared state on the second pass
// and is rejected, so exactly one order is created.
type orderService struct {
	checkoutMu sync.Mutex
	orderSeq   int
	tableRepo  repository.TableRepository
	carts      CartService
	payments   *payment.Generator
	notifier   notify.Notifier
	logger     zerolog.Logger
}

// NewOrderService creates a new order lifecycle service.
func NewOrderService(
	tableRepo repository.TableRepository,
	carts CartService,
	payments *payment.Generator,
	notifier notify.Notifier,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		tableRepo: tableRepo,
		carts:     carts,
		payments:  payments,
		notifier:  notifier,
		logger:    logger.With().Str("service", "order").Logger(),
	}
}

// Checkout converts the diner's cart into a pending order attached to their
// table. Rejections (empty cart, unresolvable table) leave every piece of
// state exactly as it was. The cart is cleared strictly after the attach
// succeeds.
func (s *orderService) Checkout(ctx context.Context, user *model.User) (*CheckoutResult, error) {
	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()

	lines := s.carts.Lines(ctx, user.Username)
	if len(lines) == 0 {
		s.logger.Warn().Str("username", user.Username).Msg("checkout with empty cart rejected")
		return nil, model.ErrEmptyCart
	}

	table, err := s.tableRepo.FindByNumber(ctx, user.TableNumber)
	if err != nil {
		s.logger.Warn().
			Str("username", user.Username).
			Int("table_number", user.TableNumber).
			Msg("checkout without resolvable table rejected")
		return nil, err
	}

	s.orderSeq++
	order := model.NewOrder(fmt.Sprintf("o%d", s.orderSeq), table.ID, lines, time.Now())

	if err := s.tableRepo.AttachOrder(ctx, user.TableNumber, order); err != nil {
		return nil, fmt.Errorf("failed to attach order: %w", err)
	}
	s.carts.Clear(ctx, user.Username)

	s.logger.Info().
		Str("order_id", order.ID).
		Str("table_id", table.ID).
		Int("line_count", len(order.Lines)).
		Float64("total", order.Total).
		Msg("order placed")
	s.notifier.OrderPlaced(*order)

	return &CheckoutResult{
		Order:      *order,
		PaymentURI: s.payments.Link(order.Total, table.Number),
	}, nil
}

// Advance moves a table's active order to the next lifecycle status. The
// registry enforces the transition rules and frees the table when the order
// is served.
func (s *orderService) Advance(ctx context.Context, tableID string, next model.OrderStatus) (*model.Order, error) {
	order, err := s.tableRepo.AdvanceOrder(ctx, tableID, next)
	if err != nil {
		s.logger.Warn().
			Str("table_id", tableID).
			Str("requested_status", string(next)).
			Err(err).
			Msg("order advance rejected")
		return nil, err
	}

	s.notifier.OrderStatusChanged(*order)
	return order, nil
}

// PaymentQR renders the payment QR PNG for a table's active order.
func (s *orderService) PaymentQR(ctx context.Context, tableID string) ([]byte, error) {
	table, err := s.tableRepo.FindByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table.CurrentOrder == nil {
		return nil, model.ErrNoActiveOrder
	}
	return s.payments.QR(s.payments.Link(table.CurrentOrder.Total, table.Number))
}
