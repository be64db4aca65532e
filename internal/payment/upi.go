// Package payment builds UPI deep links and QR codes for placed orders. It is
// a presentation-side collaborator: nothing in the ordering core depends on a
// payment actually happening.
package payment

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// Config identifies the payee on generated links.
type Config struct {
	UPIID     string
	PayeeName string
	Currency  string
}

// Generator produces upi://pay deep links and their QR PNG renderings.
type Generator struct {
	cfg Config
}

// NewGenerator creates a payment link generator.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Link builds the upi://pay URI for an order total at the given table.
func (g *Generator) Link(amount float64, tableNumber int) string {
	note := fmt.Sprintf("Table %d order", tableNumber)
	return fmt.Sprintf(
		"upi://pay?pa=%s&pn=%s&am=%.2f&cu=%s&tn=%s",
		url.QueryEscape(g.cfg.UPIID),
		url.QueryEscape(g.cfg.PayeeName),
		amount,
		url.QueryEscape(g.cfg.Currency),
		url.QueryEscape(note),
	)
}

// QR renders a link as a 256px PNG with medium error recovery.
func (g *Generator) QR(link string) ([]byte, error) {
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payment QR: %w", err)
	}
	return png, nil
}
