package handler

import (
	"encoding/json"
	"net/http"

	"spice-palace/internal/middleware"
	"spice-palace/internal/model"
	"spice-palace/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// OrderHandler handles checkout and lifecycle requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Checkout handles POST /api/checkout requests. The diner's cart becomes a
// pending order on their table.
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}
	if user.Role != model.RoleUser {
		writeError(w, http.StatusForbidden, "only table accounts can place orders", h.logger)
		return
	}

	result, err := h.service.Checkout(r.Context(), user)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

type advanceRequest struct {
	Status string `json:"status"`
}

// Advance handles PATCH /api/tables/{id}/order requests, moving the table's
// active order to the next preparation stage.
func (h *OrderHandler) Advance(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}
	if user.Role != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "staff only", h.logger)
		return
	}

	var req advanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	status, ok := model.ParseOrderStatus(req.Status)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid order status", h.logger)
		return
	}

	order, err := h.service.Advance(r.Context(), mux.Vars(r)["id"], status)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// PaymentQR handles GET /api/tables/{id}/qrcode requests, rendering the UPI
// payment QR for the table's active order.
func (h *OrderHandler) PaymentQR(w http.ResponseWriter, r *http.Request) {
	png, err := h.service.PaymentQR(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
