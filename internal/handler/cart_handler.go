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

// CartHandler handles per-diner cart requests.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

// diner pulls the authenticated diner off the request; staff accounts have no
// cart.
func (h *CartHandler) diner(w http.ResponseWriter, r *http.Request) (*model.User, bool) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return nil, false
	}
	if user.Role != model.RoleUser {
		writeError(w, http.StatusForbidden, "carts belong to table accounts", h.logger)
		return nil, false
	}
	return user, true
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, ok := h.diner(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.Get(r.Context(), user.Username)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type addItemRequest struct {
	FoodID string `json:"foodId"`
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := h.diner(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	if req.FoodID == "" {
		writeError(w, http.StatusBadRequest, "foodId is required", h.logger)
		return
	}

	snapshot, err := h.service.Add(r.Context(), user.Username, req.FoodID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SetQuantity handles PUT /api/cart/items/{id} requests.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := h.diner(w, r)
	if !ok {
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	snapshot, err := h.service.SetQuantity(r.Context(), user.Username, mux.Vars(r)["id"], req.Quantity)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}

// RemoveItem handles DELETE /api/cart/items/{id} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, ok := h.diner(w, r)
	if !ok {
		return
	}

	snapshot, err := h.service.Remove(r.Context(), user.Username, mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, snapshot)
}
