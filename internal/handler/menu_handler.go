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

// MenuHandler handles catalogue browsing and review requests.
type MenuHandler struct {
	catalog service.CatalogService
	reviews service.ReviewService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(catalog service.CatalogService, reviews service.ReviewService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		catalog: catalog,
		reviews: reviews,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Browse handles GET /api/menu requests with search, category and sort
// query parameters.
func (h *MenuHandler) Browse(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	sortOrder, ok := service.ParseSortOrder(params.Get("sort"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid sort parameter", h.logger)
		return
	}

	items, err := h.catalog.Browse(r.Context(), service.Query{
		Search:   params.Get("search"),
		Category: params.Get("category"),
		Sort:     sortOrder,
	})
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// Categories handles GET /api/menu/categories requests.
func (h *MenuHandler) Categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalog.Categories(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

// GetByID handles GET /api/menu/{id} requests.
func (h *MenuHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	item, err := h.catalog.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

type reviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type reviewListResponse struct {
	Reviews []model.Review      `json:"reviews"`
	Summary model.RatingSummary `json:"summary"`
}

// AddReview handles POST /api/menu/{id}/reviews requests. The author is the
// logged-in user; out-of-range ratings are clamped.
func (h *MenuHandler) AddReview(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	itemID := mux.Vars(r)["id"]
	if err := h.reviews.Add(r.Context(), itemID, user.Username, req.Rating, req.Comment); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	reviews, summary, err := h.reviews.List(r.Context(), itemID)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, reviewListResponse{Reviews: reviews, Summary: summary})
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

// SetAvailability handles PATCH /api/menu/{id}/availability requests. Staff
// use this to take a dish off the menu mid-service and bring it back.
func (h *MenuHandler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return
	}
	if user.Role != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "staff only", h.logger)
		return
	}

	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	item, err := h.catalog.SetAvailability(r.Context(), mux.Vars(r)["id"], req.Available)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// ListReviews handles GET /api/menu/{id}/reviews requests.
func (h *MenuHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, summary, err := h.reviews.List(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews, Summary: summary})
}
