package handler

import (
	"net/http"

	"spice-palace/internal/middleware"
	"spice-palace/internal/model"
	"spice-palace/internal/service"

	"github.com/rs/zerolog"
)

// TableHandler handles staff dashboard requests over the table registry.
type TableHandler struct {
	service service.TableService
	logger  zerolog.Logger
}

// NewTableHandler creates a new table handler.
func NewTableHandler(service service.TableService, logger zerolog.Logger) *TableHandler {
	return &TableHandler{
		service: service,
		logger:  logger.With().Str("handler", "table").Logger(),
	}
}

// staff rejects non-admin callers.
func (h *TableHandler) staff(w http.ResponseWriter, r *http.Request) bool {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorised", h.logger)
		return false
	}
	if user.Role != model.RoleAdmin {
		writeError(w, http.StatusForbidden, "staff only", h.logger)
		return false
	}
	return true
}

// List handles GET /api/tables requests with an optional status filter.
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.staff(w, r) {
		return
	}

	var filter *model.TableStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := model.ParseTableStatus(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid status parameter", h.logger)
			return
		}
		filter = &status
	}

	tables, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	if tables == nil {
		tables = []model.Table{}
	}
	writeJSON(w, http.StatusOK, tables)
}

// Summary handles GET /api/tables/summary requests.
func (h *TableHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if !h.staff(w, r) {
		return
	}

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
