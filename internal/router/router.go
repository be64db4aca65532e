package router

import (
	"net/http"

	"spice-palace/internal/handler"
	"spice-palace/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
)

// Handlers bundles the HTTP handlers the router mounts.
type Handlers struct {
	Auth  *handler.AuthHandler
	Menu  *handler.MenuHandler
	Cart  *handler.CartHandler
	Order *handler.OrderHandler
	Table *handler.TableHandler
}

// New creates the HTTP router with all routes and middleware configured.
func New(h Handlers, resolver middleware.TokenResolver, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check endpoint (no authentication required)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	}).Methods(http.MethodGet)

	r.HandleFunc("/api/login", h.Auth.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/logout", h.Auth.Logout).Methods(http.MethodPost)

	r.HandleFunc("/api/menu", h.Menu.Browse).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/categories", h.Menu.Categories).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/{id}", h.Menu.GetByID).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/{id}/reviews", h.Menu.ListReviews).Methods(http.MethodGet)
	r.HandleFunc("/api/menu/{id}/reviews", h.Menu.AddReview).Methods(http.MethodPost)
	r.HandleFunc("/api/menu/{id}/availability", h.Menu.SetAvailability).Methods(http.MethodPatch)

	r.HandleFunc("/api/cart", h.Cart.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/cart/items", h.Cart.AddItem).Methods(http.MethodPost)
	r.HandleFunc("/api/cart/items/{id}", h.Cart.SetQuantity).Methods(http.MethodPut)
	r.HandleFunc("/api/cart/items/{id}", h.Cart.RemoveItem).Methods(http.MethodDelete)

	r.HandleFunc("/api/checkout", h.Order.Checkout).Methods(http.MethodPost)

	r.HandleFunc("/api/tables", h.Table.List).Methods(http.MethodGet)
	r.HandleFunc("/api/tables/summary", h.Table.Summary).Methods(http.MethodGet)
	r.HandleFunc("/api/tables/{id}/order", h.Order.Advance).Methods(http.MethodPatch)
	r.HandleFunc("/api/tables/{id}/qrcode", h.Order.PaymentQR).Methods(http.MethodGet)

	// Apply middleware in order: Recovery -> Logging -> CORS -> SessionAuth
	var chained http.Handler = r
	chained = middleware.SessionAuth(resolver, logger)(chained)
	chained = cors.AllowAll().Handler(chained)
	chained = middleware.Logging(logger)(chained)
	chained = middleware.Recovery(logger)(chained)

	return chained
}
