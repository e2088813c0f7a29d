package handlers

import (
	"log/slog"

	custommw "github.com/gamebay/marketplace/pkg/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

// NewRouter mounts the handler on a chi router with the middleware stack.
func NewRouter(h *ApiHandler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(custommw.WithAccount)
	r.Use(custommw.NewStructuredLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Account-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Open listings and active trades are public reads.
	r.Get("/listings", h.ListListings)
	r.Get("/trades", h.ListTrades)
	r.Get("/trades/{offerID}", h.GetTradeOffer)

	r.Group(func(r chi.Router) {
		r.Use(custommw.RequireAccount)

		r.Post("/listings", h.CreateListing)
		r.Delete("/listings/{listingID}", h.CancelListing)
		r.Post("/purchases", h.PurchaseListing)

		r.Post("/trades", h.PostTradeOffer)
		r.Post("/trades/{offerID}/counter", h.CounterTradeOffer)
		r.Post("/trades/{offerID}/accept", h.AcceptTradeOffer)
		r.Post("/trades/{offerID}/reject", h.RejectTradeOffer)
		r.Post("/trades/{offerID}/cancel", h.CancelTradeOffer)

		r.Get("/users/{userID}/inventory", h.GetInventory)

		r.Post("/wallets", h.CreateWallet)
		r.Get("/wallets", h.ListWallets)
		r.Get("/wallets/{userID}", h.GetWalletByUserId)
		r.Delete("/wallets/{userID}", h.DeleteWallet)

		r.Get("/audit", h.ListAuditEntries)
	})

	return r
}
