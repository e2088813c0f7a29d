package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gamebay/marketplace/pkg/access"
	"github.com/gamebay/marketplace/pkg/api"
	"github.com/gamebay/marketplace/pkg/audit"
	"github.com/gamebay/marketplace/pkg/mapping"
	"github.com/gamebay/marketplace/pkg/middleware"
	"github.com/gamebay/marketplace/pkg/storage"
	"github.com/go-chi/chi/v5"
)

// ApiHandler implements the HTTP contract. It holds the application's
// dependencies: the storage layer, the access policy, and the audit recorder.
type ApiHandler struct {
	Store  storage.ApiStore
	Policy *access.Policy
	Audit  audit.Recorder
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.ApiStore, recorder audit.Recorder) *ApiHandler {
	return &ApiHandler{
		Store:  store,
		Policy: access.NewPolicy(store),
		Audit:  recorder,
	}
}

// errorKind maps a storage error to its stable wire kind and HTTP status.
// Everything outside the expected taxonomy is an internal error.
func errorKind(err error) (string, int) {
	switch {
	case errors.Is(err, storage.ErrInvalidPrice):
		return "InvalidPrice", http.StatusBadRequest
	case errors.Is(err, storage.ErrSelfPurchase):
		return "SelfPurchase", http.StatusBadRequest
	case errors.Is(err, storage.ErrNotOwner):
		return "NotOwner", http.StatusForbidden
	case errors.Is(err, storage.ErrListingNotFound):
		return "ListingNotFound", http.StatusNotFound
	case errors.Is(err, storage.ErrTradeNotFound):
		return "TradeNotFound", http.StatusNotFound
	case errors.Is(err, storage.ErrItemNotFound):
		return "ItemNotFound", http.StatusNotFound
	case errors.Is(err, storage.ErrWalletNotFound):
		return "WalletNotFound", http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyLocked):
		return "AlreadyLocked", http.StatusConflict
	case errors.Is(err, storage.ErrListingAlreadyClosed):
		return "ListingAlreadyClosed", http.StatusConflict
	case errors.Is(err, storage.ErrInvalidTradeState):
		return "InvalidState", http.StatusConflict
	case errors.Is(err, storage.ErrAlreadyProcessed):
		return "AlreadyProcessed", http.StatusConflict
	case errors.Is(err, storage.ErrInsufficientFunds):
		return "InsufficientFunds", http.StatusPaymentRequired
	case errors.Is(err, storage.ErrStoreUnavailable):
		return "StoreUnavailable", http.StatusServiceUnavailable
	}
	return "Internal", http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind, status := errorKind(err)
	if status == http.StatusInternalServerError {
		slog.Error("internal error", "error", err)
	}
	writeJSON(w, status, api.Error{Kind: kind, Message: err.Error()})
}

// CreateListing handles POST /listings.
func (h *ApiHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.AccountID(r)

	var req api.NewListing
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Kind: "BadRequest", Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	listing, err := h.Store.CreateListing(r.Context(), sellerID, req.ItemID, req.Price)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID: sellerID,
		Action:    "listing.create",
		Resource:  listing.ListingID,
		Amount:    listing.Price,
		Result:    audit.ResultOK,
	})

	// The response carries the seller's display identity; a missing profile
	// just leaves the name blank.
	sellerName := ""
	if profile, err := h.Store.GetProfile(r.Context(), sellerID); err == nil && profile != nil {
		sellerName = profile.Username
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiListing(listing, sellerName))
}

// CancelListing handles DELETE /listings/{listingID}.
func (h *ApiHandler) CancelListing(w http.ResponseWriter, r *http.Request) {
	sellerID := middleware.AccountID(r)
	listingID := chi.URLParam(r, "listingID")

	if err := h.Store.CancelListing(r.Context(), sellerID, listingID); err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID: sellerID,
		Action:    "listing.cancel",
		Resource:  listingID,
		Result:    audit.ResultOK,
	})

	w.WriteHeader(http.StatusNoContent)
}

// ListListings handles GET /listings.
func (h *ApiHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.Store.ListOpenListings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]*api.Listing, len(listings))
	for i := range listings {
		out[i] = mapping.ToApiListing(&listings[i], "")
	}
	writeJSON(w, http.StatusOK, out)
}

// PurchaseListing handles POST /purchases.
func (h *ApiHandler) PurchaseListing(w http.ResponseWriter, r *http.Request) {
	buyerID := middleware.AccountID(r)

	var req api.NewPurchase
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Kind: "BadRequest", Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if req.RequestToken == "" {
		writeJSON(w, http.StatusBadRequest, api.Error{Kind: "BadRequest", Message: "request_token is required"})
		return
	}

	receipt, err := h.Store.Purchase(r.Context(), buyerID, req.ListingID, req.RequestToken)
	if errors.Is(err, storage.ErrAlreadyProcessed) {
		// Duplicate request token: surface the conflict but echo the original
		// result so the client can reconcile without re-charging.
		writeJSON(w, http.StatusConflict, mapping.ToApiPurchaseResult(receipt))
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID:      buyerID,
		Action:         "listing.purchase",
		Resource:       receipt.ListingID,
		TransactionID:  receipt.TransactionID,
		Amount:         receipt.Amount,
		CounterpartyID: receipt.SellerID,
		Result:         audit.ResultOK,
	})

	writeJSON(w, http.StatusOK, mapping.ToApiPurchaseResult(receipt))
}
