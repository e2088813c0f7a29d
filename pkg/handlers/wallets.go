package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/gamebay/marketplace/pkg/api"
	"github.com/gamebay/marketplace/pkg/audit"
	"github.com/gamebay/marketplace/pkg/mapping"
	"github.com/gamebay/marketplace/pkg/middleware"
	"github.com/go-chi/chi/v5"
)

// CreateWallet handles POST /wallets.
func (h *ApiHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	var req api.NewWallet
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Kind: "BadRequest", Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	wallet, err := h.Store.CreateWallet(r.Context(), mapping.ToDomainNewWallet(&req))
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			writeJSON(w, http.StatusConflict, api.Error{Kind: "Conflict", Message: "wallet for this user already exists"})
			return
		}
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapping.ToApiWallet(wallet))
}

// GetWalletByUserId handles GET /wallets/{userID}.
func (h *ApiHandler) GetWalletByUserId(w http.ResponseWriter, r *http.Request) {
	wallet, err := h.Store.GetWallet(r.Context(), chi.URLParam(r, "userID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiWallet(wallet))
}

// DeleteWallet handles DELETE /wallets/{userID}.
func (h *ApiHandler) DeleteWallet(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.DeleteWallet(r.Context(), chi.URLParam(r, "userID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListWallets handles GET /wallets.
func (h *ApiHandler) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := h.Store.ListWallets(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]*api.Wallet, len(wallets))
	for i := range wallets {
		out[i] = mapping.ToApiWallet(&wallets[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetInventory handles GET /users/{userID}/inventory. Visibility is governed
// by the owner's privacy setting and the friendship relation; denials are
// audited and fail with 403.
func (h *ApiHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	viewerID := middleware.AccountID(r)
	ownerID := chi.URLParam(r, "userID")

	allowed, err := h.Policy.CanView(r.Context(), viewerID, ownerID)
	if err != nil {
		writeError(w, err)
		return
	}
	if !allowed {
		h.Audit.Record(r.Context(), audit.Event{
			AccountID: viewerID,
			Action:    "inventory.view",
			Resource:  ownerID,
			Result:    audit.ResultDenied,
		})
		writeJSON(w, http.StatusForbidden, api.Error{Kind: "Forbidden", Message: "you do not have permission to view this inventory"})
		return
	}

	items, err := h.Store.ListItemsByOwner(r.Context(), ownerID)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]*api.InventoryItem, len(items))
	for i := range items {
		out[i] = mapping.ToApiInventoryItem(&items[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// ListAuditEntries handles GET /audit.
func (h *ApiHandler) ListAuditEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.ListAuditEntries(r.Context(), 100)
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]*api.AuditEntry, len(entries))
	for i := range entries {
		out[i] = mapping.ToApiAuditEntry(&entries[i])
	}
	writeJSON(w, http.StatusOK, out)
}
