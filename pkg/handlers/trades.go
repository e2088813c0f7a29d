package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gamebay/marketplace/pkg/api"
	"github.com/gamebay/marketplace/pkg/audit"
	"github.com/gamebay/marketplace/pkg/mapping"
	"github.com/gamebay/marketplace/pkg/middleware"
	"github.com/go-chi/chi/v5"
)

// PostTradeOffer handles POST /trades.
func (h *ApiHandler) PostTradeOffer(w http.ResponseWriter, r *http.Request) {
	offererID := middleware.AccountID(r)

	var req api.NewTradeOffer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Kind: "BadRequest", Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	offer, err := h.Store.PostOffer(r.Context(), offererID, req.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID: offererID,
		Action:    "trade.post",
		Resource:  offer.OfferID,
		Result:    audit.ResultOK,
	})

	writeJSON(w, http.StatusCreated, mapping.ToApiTradeOffer(offer))
}

// ListTrades handles GET /trades.
func (h *ApiHandler) ListTrades(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Store.ListActiveTrades(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	out := make([]*api.TradeOffer, len(offers))
	for i := range offers {
		out[i] = mapping.ToApiTradeOffer(&offers[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTradeOffer handles GET /trades/{offerID}. Reading an overdue offer
// reports it Expired with its items released.
func (h *ApiHandler) GetTradeOffer(w http.ResponseWriter, r *http.Request) {
	offer, err := h.Store.GetTradeOffer(r.Context(), chi.URLParam(r, "offerID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiTradeOffer(offer))
}

// CounterTradeOffer handles POST /trades/{offerID}/counter.
func (h *ApiHandler) CounterTradeOffer(w http.ResponseWriter, r *http.Request) {
	receiverID := middleware.AccountID(r)
	offerID := chi.URLParam(r, "offerID")

	var req api.CounterOffer
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, api.Error{Kind: "BadRequest", Message: fmt.Sprintf("invalid request body: %v", err)})
		return
	}

	offer, err := h.Store.CounterOffer(r.Context(), receiverID, offerID, req.ItemID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID: receiverID,
		Action:    "trade.counter",
		Resource:  offerID,
		Result:    audit.ResultOK,
	})

	writeJSON(w, http.StatusOK, mapping.ToApiTradeOffer(offer))
}

// AcceptTradeOffer handles POST /trades/{offerID}/accept.
func (h *ApiHandler) AcceptTradeOffer(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r)
	offerID := chi.URLParam(r, "offerID")

	offer, err := h.Store.AcceptTrade(r.Context(), offerID)
	if err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID:      accountID,
		Action:         "trade.accept",
		Resource:       offerID,
		CounterpartyID: offer.OffererID,
		Result:         audit.ResultOK,
	})

	writeJSON(w, http.StatusOK, mapping.ToApiTradeOffer(offer))
}

// RejectTradeOffer handles POST /trades/{offerID}/reject.
func (h *ApiHandler) RejectTradeOffer(w http.ResponseWriter, r *http.Request) {
	accountID := middleware.AccountID(r)
	offerID := chi.URLParam(r, "offerID")

	if err := h.Store.RejectTrade(r.Context(), offerID); err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID: accountID,
		Action:    "trade.reject",
		Resource:  offerID,
		Result:    audit.ResultOK,
	})

	w.WriteHeader(http.StatusNoContent)
}

// CancelTradeOffer handles POST /trades/{offerID}/cancel. Only the original
// offerer may cancel.
func (h *ApiHandler) CancelTradeOffer(w http.ResponseWriter, r *http.Request) {
	offererID := middleware.AccountID(r)
	offerID := chi.URLParam(r, "offerID")

	if err := h.Store.CancelTrade(r.Context(), offererID, offerID); err != nil {
		writeError(w, err)
		return
	}

	h.Audit.Record(r.Context(), audit.Event{
		AccountID: offererID,
		Action:    "trade.cancel",
		Resource:  offerID,
		Result:    audit.ResultOK,
	})

	w.WriteHeader(http.StatusNoContent)
}
