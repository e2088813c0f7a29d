package storage

import (
	"context"
	"time"

	"github.com/gamebay/marketplace/pkg/models"
)

// TradeReader defines the interface for reading trade offers.
type TradeReader interface {
	// GetTradeOffer retrieves a trade offer by id. An overdue PENDING offer is
	// transitioned to EXPIRED (unlocking its items) before being returned.
	GetTradeOffer(ctx context.Context, offerID string) (*models.TradeOffer, error)

	// ListActiveTrades retrieves all offers currently in PENDING status.
	ListActiveTrades(ctx context.Context) ([]models.TradeOffer, error)

	// GetOverdueTrades retrieves PENDING offers whose expiry passed before the
	// given cutoff. Used by the expiry sweep.
	GetOverdueTrades(ctx context.Context, cutoff time.Time) ([]models.TradeOffer, error)
}

// TradeStore manages the trade offer state machine. Every terminal transition
// unlocks every item the offer holds in the same atomic write; an offer can
// never terminate while leaving an item trade-locked.
type TradeStore interface {
	TradeReader

	// PostOffer locks the item as TRADE_LOCKED and creates a PENDING offer
	// with a 7-day expiry. Fails with ErrNotOwner or ErrAlreadyLocked.
	PostOffer(ctx context.Context, offererID, itemID string) (*models.TradeOffer, error)

	// CounterOffer attaches the receiver's item to a PENDING offer that has
	// not been countered yet, locking it as TRADE_LOCKED. Fails with
	// ErrInvalidTradeState, ErrNotOwner, or ErrAlreadyLocked.
	CounterOffer(ctx context.Context, receiverID, offerID, itemID string) (*models.TradeOffer, error)

	// AcceptTrade swaps ownership of both items between the two accounts,
	// unlocks both, and sets the offer ACCEPTED, all in one atomic write.
	// Fails with ErrInvalidTradeState unless the offer is PENDING and countered.
	AcceptTrade(ctx context.Context, offerID string) (*models.TradeOffer, error)

	// RejectTrade unlocks the offered (and counter, if any) items and sets the
	// offer REJECTED. Fails with ErrInvalidTradeState unless PENDING.
	RejectTrade(ctx context.Context, offerID string) error

	// CancelTrade is RejectTrade restricted to the original offerer, setting
	// CANCELLED instead. Fails with ErrNotOwner for anyone else.
	CancelTrade(ctx context.Context, offererID, offerID string) error

	// ExpireTrade transitions an overdue PENDING offer to EXPIRED with the
	// same unlock effects as rejection. A concurrent terminal transition wins
	// quietly: the offer is re-read and no error is returned.
	ExpireTrade(ctx context.Context, offerID string) error
}
