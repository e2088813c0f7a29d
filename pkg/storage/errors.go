package storage

import "errors"

// Expected business outcomes. These are returned to the caller with a stable
// kind and are never retried automatically.
var (
	// ErrNotOwner is returned when the caller does not own the item or record
	// they are trying to act on.
	ErrNotOwner = errors.New("caller does not own this item")

	// ErrAlreadyLocked is returned when an item is already reserved by an open
	// listing or a pending trade.
	ErrAlreadyLocked = errors.New("item is already listed or trade-locked")

	// ErrInvalidPrice is returned when a listing price is not positive.
	ErrInvalidPrice = errors.New("listing price must be positive")

	// ErrListingNotFound is returned when no listing exists for the given id.
	ErrListingNotFound = errors.New("listing not found")

	// ErrListingAlreadyClosed is returned when a listing is no longer open,
	// covering both "already sold" and "already cancelled" races.
	ErrListingAlreadyClosed = errors.New("listing is no longer open")

	// ErrSelfPurchase is returned when a buyer attempts to purchase their own listing.
	ErrSelfPurchase = errors.New("cannot purchase your own listing")

	// ErrInsufficientFunds is returned when the buyer's balance does not cover the price.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrAlreadyProcessed is returned when a purchase request token has already
	// been settled; the original receipt accompanies it.
	ErrAlreadyProcessed = errors.New("purchase request already processed")

	// ErrInvalidTradeState is returned when a trade transition is attempted
	// from a state that does not permit it.
	ErrInvalidTradeState = errors.New("trade offer is not in a valid state for this operation")

	// ErrTradeNotFound is returned when no trade offer exists for the given id.
	ErrTradeNotFound = errors.New("trade offer not found")

	// ErrItemNotFound is returned when no item instance exists for the given id.
	ErrItemNotFound = errors.New("item instance not found")

	// ErrWalletNotFound is returned when an account has no wallet.
	ErrWalletNotFound = errors.New("wallet not found")
)

// ErrOwnershipMismatch means an ownership transfer was attempted from an
// account that is not the current owner. Under correct usage the surrounding
// transaction conditions make this unreachable; seeing it is a bug.
var ErrOwnershipMismatch = errors.New("ownership record does not match expected owner")

// ErrStoreUnavailable wraps transient infrastructure failures. Callers may
// retry with backoff; it is never silently swallowed.
var ErrStoreUnavailable = errors.New("store temporarily unavailable")
