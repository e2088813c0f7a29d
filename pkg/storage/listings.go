package storage

import (
	"context"

	"github.com/gamebay/marketplace/pkg/models"
)

// ListingReader defines the interface for reading marketplace listings.
type ListingReader interface {
	// GetListing retrieves a listing by its id.
	GetListing(ctx context.Context, listingID string) (*models.Listing, error)

	// ListOpenListings retrieves all listings currently in OPEN status.
	// Read-only, safe to call concurrently with any mutation.
	ListOpenListings(ctx context.Context) ([]models.Listing, error)
}

// ListingStore creates and closes marketplace listings. A listed item is
// exclusively reserved for the lifetime of the open listing.
type ListingStore interface {
	ListingReader

	// CreateListing locks the item as LISTED and persists a new OPEN listing
	// in a single atomic write. Fails with ErrNotOwner, ErrInvalidPrice, or
	// ErrAlreadyLocked.
	CreateListing(ctx context.Context, sellerID, itemID string, price int64) (*models.Listing, error)

	// CancelListing sets the listing CANCELLED and unlocks the item in the
	// same atomic write; there is no window where one is visible without the
	// other. Fails with ErrListingNotFound, ErrNotOwner, or ErrListingAlreadyClosed.
	CancelListing(ctx context.Context, sellerID, listingID string) error
}

// PurchaseStore executes the purchase transaction: the sole place where money
// and ownership change together.
type PurchaseStore interface {
	// Purchase atomically closes the listing, moves funds from buyer to
	// seller, transfers item ownership, and records a receipt keyed by the
	// client-generated request token. Exactly one call may succeed per
	// listing; racing attempts observe ErrListingAlreadyClosed. A replayed
	// request token returns the original receipt alongside ErrAlreadyProcessed.
	Purchase(ctx context.Context, buyerID, listingID, requestToken string) (*models.PurchaseReceipt, error)
}
