package storage

import (
	"context"

	"github.com/gamebay/marketplace/pkg/models"
)

// OwnershipReader defines the interface for reading item-instance state.
type OwnershipReader interface {
	// GetItem retrieves an item instance by its id.
	GetItem(ctx context.Context, itemID string) (*models.ItemInstance, error)

	// ListItemsByOwner retrieves every item instance owned by an account.
	ListItemsByOwner(ctx context.Context, ownerID string) ([]models.ItemInstance, error)
}

// OwnershipStore is the durable mapping of item instance to owning account.
// The business flows (listings, purchase, trades) embed these same conditional
// effects inside their own single transactions; the standalone operations
// exist for provisioning and administrative use.
type OwnershipStore interface {
	OwnershipReader

	// GrantItem creates a new, unlocked item instance owned by ownerID.
	GrantItem(ctx context.Context, ownerID, gameID string) (*models.ItemInstance, error)

	// TransferOwnership moves the item from one account to another. It fails
	// with ErrOwnershipMismatch unless the current owner equals from.
	TransferOwnership(ctx context.Context, itemID, from, to string) error

	// LockItem sets the item's lock state. It fails with ErrAlreadyLocked
	// unless the current state is FREE. lockRef records the listing or trade
	// holding the lock.
	LockItem(ctx context.Context, itemID string, kind models.LockState, lockRef string) error

	// UnlockItem returns the item to FREE. It is idempotent for the holder of
	// lockRef: unlocking an already-free item succeeds.
	UnlockItem(ctx context.Context, itemID, lockRef string) error
}
