// Package api defines the wire types of the HTTP contract. Handlers decode
// requests into these and encode responses from them; domain models stay in
// pkg/models.
package api

import "time"

// Error is the machine-distinguishable error envelope. Kind is stable across
// releases; Message is for humans.
type Error struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// NewListing is the request body for creating a marketplace listing.
type NewListing struct {
	ItemID string `json:"item_id"`
	Price  int64  `json:"price"`
}

// Listing is the response shape for a marketplace listing.
type Listing struct {
	ID             string    `json:"id"`
	ItemInstanceID string    `json:"item_instance_id"`
	SellerID       string    `json:"seller_id"`
	SellerName     string    `json:"seller_name,omitempty"`
	Price          int64     `json:"price"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewPurchase is the request body for purchasing a listing. RequestToken is
// client-generated; replaying it returns the original result instead of a
// second charge.
type NewPurchase struct {
	ListingID    string `json:"listing_id"`
	RequestToken string `json:"request_token"`
}

// PurchaseResult echoes the outcome of a completed purchase.
type PurchaseResult struct {
	TransactionID  string `json:"transaction_id"`
	ListingID      string `json:"listing_id"`
	ItemInstanceID string `json:"item_instance_id"`
	PricePaid      int64  `json:"price_paid"`
	NewBalance     int64  `json:"new_balance"`
}

// NewTradeOffer is the request body for posting a trade offer.
type NewTradeOffer struct {
	ItemID string `json:"item_id"`
}

// CounterOffer is the request body for countering a trade offer.
type CounterOffer struct {
	ItemID string `json:"item_id"`
}

// TradeOffer is the response shape for a trade offer.
type TradeOffer struct {
	ID              string    `json:"id"`
	OffererID       string    `json:"offerer_id"`
	ReceiverID      string    `json:"receiver_id,omitempty"`
	OfferedItemID   string    `json:"offered_item_id"`
	RequestedItemID string    `json:"requested_item_id,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	ExpiresAt       time.Time `json:"expires_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewWallet is the request body for provisioning a wallet.
type NewWallet struct {
	UserID string `json:"user_id"`
}

// Wallet is the response shape for a wallet.
type Wallet struct {
	UserID  string `json:"user_id"`
	Balance int64  `json:"balance"`
	Version int64  `json:"version"`
}

// InventoryItem is the response shape for one owned item instance.
type InventoryItem struct {
	InstanceID string    `json:"instance_id"`
	GameID     string    `json:"game_id"`
	OwnerID    string    `json:"owner_id"`
	LockState  string    `json:"lock_state"`
	AcquiredAt time.Time `json:"acquired_at"`
}

// AuditEntry is the response shape for one audit log row.
type AuditEntry struct {
	EntryID       string    `json:"entry_id"`
	TransactionID string    `json:"transaction_id,omitempty"`
	AccountID     string    `json:"account_id"`
	Action        string    `json:"action"`
	Resource      string    `json:"resource"`
	Debit         *int64    `json:"debit,omitempty"`
	Credit        *int64    `json:"credit,omitempty"`
	Detail        string    `json:"detail,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}
