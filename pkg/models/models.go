package models

import (
	"time"
)

// LockState defines the mutual-exclusion flag on an item instance.
// An item can be held by at most one open listing or pending trade at a time.
type LockState string

const (
	LockFree        LockState = "FREE"
	LockListed      LockState = "LISTED"
	LockTradeLocked LockState = "TRADE_LOCKED"
)

// ListingStatus defines the possible states of a marketplace listing.
type ListingStatus string

const (
	ListingOpen      ListingStatus = "OPEN"
	ListingSold      ListingStatus = "SOLD"
	ListingCancelled ListingStatus = "CANCELLED"
)

// TradeStatus defines the possible states of a trade offer.
// PENDING is the sole initial state; the other four are terminal.
type TradeStatus string

const (
	TradePending   TradeStatus = "PENDING"
	TradeAccepted  TradeStatus = "ACCEPTED"
	TradeRejected  TradeStatus = "REJECTED"
	TradeExpired   TradeStatus = "EXPIRED"
	TradeCancelled TradeStatus = "CANCELLED"
)

// Terminal reports whether no further transition is permitted from s.
func (s TradeStatus) Terminal() bool {
	return s == TradeAccepted || s == TradeRejected || s == TradeExpired || s == TradeCancelled
}

// TradeOfferTTL is how long a trade offer stays open before it expires.
const TradeOfferTTL = 7 * 24 * time.Hour

// InventoryPrivacy is the three-valued visibility setting on a profile.
type InventoryPrivacy string

const (
	PrivacyPublic  InventoryPrivacy = "Public"
	PrivacyPrivate InventoryPrivacy = "Private"
	PrivacyFriends InventoryPrivacy = "Friends"
)

// ItemInstance is one unique, ownable unit of a catalog entitlement.
// It has exactly one owner at all times; lock_ref identifies the listing or
// trade currently holding a non-free lock.
type ItemInstance struct {
	InstanceID string    `dynamodbav:"instance_id"`
	GameID     string    `dynamodbav:"game_id"`
	OwnerID    string    `dynamodbav:"owner_id"`
	LockState  LockState `dynamodbav:"lock_state"`
	LockRef    string    `dynamodbav:"lock_ref,omitempty"`
	AcquiredAt time.Time `dynamodbav:"acquired_at"`
	Version    int64     `dynamodbav:"version"`
}

// Listing is an open offer to sell one item instance for currency.
// Price is in integer cents.
type Listing struct {
	ListingID      string        `dynamodbav:"listing_id"`
	ItemInstanceID string        `dynamodbav:"item_instance_id"`
	SellerID       string        `dynamodbav:"seller_id"`
	Price          int64         `dynamodbav:"price"`
	Status         ListingStatus `dynamodbav:"status"`
	CreatedAt      time.Time     `dynamodbav:"created_at"`
	GSI1PK         string        `dynamodbav:"gsi1pk"`
}

// TradeOffer is a barter proposal moving one item instance from the offerer
// toward a receiver, with an optional counter item from the receiver's side.
// ReceiverID and RequestedItemID are empty until a counter offer arrives.
type TradeOffer struct {
	OfferID         string      `dynamodbav:"offer_id"`
	OffererID       string      `dynamodbav:"offerer_id"`
	ReceiverID      string      `dynamodbav:"receiver_id,omitempty"`
	OfferedItemID   string      `dynamodbav:"offered_item_id"`
	RequestedItemID string      `dynamodbav:"requested_item_id,omitempty"`
	Status          TradeStatus `dynamodbav:"status"`
	CreatedAt       time.Time   `dynamodbav:"created_at"`
	ExpiresAt       time.Time   `dynamodbav:"expires_at"`
	UpdatedAt       time.Time   `dynamodbav:"updated_at"`
}

// Expired reports whether the offer's nominal expiry has passed. The stored
// status may still read PENDING until the next lazy evaluation or sweep.
func (t *TradeOffer) Expired(now time.Time) bool {
	return t.Status == TradePending && now.After(t.ExpiresAt)
}

// Wallet is an account's currency balance, in integer cents.
// Balances are mutated only by the purchase transaction.
type Wallet struct {
	UserID    string    `json:"user_id" dynamodbav:"user_id"`
	Balance   int64     `json:"balance" dynamodbav:"balance"`
	Version   int64     `json:"version" dynamodbav:"version"`
	CreatedAt time.Time `json:"created_at" dynamodbav:"created_at"`
}

// Profile carries the account attributes the core needs: display identity
// and the inventory visibility setting.
type Profile struct {
	UserID           string           `dynamodbav:"user_id"`
	Username         string           `dynamodbav:"username"`
	InventoryPrivacy InventoryPrivacy `dynamodbav:"inventory_privacy"`
}

// Friendship is an unordered account pair with a status. The pair is stored
// under a canonical key (lower id first) so lookups are order-independent.
type Friendship struct {
	PairKey   string    `dynamodbav:"pair_key"`
	UserID1   string    `dynamodbav:"user_id1"`
	UserID2   string    `dynamodbav:"user_id2"`
	Status    string    `dynamodbav:"status"`
	CreatedAt time.Time `dynamodbav:"created_at"`
}

// FriendshipAccepted is the only friendship status that grants visibility.
const FriendshipAccepted = "accepted"

// PurchaseReceipt is the durable record of a completed purchase, keyed by the
// client-generated request token. A duplicate request finds the receipt and
// gets the original result back instead of a second charge.
type PurchaseReceipt struct {
	RequestToken   string    `dynamodbav:"request_token"`
	TransactionID  string    `dynamodbav:"transaction_id"`
	ListingID      string    `dynamodbav:"listing_id"`
	BuyerID        string    `dynamodbav:"buyer_id"`
	SellerID       string    `dynamodbav:"seller_id"`
	ItemInstanceID string    `dynamodbav:"item_instance_id"`
	Amount         int64     `dynamodbav:"amount"`
	BuyerBalance   int64     `dynamodbav:"buyer_balance"`
	CreatedAt      time.Time `dynamodbav:"created_at"`
}

// AuditEntry is a single row in the audit log. Purchases record a paired
// debit/credit like a double-entry ledger; other actions record one entry.
type AuditEntry struct {
	EntryID       string    `dynamodbav:"entry_id"`
	TransactionID string    `dynamodbav:"transaction_id,omitempty"`
	AccountID     string    `dynamodbav:"account_id"`
	Action        string    `dynamodbav:"action"`
	Resource      string    `dynamodbav:"resource"`
	Debit         int64     `dynamodbav:"debit,omitempty"`
	Credit        int64     `dynamodbav:"credit,omitempty"`
	Detail        string    `dynamodbav:"detail"`
	Result        string    `dynamodbav:"result"`
	Timestamp     time.Time `dynamodbav:"timestamp"`
	GSI1PK        string    `dynamodbav:"gsi1pk"`
}
