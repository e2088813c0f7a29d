package mapping

import (
	"github.com/gamebay/marketplace/pkg/api"
	"github.com/gamebay/marketplace/pkg/models"
)

// ToApiListing converts a domain Listing to its API shape. sellerName may be
// empty when the seller profile is unavailable.
func ToApiListing(listing *models.Listing, sellerName string) *api.Listing {
	return &api.Listing{
		ID:             listing.ListingID,
		ItemInstanceID: listing.ItemInstanceID,
		SellerID:       listing.SellerID,
		SellerName:     sellerName,
		Price:          listing.Price,
		Status:         string(listing.Status),
		CreatedAt:      listing.CreatedAt,
	}
}

// ToApiPurchaseResult converts a purchase receipt to its API shape.
func ToApiPurchaseResult(receipt *models.PurchaseReceipt) *api.PurchaseResult {
	return &api.PurchaseResult{
		TransactionID:  receipt.TransactionID,
		ListingID:      receipt.ListingID,
		ItemInstanceID: receipt.ItemInstanceID,
		PricePaid:      receipt.Amount,
		NewBalance:     receipt.BuyerBalance,
	}
}

// ToApiTradeOffer converts a domain TradeOffer to its API shape.
func ToApiTradeOffer(offer *models.TradeOffer) *api.TradeOffer {
	return &api.TradeOffer{
		ID:              offer.OfferID,
		OffererID:       offer.OffererID,
		ReceiverID:      offer.ReceiverID,
		OfferedItemID:   offer.OfferedItemID,
		RequestedItemID: offer.RequestedItemID,
		Status:          string(offer.Status),
		CreatedAt:       offer.CreatedAt,
		ExpiresAt:       offer.ExpiresAt,
		UpdatedAt:       offer.UpdatedAt,
	}
}

// ToApiWallet converts a domain Wallet to its API shape.
func ToApiWallet(wallet *models.Wallet) *api.Wallet {
	return &api.Wallet{
		UserID:  wallet.UserID,
		Balance: wallet.Balance,
		Version: wallet.Version,
	}
}

// ToDomainNewWallet converts a NewWallet request to a domain Wallet.
func ToDomainNewWallet(newWallet *api.NewWallet) *models.Wallet {
	return &models.Wallet{
		UserID:  newWallet.UserID,
		Balance: 1000, // Seed new wallets with 1000 cents.
		Version: 1,
	}
}

// ToApiInventoryItem converts a domain ItemInstance to its API shape.
func ToApiInventoryItem(item *models.ItemInstance) *api.InventoryItem {
	return &api.InventoryItem{
		InstanceID: item.InstanceID,
		GameID:     item.GameID,
		OwnerID:    item.OwnerID,
		LockState:  string(item.LockState),
		AcquiredAt: item.AcquiredAt,
	}
}

// ToApiAuditEntry converts a domain AuditEntry to its API shape.
func ToApiAuditEntry(entry *models.AuditEntry) *api.AuditEntry {
	out := &api.AuditEntry{
		EntryID:       entry.EntryID,
		TransactionID: entry.TransactionID,
		AccountID:     entry.AccountID,
		Action:        entry.Action,
		Resource:      entry.Resource,
		Detail:        entry.Detail,
		Timestamp:     entry.Timestamp,
	}
	if entry.Debit != 0 {
		out.Debit = &entry.Debit
	}
	if entry.Credit != 0 {
		out.Credit = &entry.Credit
	}
	return out
}
