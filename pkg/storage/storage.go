package storage

// ApiStore defines the complete set of non-privileged operations needed by the
// API. It composes the granular interfaces to provide a clear boundary for the
// API's data access.
type ApiStore interface {
	OwnershipStore
	ListingStore
	PurchaseStore
	TradeStore
	WalletStore
	AccessReader
	AuditReader
}

// Storage defines the root interface for the entire data layer. Components
// should depend on the more granular interfaces (ApiStore, AuditLog, etc.)
// instead of this one.
type Storage interface {
	ApiStore
	AuditLog
}
