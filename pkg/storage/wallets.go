package storage

import (
	"context"

	"github.com/gamebay/marketplace/pkg/models"
)

// WalletStore defines the interface for provisioning wallets. Balances are
// only ever mutated by the purchase transaction.
type WalletStore interface {
	// GetWallet retrieves an account's wallet.
	GetWallet(ctx context.Context, userID string) (*models.Wallet, error)

	// CreateWallet creates a new wallet for an account.
	CreateWallet(ctx context.Context, wallet *models.Wallet) (*models.Wallet, error)

	// DeleteWallet deletes an account's wallet.
	DeleteWallet(ctx context.Context, userID string) error

	// ListWallets retrieves all wallets.
	ListWallets(ctx context.Context) ([]models.Wallet, error)
}
