package storage

import (
	"context"

	"github.com/gamebay/marketplace/pkg/models"
)

// AccessReader supplies the profile and friendship facts the access policy
// evaluates. Missing records are reported as nil, not as errors, so the
// policy can fail closed.
type AccessReader interface {
	// GetProfile retrieves an account's profile, or nil if none exists.
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)

	// GetFriendship retrieves the friendship record between two accounts
	// regardless of pair order, or nil if none exists.
	GetFriendship(ctx context.Context, userA, userB string) (*models.Friendship, error)
}
