// Package access evaluates discretionary access control for inventory views:
// who may see whose items, based on the owner's visibility setting and the
// friendship relation between the two accounts.
package access

import (
	"context"
	"fmt"

	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
)

// Policy answers inventory visibility questions against stored profiles and
// friendships.
type Policy struct {
	store storage.AccessReader
}

// NewPolicy creates a Policy backed by the given reader.
func NewPolicy(store storage.AccessReader) *Policy {
	return &Policy{store: store}
}

// CanView reports whether viewerID may see ownerID's inventory. Rules, in
// order: owners always see themselves; a missing owner profile denies; Public
// grants, Private denies; Friends grants only an accepted friendship with a
// known viewer. Unknown settings deny.
func (p *Policy) CanView(ctx context.Context, viewerID, ownerID string) (bool, error) {
	if viewerID != "" && viewerID == ownerID {
		return true, nil
	}

	profile, err := p.store.GetProfile(ctx, ownerID)
	if err != nil {
		return false, fmt.Errorf("failed to load owner profile: %w", err)
	}
	if profile == nil {
		return false, nil
	}

	switch profile.InventoryPrivacy {
	case models.PrivacyPublic:
		return true, nil
	case models.PrivacyPrivate:
		return false, nil
	case models.PrivacyFriends:
		if viewerID == "" {
			return false, nil
		}
		friendship, err := p.store.GetFriendship(ctx, viewerID, ownerID)
		if err != nil {
			return false, fmt.Errorf("failed to load friendship: %w", err)
		}
		return friendship != nil && friendship.Status == models.FriendshipAccepted, nil
	}

	return false, nil
}
