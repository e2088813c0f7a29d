package access

import (
	"context"
	"errors"
	"testing"

	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCanView(t *testing.T) {
	ctx := context.Background()

	profile := func(privacy models.InventoryPrivacy) *models.Profile {
		return &models.Profile{UserID: "owner", Username: "Owner", InventoryPrivacy: privacy}
	}

	t.Run("Owner Always Sees Own Inventory", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "owner", "owner")

		assert.NoError(t, err)
		assert.True(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Missing Profile Denies", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(nil, nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "viewer", "owner")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Public Grants Anyone", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile(models.PrivacyPublic), nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "stranger", "owner")

		assert.NoError(t, err)
		assert.True(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Private Denies Everyone Else", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile(models.PrivacyPrivate), nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "viewer", "owner")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Friends Grants Accepted Friend", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile(models.PrivacyFriends), nil)
		mockStore.On("GetFriendship", mock.Anything, "friend", "owner").Return(&models.Friendship{Status: models.FriendshipAccepted}, nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "friend", "owner")

		assert.NoError(t, err)
		assert.True(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Friends Denies Pending Friendship", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile(models.PrivacyFriends), nil)
		mockStore.On("GetFriendship", mock.Anything, "acquaintance", "owner").Return(&models.Friendship{Status: "pending"}, nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "acquaintance", "owner")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Friends Denies Stranger", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile(models.PrivacyFriends), nil)
		mockStore.On("GetFriendship", mock.Anything, "stranger", "owner").Return(nil, nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "stranger", "owner")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Friends Denies Anonymous Viewer", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile(models.PrivacyFriends), nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "", "owner")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Unknown Setting Denies", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(profile("Everyone"), nil)
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "viewer", "owner")

		assert.NoError(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})

	t.Run("Profile Read Failure Propagates", func(t *testing.T) {
		mockStore := new(mocks.Storage)
		mockStore.On("GetProfile", mock.Anything, "owner").Return(nil, errors.New("read failed"))
		policy := NewPolicy(mockStore)

		ok, err := policy.CanView(ctx, "viewer", "owner")

		assert.Error(t, err)
		assert.False(t, ok)
		mockStore.AssertExpectations(t)
	})
}
