package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestFriendshipPairKey(t *testing.T) {
	assert.Equal(t, "alice#bob", FriendshipPairKey("alice", "bob"))
	assert.Equal(t, "alice#bob", FriendshipPairKey("bob", "alice"))
}

func TestGetProfile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		profile := &models.Profile{UserID: "alice", Username: "Alice", InventoryPrivacy: models.PrivacyFriends}
		profileAV, _ := attributevalue.MarshalMap(profile)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: profileAV}, nil)

		store := New(mockClient, testTables)
		got, err := store.GetProfile(context.Background(), "alice")

		assert.NoError(t, err)
		assert.Equal(t, models.PrivacyFriends, got.InventoryPrivacy)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing Is Nil", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := New(mockClient, testTables)
		got, err := store.GetProfile(context.Background(), "nobody")

		assert.NoError(t, err)
		assert.Nil(t, got)
		mockClient.AssertExpectations(t)
	})
}

func TestGetFriendship(t *testing.T) {
	t.Run("Order Independent", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		friendship := &models.Friendship{PairKey: "alice#bob", UserID1: "alice", UserID2: "bob", Status: models.FriendshipAccepted}
		friendshipAV, _ := attributevalue.MarshalMap(friendship)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Twice().Return(&dynamodb.GetItemOutput{Item: friendshipAV}, nil)

		store := New(mockClient, testTables)

		got, err := store.GetFriendship(context.Background(), "alice", "bob")
		assert.NoError(t, err)
		assert.Equal(t, models.FriendshipAccepted, got.Status)

		got, err = store.GetFriendship(context.Background(), "bob", "alice")
		assert.NoError(t, err)
		assert.Equal(t, models.FriendshipAccepted, got.Status)
		mockClient.AssertExpectations(t)
	})

	t.Run("Missing Is Nil", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := New(mockClient, testTables)
		got, err := store.GetFriendship(context.Background(), "alice", "stranger")

		assert.NoError(t, err)
		assert.Nil(t, got)
		mockClient.AssertExpectations(t)
	})
}
