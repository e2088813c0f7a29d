package dynamodb

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
	"github.com/gamebay/marketplace/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetItem(t *testing.T) {
	item := &models.ItemInstance{
		InstanceID: "item-1",
		GameID:     "game-1",
		OwnerID:    "owner",
		LockState:  models.LockFree,
		Version:    1,
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		itemAV, _ := attributevalue.MarshalMap(item)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)

		store := New(mockClient, testTables)
		got, err := store.GetItem(context.Background(), "item-1")

		assert.NoError(t, err)
		assert.Equal(t, "owner", got.OwnerID)
		assert.Equal(t, models.LockFree, got.LockState)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		store := New(mockClient, testTables)
		_, err := store.GetItem(context.Background(), "item-1")

		assert.ErrorIs(t, err, storage.ErrItemNotFound)
		mockClient.AssertExpectations(t)
	})
}

func TestGrantItem(t *testing.T) {
	mockClient := new(mocks.DynamoDBAPI)
	mockClient.On("PutItem", mock.Anything, mock.Anything).Return(&dynamodb.PutItemOutput{}, nil)

	store := New(mockClient, testTables)
	item, err := store.GrantItem(context.Background(), "owner", "game-1")

	assert.NoError(t, err)
	assert.Equal(t, "owner", item.OwnerID)
	assert.Equal(t, "game-1", item.GameID)
	assert.Equal(t, models.LockFree, item.LockState)
	assert.NotEmpty(t, item.InstanceID)
	mockClient.AssertExpectations(t)
}

func TestTransferOwnership(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, testTables)
		err := store.TransferOwnership(context.Background(), "item-1", "old-owner", "new-owner")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Wrong Current Owner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables)
		err := store.TransferOwnership(context.Background(), "item-1", "old-owner", "new-owner")

		assert.ErrorIs(t, err, storage.ErrOwnershipMismatch)
		mockClient.AssertExpectations(t)
	})
}

func TestLockItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, testTables)
		err := store.LockItem(context.Background(), "item-1", models.LockTradeLocked, "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Locked", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables)
		err := store.LockItem(context.Background(), "item-1", models.LockListed, "listing-1")

		assert.ErrorIs(t, err, storage.ErrAlreadyLocked)
		mockClient.AssertExpectations(t)
	})
}

func TestUnlockItem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(&dynamodb.UpdateItemOutput{}, nil)

		store := New(mockClient, testTables)
		err := store.UnlockItem(context.Background(), "item-1", "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Held By Someone Else", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		mockClient.On("UpdateItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		store := New(mockClient, testTables)
		err := store.UnlockItem(context.Background(), "item-1", "stale-ref")

		assert.ErrorIs(t, err, storage.ErrAlreadyLocked)
		mockClient.AssertExpectations(t)
	})
}

func TestListItemsByOwner(t *testing.T) {
	items := []models.ItemInstance{
		{InstanceID: "item-1", OwnerID: "owner", LockState: models.LockFree},
		{InstanceID: "item-2", OwnerID: "owner", LockState: models.LockListed, LockRef: "listing-1"},
	}

	mockClient := new(mocks.DynamoDBAPI)
	var itemsAV []map[string]types.AttributeValue
	for _, it := range items {
		av, err := attributevalue.MarshalMap(it)
		assert.NoError(t, err)
		itemsAV = append(itemsAV, av)
	}
	mockClient.On("Query", mock.Anything, mock.MatchedBy(func(input *dynamodb.QueryInput) bool {
		return *input.IndexName == ownerIDIndex
	})).Return(&dynamodb.QueryOutput{Items: itemsAV}, nil)

	store := New(mockClient, testTables)
	got, err := store.ListItemsByOwner(context.Background(), "owner")

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, models.LockListed, got[1].LockState)
	mockClient.AssertExpectations(t)
}
