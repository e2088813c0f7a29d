package dynamodb

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
	"github.com/gamebay/marketplace/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCreateListing(t *testing.T) {
	item := &models.ItemInstance{
		InstanceID: "item-1",
		GameID:     "game-1",
		OwnerID:    "seller",
		LockState:  models.LockFree,
		Version:    1,
	}
	itemAV, _ := attributevalue.MarshalMap(item)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		listing, err := store.CreateListing(context.Background(), "seller", "item-1", 250)

		assert.NoError(t, err)
		assert.Equal(t, "seller", listing.SellerID)
		assert.Equal(t, "item-1", listing.ItemInstanceID)
		assert.Equal(t, int64(250), listing.Price)
		assert.Equal(t, models.ListingOpen, listing.Status)
		assert.NotEmpty(t, listing.ListingID)
		mockClient.AssertExpectations(t)
	})

	t.Run("Invalid Price", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		_, err := store.CreateListing(context.Background(), "seller", "item-1", 0)
		assert.ErrorIs(t, err, storage.ErrInvalidPrice)

		_, err = store.CreateListing(context.Background(), "seller", "item-1", -5)
		assert.ErrorIs(t, err, storage.ErrInvalidPrice)
		mockClient.AssertExpectations(t)
	})

	t.Run("Item Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		_, err := store.CreateListing(context.Background(), "seller", "item-1", 250)

		assert.ErrorIs(t, err, storage.ErrItemNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)

		_, err := store.CreateListing(context.Background(), "somebody-else", "item-1", 250)

		assert.ErrorIs(t, err, storage.ErrNotOwner)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Locked", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		locked := *item
		locked.LockState = models.LockTradeLocked
		locked.LockRef = "offer-9"
		lockedAV, _ := attributevalue.MarshalMap(&locked)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: lockedAV}, nil)

		_, err := store.CreateListing(context.Background(), "seller", "item-1", 250)

		assert.ErrorIs(t, err, storage.ErrAlreadyLocked)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Lock Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledTx(0, 2))

		_, err := store.CreateListing(context.Background(), "seller", "item-1", 250)

		assert.ErrorIs(t, err, storage.ErrAlreadyLocked)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		_, err := store.CreateListing(context.Background(), "seller", "item-1", 250)

		assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "failed to execute listing transaction")
		mockClient.AssertExpectations(t)
	})
}
