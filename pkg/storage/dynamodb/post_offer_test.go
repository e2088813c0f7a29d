package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
	"github.com/gamebay/marketplace/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPostOffer(t *testing.T) {
	item := &models.ItemInstance{
		InstanceID: "item-1",
		OwnerID:    "offerer",
		LockState:  models.LockFree,
		Version:    1,
	}
	itemAV, _ := attributevalue.MarshalMap(item)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		offer, err := store.PostOffer(context.Background(), "offerer", "item-1")

		assert.NoError(t, err)
		assert.Equal(t, "offerer", offer.OffererID)
		assert.Equal(t, "item-1", offer.OfferedItemID)
		assert.Equal(t, models.TradePending, offer.Status)
		assert.Empty(t, offer.ReceiverID)
		assert.Empty(t, offer.RequestedItemID)
		assert.WithinDuration(t, time.Now().Add(models.TradeOfferTTL), offer.ExpiresAt, time.Minute)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)

		_, err := store.PostOffer(context.Background(), "somebody-else", "item-1")

		assert.ErrorIs(t, err, storage.ErrNotOwner)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Locked", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		listed := *item
		listed.LockState = models.LockListed
		listedAV, _ := attributevalue.MarshalMap(&listed)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: listedAV}, nil)

		_, err := store.PostOffer(context.Background(), "offerer", "item-1")

		assert.ErrorIs(t, err, storage.ErrAlreadyLocked)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Lock Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledTx(0, 2))

		_, err := store.PostOffer(context.Background(), "offerer", "item-1")

		assert.ErrorIs(t, err, storage.ErrAlreadyLocked)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: itemAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		_, err := store.PostOffer(context.Background(), "offerer", "item-1")

		assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "failed to execute trade offer transaction")
		mockClient.AssertExpectations(t)
	})
}
