package dynamodb

import (
	"context"
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

func TestRejectTrade(t *testing.T) {
	offer := &models.TradeOffer{
		OfferID:         "offer-1",
		OffererID:       "offerer",
		ReceiverID:      "receiver",
		OfferedItemID:   "item-1",
		RequestedItemID: "item-2",
		Status:          models.TradePending,
		ExpiresAt:       time.Now().Add(time.Hour),
	}
	offerAV, _ := attributevalue.MarshalMap(offer)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: offerAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			// Status change plus both unlocks ride in one transaction.
			return len(input.TransactItems) == 3
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.RejectTrade(context.Background(), "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Uncountered Offer Unlocks One Item", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		uncountered := *offer
		uncountered.ReceiverID = ""
		uncountered.RequestedItemID = ""
		uncounteredAV, _ := attributevalue.MarshalMap(&uncountered)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: uncounteredAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.MatchedBy(func(input *dynamodb.TransactWriteItemsInput) bool {
			return len(input.TransactItems) == 2
		})).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.RejectTrade(context.Background(), "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Terminal", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		accepted := *offer
		accepted.Status = models.TradeAccepted
		acceptedAV, _ := attributevalue.MarshalMap(&accepted)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: acceptedAV}, nil)

		err := store.RejectTrade(context.Background(), "offer-1")

		assert.ErrorIs(t, err, storage.ErrInvalidTradeState)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Terminal Race", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: offerAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledTx(0, 3))

		err := store.RejectTrade(context.Background(), "offer-1")

		assert.ErrorIs(t, err, storage.ErrInvalidTradeState)
		mockClient.AssertExpectations(t)
	})
}

func TestCancelTrade(t *testing.T) {
	offer := &models.TradeOffer{
		OfferID:       "offer-1",
		OffererID:     "offerer",
		OfferedItemID: "item-1",
		Status:        models.TradePending,
		ExpiresAt:     time.Now().Add(time.Hour),
	}
	offerAV, _ := attributevalue.MarshalMap(offer)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: offerAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CancelTrade(context.Background(), "offerer", "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Only Offerer May Cancel", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: offerAV}, nil)

		err := store.CancelTrade(context.Background(), "receiver", "offer-1")

		assert.ErrorIs(t, err, storage.ErrNotOwner)
		mockClient.AssertExpectations(t)
	})
}

func TestExpireTrade(t *testing.T) {
	offer := &models.TradeOffer{
		OfferID:       "offer-1",
		OffererID:     "offerer",
		OfferedItemID: "item-1",
		Status:        models.TradePending,
		ExpiresAt:     time.Now().Add(-time.Hour),
	}
	offerAV, _ := attributevalue.MarshalMap(offer)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: offerAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.ExpireTrade(context.Background(), "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Terminal Is A No-Op", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		cancelled := *offer
		cancelled.Status = models.TradeCancelled
		cancelledAV, _ := attributevalue.MarshalMap(&cancelled)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: cancelledAV}, nil)

		err := store.ExpireTrade(context.Background(), "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Terminal Race Is A No-Op", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: offerAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledTx(0, 2))

		err := store.ExpireTrade(context.Background(), "offer-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})
}
