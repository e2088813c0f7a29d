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

func TestCancelListing(t *testing.T) {
	listing := &models.Listing{
		ListingID:      "listing-1",
		ItemInstanceID: "item-1",
		SellerID:       "seller",
		Price:          100,
		Status:         models.ListingOpen,
	}
	listingAV, _ := attributevalue.MarshalMap(listing)

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: listingAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.AnythingOfType("*dynamodb.TransactWriteItemsInput")).Once().Return(&dynamodb.TransactWriteItemsOutput{}, nil)

		err := store.CancelListing(context.Background(), "seller", "listing-1")

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Listing Not Found", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{}, nil)

		err := store.CancelListing(context.Background(), "seller", "listing-1")

		assert.ErrorIs(t, err, storage.ErrListingNotFound)
		mockClient.AssertExpectations(t)
	})

	t.Run("Not Owner", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: listingAV}, nil)

		err := store.CancelListing(context.Background(), "intruder", "listing-1")

		assert.ErrorIs(t, err, storage.ErrNotOwner)
		mockClient.AssertExpectations(t)
	})

	t.Run("Already Closed", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		sold := *listing
		sold.Status = models.ListingSold
		soldAV, _ := attributevalue.MarshalMap(&sold)
		mockClient.On("GetItem", mock.Anything, mock.Anything).Return(&dynamodb.GetItemOutput{Item: soldAV}, nil)

		err := store.CancelListing(context.Background(), "seller", "listing-1")

		assert.ErrorIs(t, err, storage.ErrListingAlreadyClosed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Lost Race To Buyer", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: listingAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, canceledTx(0, 2))

		err := store.CancelListing(context.Background(), "seller", "listing-1")

		assert.ErrorIs(t, err, storage.ErrListingAlreadyClosed)
		mockClient.AssertExpectations(t)
	})

	t.Run("Transaction Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := &Store{Client: mockClient, Tables: testTables}

		mockClient.On("GetItem", mock.Anything, mock.Anything).Once().Return(&dynamodb.GetItemOutput{Item: listingAV}, nil)
		mockClient.On("TransactWriteItems", mock.Anything, mock.Anything).Return(nil, errors.New("transaction failed"))

		err := store.CancelListing(context.Background(), "seller", "listing-1")

		assert.ErrorIs(t, err, storage.ErrStoreUnavailable)
		assert.Contains(t, err.Error(), "failed to execute cancellation transaction")
		mockClient.AssertExpectations(t)
	})
}
