package dynamodb

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
	"github.com/google/uuid"
)

// listingsGSIPK partitions the status index so open listings can be queried
// without a table scan.
const listingsGSIPK = "LISTINGS"

// CreateListing atomically locks the item as LISTED and creates a new OPEN
// listing record. The pre-read picks the right error kind; the transaction's
// condition expressions close the race against concurrent listers and traders.
func (s *Store) CreateListing(ctx context.Context, sellerID, itemID string, price int64) (*models.Listing, error) {
	if price <= 0 {
		return nil, storage.ErrInvalidPrice
	}

	// 1. Read the item to distinguish "not yours" from "already reserved".
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != sellerID {
		return nil, storage.ErrNotOwner
	}
	if item.LockState != models.LockFree {
		return nil, storage.ErrAlreadyLocked
	}

	// 2. Build the listing record.
	listing := &models.Listing{
		ListingID:      uuid.New().String(),
		ItemInstanceID: itemID,
		SellerID:       sellerID,
		Price:          price,
		Status:         models.ListingOpen,
		CreatedAt:      time.Now(),
		GSI1PK:         listingsGSIPK,
	}

	listingAV, err := attributevalue.MarshalMap(listing)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing: %w", err)
	}

	// 3. Lock the item and create the listing in one transaction.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 0: lock the item as LISTED.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"instance_id": &types.AttributeValueMemberS{Value: itemID},
					},
					UpdateExpression:    aws.String("SET lock_state = :listed, lock_ref = :ref, version = version + :inc"),
					ConditionExpression: aws.String("owner_id = :seller AND lock_state = :free"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":listed": &types.AttributeValueMemberS{Value: string(models.LockListed)},
						":ref":    &types.AttributeValueMemberS{Value: listing.ListingID},
						":seller": &types.AttributeValueMemberS{Value: sellerID},
						":free":   &types.AttributeValueMemberS{Value: string(models.LockFree)},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 1: create the listing record.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Listings),
					Item:                listingAV,
					ConditionExpression: aws.String("attribute_not_exists(listing_id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if cancelledAt(err, 0) {
			// Lost the race: the item was re-owned or locked after the pre-read.
			return nil, storage.ErrAlreadyLocked
		}
		return nil, infraErr("failed to execute listing transaction", err)
	}

	return listing, nil
}
