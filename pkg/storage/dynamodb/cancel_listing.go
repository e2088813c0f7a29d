package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
)

// CancelListing atomically sets the listing CANCELLED and returns the item to
// FREE. The status change and the unlock ride in one transaction, so no reader
// ever sees an unlocked item under an open listing or the reverse.
func (s *Store) CancelListing(ctx context.Context, sellerID, listingID string) error {
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return storage.ErrNotOwner
	}
	if listing.Status != models.ListingOpen {
		return storage.ErrListingAlreadyClosed
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 0: close the listing.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Listings),
					Key: map[string]types.AttributeValue{
						"listing_id": &types.AttributeValueMemberS{Value: listingID},
					},
					UpdateExpression:    aws.String("SET #status = :cancelled"),
					ConditionExpression: aws.String("#status = :open AND seller_id = :seller"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":cancelled": &types.AttributeValueMemberS{Value: string(models.ListingCancelled)},
						":open":      &types.AttributeValueMemberS{Value: string(models.ListingOpen)},
						":seller":    &types.AttributeValueMemberS{Value: sellerID},
					},
				},
			},
			{
				// Operation 1: release the item lock held by this listing.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"instance_id": &types.AttributeValueMemberS{Value: listing.ItemInstanceID},
					},
					UpdateExpression:    aws.String("SET lock_state = :free, version = version + :inc REMOVE lock_ref"),
					ConditionExpression: aws.String("lock_state = :listed AND lock_ref = :ref"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":free":   &types.AttributeValueMemberS{Value: string(models.LockFree)},
						":listed": &types.AttributeValueMemberS{Value: string(models.LockListed)},
						":ref":    &types.AttributeValueMemberS{Value: listingID},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if cancelledAt(err, 0) || cancelledAt(err, 1) {
			// A concurrent purchase or cancel closed the listing first.
			return storage.ErrListingAlreadyClosed
		}
		return infraErr("failed to execute cancellation transaction", err)
	}

	return nil
}
