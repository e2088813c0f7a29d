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

// PostOffer atomically trade-locks the offered item and creates a PENDING
// offer with a 7-day expiry.
func (s *Store) PostOffer(ctx context.Context, offererID, itemID string) (*models.TradeOffer, error) {
	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != offererID {
		return nil, storage.ErrNotOwner
	}
	if item.LockState != models.LockFree {
		return nil, storage.ErrAlreadyLocked
	}

	now := time.Now()
	offer := &models.TradeOffer{
		OfferID:       uuid.New().String(),
		OffererID:     offererID,
		OfferedItemID: itemID,
		Status:        models.TradePending,
		CreatedAt:     now,
		ExpiresAt:     now.Add(models.TradeOfferTTL),
		UpdatedAt:     now,
	}

	offerAV, err := attributevalue.MarshalMap(offer)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal trade offer: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 0: trade-lock the offered item.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"instance_id": &types.AttributeValueMemberS{Value: itemID},
					},
					UpdateExpression:    aws.String("SET lock_state = :locked, lock_ref = :ref, version = version + :inc"),
					ConditionExpression: aws.String("owner_id = :offerer AND lock_state = :free"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":locked":  &types.AttributeValueMemberS{Value: string(models.LockTradeLocked)},
						":ref":     &types.AttributeValueMemberS{Value: offer.OfferID},
						":offerer": &types.AttributeValueMemberS{Value: offererID},
						":free":    &types.AttributeValueMemberS{Value: string(models.LockFree)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 1: create the offer record.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Trades),
					Item:                offerAV,
					ConditionExpression: aws.String("attribute_not_exists(offer_id)"),
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if cancelledAt(err, 0) {
			return nil, storage.ErrAlreadyLocked
		}
		return nil, infraErr("failed to execute trade offer transaction", err)
	}

	return offer, nil
}
