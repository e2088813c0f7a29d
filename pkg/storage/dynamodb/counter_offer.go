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
)

// CounterOffer attaches the receiver's item to a pending, not-yet-countered
// offer, trade-locking it under the same offer id. The receiver identity is
// fixed by this call: whoever counters becomes the offer's receiver.
func (s *Store) CounterOffer(ctx context.Context, receiverID, offerID, itemID string) (*models.TradeOffer, error) {
	offer, err := s.GetTradeOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status != models.TradePending || offer.RequestedItemID != "" {
		return nil, storage.ErrInvalidTradeState
	}
	if offer.OffererID == receiverID {
		// Countering your own offer makes the swap a no-op.
		return nil, storage.ErrInvalidTradeState
	}

	item, err := s.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != receiverID {
		return nil, storage.ErrNotOwner
	}
	if item.LockState != models.LockFree {
		return nil, storage.ErrAlreadyLocked
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 0: attach the counter item to the offer.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Trades),
					Key: map[string]types.AttributeValue{
						"offer_id": &types.AttributeValueMemberS{Value: offerID},
					},
					UpdateExpression:    aws.String("SET receiver_id = :receiver, requested_item_id = :item, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending AND attribute_not_exists(requested_item_id)"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":receiver": &types.AttributeValueMemberS{Value: receiverID},
						":item":     &types.AttributeValueMemberS{Value: itemID},
						":pending":  &types.AttributeValueMemberS{Value: string(models.TradePending)},
						":now":      nowAV,
					},
				},
			},
			{
				// Operation 1: trade-lock the counter item.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"instance_id": &types.AttributeValueMemberS{Value: itemID},
					},
					UpdateExpression:    aws.String("SET lock_state = :locked, lock_ref = :ref, version = version + :inc"),
					ConditionExpression: aws.String("owner_id = :receiver AND lock_state = :free"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":locked":   &types.AttributeValueMemberS{Value: string(models.LockTradeLocked)},
						":ref":      &types.AttributeValueMemberS{Value: offerID},
						":receiver": &types.AttributeValueMemberS{Value: receiverID},
						":free":     &types.AttributeValueMemberS{Value: string(models.LockFree)},
						":inc":      &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		switch {
		case cancelledAt(err, 0):
			return nil, storage.ErrInvalidTradeState
		case cancelledAt(err, 1):
			return nil, storage.ErrAlreadyLocked
		}
		return nil, infraErr("failed to execute counter offer transaction", err)
	}

	offer.ReceiverID = receiverID
	offer.RequestedItemID = itemID
	offer.UpdatedAt = now
	return offer, nil
}
