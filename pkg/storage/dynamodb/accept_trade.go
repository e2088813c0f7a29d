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

// AcceptTrade completes a countered, pending offer: both items swap owners and
// come back unlocked, and the offer turns ACCEPTED, all in one transaction.
// The PENDING condition on the offer record makes a second acceptance (or an
// accept racing a cancel/expiry) fail cleanly with ErrInvalidTradeState.
func (s *Store) AcceptTrade(ctx context.Context, offerID string) (*models.TradeOffer, error) {
	// GetTradeOffer applies lazy expiry, so an overdue offer reads as EXPIRED
	// here and is rejected before any write is attempted.
	offer, err := s.GetTradeOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if offer.Status != models.TradePending || offer.RequestedItemID == "" {
		return nil, storage.ErrInvalidTradeState
	}

	now := time.Now()
	nowAV, err := attributevalue.Marshal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	// swap moves one item to its new owner and frees it, conditional on the
	// lock this offer holds.
	swap := func(itemID, fromAcct, toAcct string) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.Tables.Items),
				Key: map[string]types.AttributeValue{
					"instance_id": &types.AttributeValueMemberS{Value: itemID},
				},
				UpdateExpression:    aws.String("SET owner_id = :to_acct, lock_state = :free, version = version + :inc REMOVE lock_ref"),
				ConditionExpression: aws.String("owner_id = :from_acct AND lock_state = :locked AND lock_ref = :ref"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":to_acct":   &types.AttributeValueMemberS{Value: toAcct},
					":from_acct": &types.AttributeValueMemberS{Value: fromAcct},
					":free":      &types.AttributeValueMemberS{Value: string(models.LockFree)},
					":locked":    &types.AttributeValueMemberS{Value: string(models.LockTradeLocked)},
					":ref":       &types.AttributeValueMemberS{Value: offerID},
					":inc":       &types.AttributeValueMemberN{Value: "1"},
				},
			},
		}
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 0: PENDING -> ACCEPTED. The sole winner gate.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Trades),
					Key: map[string]types.AttributeValue{
						"offer_id": &types.AttributeValueMemberS{Value: offerID},
					},
					UpdateExpression:    aws.String("SET #status = :accepted, updated_at = :now"),
					ConditionExpression: aws.String("#status = :pending"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":accepted": &types.AttributeValueMemberS{Value: string(models.TradeAccepted)},
						":pending":  &types.AttributeValueMemberS{Value: string(models.TradePending)},
						":now":      nowAV,
					},
				},
			},
			// Operation 1: offered item moves offerer -> receiver.
			swap(offer.OfferedItemID, offer.OffererID, offer.ReceiverID),
			// Operation 2: counter item moves receiver -> offerer.
			swap(offer.RequestedItemID, offer.ReceiverID, offer.OffererID),
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if cancelledAt(err, 0) {
			return nil, storage.ErrInvalidTradeState
		}
		if cancelledAt(err, 1) || cancelledAt(err, 2) {
			// The offer was pending but an item no longer carries this
			// offer's lock. That breaks the offer lifetime invariant.
			return nil, storage.ErrOwnershipMismatch
		}
		return nil, infraErr("failed to execute trade acceptance transaction", err)
	}

	offer.Status = models.TradeAccepted
	offer.UpdatedAt = now
	return offer, nil
}
