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

// RejectTrade closes a pending offer as REJECTED, releasing every item it holds.
func (s *Store) RejectTrade(ctx context.Context, offerID string) error {
	offer, err := s.GetTradeOffer(ctx, offerID)
	if err != nil {
		return err
	}
	return s.closeTrade(ctx, offer, models.TradeRejected)
}

// CancelTrade is rejection restricted to the original offerer, recorded as
// CANCELLED.
func (s *Store) CancelTrade(ctx context.Context, offererID, offerID string) error {
	offer, err := s.GetTradeOffer(ctx, offerID)
	if err != nil {
		return err
	}
	if offer.OffererID != offererID {
		return storage.ErrNotOwner
	}
	return s.closeTrade(ctx, offer, models.TradeCancelled)
}

// ExpireTrade closes an overdue pending offer as EXPIRED. Losing the terminal
// race to another transition is not an error: the offer is terminal either way.
func (s *Store) ExpireTrade(ctx context.Context, offerID string) error {
	offer, err := s.getTradeOfferRaw(ctx, offerID)
	if err != nil {
		return err
	}
	err = s.closeTrade(ctx, offer, models.TradeExpired)
	if err == storage.ErrInvalidTradeState {
		return nil
	}
	return err
}

// closeTrade performs a terminal transition out of PENDING, unlocking the
// offered item and the counter item (when present) in the same transaction.
// Each terminal state pairs its status change with every unlock; an offer can
// never terminate while leaving an item trade-locked.
func (s *Store) closeTrade(ctx context.Context, offer *models.TradeOffer, terminal models.TradeStatus) error {
	if !terminal.Terminal() {
		return fmt.Errorf("%q is not a terminal trade status", terminal)
	}
	if offer.Status != models.TradePending {
		return storage.ErrInvalidTradeState
	}

	nowAV, err := attributevalue.Marshal(time.Now())
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	unlock := func(itemID string) types.TransactWriteItem {
		return types.TransactWriteItem{
			Update: &types.Update{
				TableName: aws.String(s.Tables.Items),
				Key: map[string]types.AttributeValue{
					"instance_id": &types.AttributeValueMemberS{Value: itemID},
				},
				UpdateExpression:    aws.String("SET lock_state = :free, version = version + :inc REMOVE lock_ref"),
				ConditionExpression: aws.String("lock_state = :locked AND lock_ref = :ref"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":free":   &types.AttributeValueMemberS{Value: string(models.LockFree)},
					":locked": &types.AttributeValueMemberS{Value: string(models.LockTradeLocked)},
					":ref":    &types.AttributeValueMemberS{Value: offer.OfferID},
					":inc":    &types.AttributeValueMemberN{Value: "1"},
				},
			},
		}
	}

	items := []types.TransactWriteItem{
		{
			// Operation 0: PENDING -> terminal.
			Update: &types.Update{
				TableName: aws.String(s.Tables.Trades),
				Key: map[string]types.AttributeValue{
					"offer_id": &types.AttributeValueMemberS{Value: offer.OfferID},
				},
				UpdateExpression:    aws.String("SET #status = :terminal, updated_at = :now"),
				ConditionExpression: aws.String("#status = :pending"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":terminal": &types.AttributeValueMemberS{Value: string(terminal)},
					":pending":  &types.AttributeValueMemberS{Value: string(models.TradePending)},
					":now":      nowAV,
				},
			},
		},
		unlock(offer.OfferedItemID),
	}
	if offer.RequestedItemID != "" {
		items = append(items, unlock(offer.RequestedItemID))
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if cancelledAt(err, 0) {
			// Another terminal transition won.
			return storage.ErrInvalidTradeState
		}
		if cancelledAt(err, 1) || cancelledAt(err, 2) {
			return storage.ErrOwnershipMismatch
		}
		return infraErr("failed to execute trade close transaction", err)
	}

	return nil
}
