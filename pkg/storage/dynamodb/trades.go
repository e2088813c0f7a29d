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

const tradeStatusGSI = "status-expires_at-index"

// GetTradeOffer retrieves a trade offer, applying lazy expiry: an overdue
// PENDING offer is transitioned to EXPIRED (with its item unlocks) before the
// result is returned. Expiry precision is advisory; a just-expired offer may
// still read PENDING to callers that raced this evaluation.
func (s *Store) GetTradeOffer(ctx context.Context, offerID string) (*models.TradeOffer, error) {
	offer, err := s.getTradeOfferRaw(ctx, offerID)
	if err != nil {
		return nil, err
	}

	if offer.Expired(time.Now()) {
		if err := s.ExpireTrade(ctx, offerID); err != nil {
			return nil, fmt.Errorf("failed to expire overdue offer: %w", err)
		}
		return s.getTradeOfferRaw(ctx, offerID)
	}

	return offer, nil
}

// getTradeOfferRaw reads the stored offer without the expiry check.
func (s *Store) getTradeOfferRaw(ctx context.Context, offerID string) (*models.TradeOffer, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"offer_id": offerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Trades),
		Key:       key,
	})
	if err != nil {
		return nil, infraErr("failed to get trade offer", err)
	}
	if result.Item == nil {
		return nil, storage.ErrTradeNotFound
	}

	var offer models.TradeOffer
	if err := attributevalue.UnmarshalMap(result.Item, &offer); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trade offer: %w", err)
	}
	return &offer, nil
}

// ListActiveTrades retrieves all offers currently in PENDING status.
func (s *Store) ListActiveTrades(ctx context.Context) ([]models.TradeOffer, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Trades),
		IndexName:              aws.String(tradeStatusGSI),
		KeyConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.TradePending)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, infraErr("failed to query active trades", err)
	}

	var offers []models.TradeOffer
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal trade offers: %w", err)
	}
	return offers, nil
}

// GetOverdueTrades retrieves PENDING offers whose expiry passed before cutoff.
func (s *Store) GetOverdueTrades(ctx context.Context, cutoff time.Time) ([]models.TradeOffer, error) {
	cutoffStr, err := cutoff.MarshalText()
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cutoff time: %w", err)
	}

	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Trades),
		IndexName:              aws.String(tradeStatusGSI),
		KeyConditionExpression: aws.String("#status = :pending AND expires_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.TradePending)},
			":cutoff":  &types.AttributeValueMemberS{Value: string(cutoffStr)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, infraErr("failed to query overdue trades", err)
	}

	var offers []models.TradeOffer
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &offers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal overdue trades: %w", err)
	}
	return offers, nil
}
