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

const ownerIDIndex = "owner_id-index"

// GetItem retrieves an item instance from DynamoDB by its id.
func (s *Store) GetItem(ctx context.Context, itemID string) (*models.ItemInstance, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"instance_id": itemID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Items),
		Key:       key,
	})
	if err != nil {
		return nil, infraErr("failed to get item", err)
	}
	if result.Item == nil {
		return nil, storage.ErrItemNotFound
	}

	var item models.ItemInstance
	if err := attributevalue.UnmarshalMap(result.Item, &item); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item: %w", err)
	}
	return &item, nil
}

// ListItemsByOwner retrieves every item instance owned by an account.
func (s *Store) ListItemsByOwner(ctx context.Context, ownerID string) ([]models.ItemInstance, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Items),
		IndexName:              aws.String(ownerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :owner"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: ownerID},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, infraErr("failed to query items by owner", err)
	}

	var items []models.ItemInstance
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &items); err != nil {
		return nil, fmt.Errorf("failed to unmarshal items: %w", err)
	}
	return items, nil
}

// GrantItem creates a new, unlocked item instance owned by ownerID.
func (s *Store) GrantItem(ctx context.Context, ownerID, gameID string) (*models.ItemInstance, error) {
	item := &models.ItemInstance{
		InstanceID: uuid.New().String(),
		GameID:     gameID,
		OwnerID:    ownerID,
		LockState:  models.LockFree,
		AcquiredAt: time.Now(),
		Version:    1,
	}

	itemAV, err := attributevalue.MarshalMap(item)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal item: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.Tables.Items),
		Item:                itemAV,
		ConditionExpression: aws.String("attribute_not_exists(instance_id)"),
	})
	if err != nil {
		return nil, infraErr("failed to create item", err)
	}
	return item, nil
}

// TransferOwnership moves the item from one account to another, conditional on
// the current owner matching. The business flows embed this same effect inside
// their own transactions; a condition failure here means the caller's view of
// ownership was wrong.
func (s *Store) TransferOwnership(ctx context.Context, itemID, from, to string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Items),
		Key: map[string]types.AttributeValue{
			"instance_id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:    aws.String("SET owner_id = :to_acct, version = version + :inc"),
		ConditionExpression: aws.String("owner_id = :from_acct"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":to_acct":   &types.AttributeValueMemberS{Value: to},
			":from_acct": &types.AttributeValueMemberS{Value: from},
			":inc":       &types.AttributeValueMemberN{Value: "1"},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return storage.ErrOwnershipMismatch
		}
		return infraErr("failed to transfer ownership", err)
	}
	return nil
}

// LockItem sets the item's lock state, conditional on it being FREE.
func (s *Store) LockItem(ctx context.Context, itemID string, kind models.LockState, lockRef string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Items),
		Key: map[string]types.AttributeValue{
			"instance_id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:    aws.String("SET lock_state = :kind, lock_ref = :ref, version = version + :inc"),
		ConditionExpression: aws.String("attribute_exists(instance_id) AND lock_state = :free"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":kind": &types.AttributeValueMemberS{Value: string(kind)},
			":ref":  &types.AttributeValueMemberS{Value: lockRef},
			":free": &types.AttributeValueMemberS{Value: string(models.LockFree)},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			return storage.ErrAlreadyLocked
		}
		return infraErr("failed to lock item", err)
	}
	return nil
}

// UnlockItem returns the item to FREE. Idempotent for the lock holder: the
// condition passes both while the ref still holds the lock and after the item
// is already free.
func (s *Store) UnlockItem(ctx context.Context, itemID, lockRef string) error {
	input := &dynamodb.UpdateItemInput{
		TableName: aws.String(s.Tables.Items),
		Key: map[string]types.AttributeValue{
			"instance_id": &types.AttributeValueMemberS{Value: itemID},
		},
		UpdateExpression:    aws.String("SET lock_state = :free, version = version + :inc REMOVE lock_ref"),
		ConditionExpression: aws.String("lock_ref = :ref OR lock_state = :free"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":free": &types.AttributeValueMemberS{Value: string(models.LockFree)},
			":ref":  &types.AttributeValueMemberS{Value: lockRef},
			":inc":  &types.AttributeValueMemberN{Value: "1"},
		},
	}

	_, err := s.Client.UpdateItem(ctx, input)
	if err != nil {
		if conditionFailed(err) {
			// Someone else holds the lock; the caller's context is stale.
			return storage.ErrAlreadyLocked
		}
		return infraErr("failed to unlock item", err)
	}
	return nil
}
