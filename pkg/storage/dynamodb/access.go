package dynamodb

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gamebay/marketplace/pkg/models"
)

// GetProfile retrieves an account's profile. A missing profile is reported as
// nil rather than an error so the access policy can fail closed on it.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal profile user ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Profiles),
		Key:       key,
	})
	if err != nil {
		return nil, infraErr("failed to get profile", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var profile models.Profile
	if err := attributevalue.UnmarshalMap(result.Item, &profile); err != nil {
		return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
	}
	return &profile, nil
}

// FriendshipPairKey builds the canonical unordered-pair key: lower id first.
// Lookups with the accounts in either order hit the same record.
func FriendshipPairKey(userA, userB string) string {
	if strings.Compare(userA, userB) > 0 {
		userA, userB = userB, userA
	}
	return userA + "#" + userB
}

// GetFriendship retrieves the friendship record between two accounts, or nil
// if none exists.
func (s *Store) GetFriendship(ctx context.Context, userA, userB string) (*models.Friendship, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"pair_key": FriendshipPairKey(userA, userB)})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal friendship key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Friendships),
		Key:       key,
	})
	if err != nil {
		return nil, infraErr("failed to get friendship", err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var friendship models.Friendship
	if err := attributevalue.UnmarshalMap(result.Item, &friendship); err != nil {
		return nil, fmt.Errorf("failed to unmarshal friendship: %w", err)
	}
	return &friendship, nil
}
