package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
)

const openListingsGSI = "gsi1pk-status-index"

// GetListing retrieves a listing from DynamoDB by its id.
func (s *Store) GetListing(ctx context.Context, listingID string) (*models.Listing, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"listing_id": listingID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal listing id: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Listings),
		Key:       key,
	})
	if err != nil {
		return nil, infraErr("failed to get listing", err)
	}
	if result.Item == nil {
		return nil, storage.ErrListingNotFound
	}

	var listing models.Listing
	if err := attributevalue.UnmarshalMap(result.Item, &listing); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listing: %w", err)
	}
	return &listing, nil
}

// ListOpenListings retrieves all listings currently in OPEN status.
func (s *Store) ListOpenListings(ctx context.Context) ([]models.Listing, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Listings),
		IndexName:              aws.String(openListingsGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk AND #status = :open"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":   &types.AttributeValueMemberS{Value: listingsGSIPK},
			":open": &types.AttributeValueMemberS{Value: string(models.ListingOpen)},
		},
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, infraErr("failed to query open listings", err)
	}

	var listings []models.Listing
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &listings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal listings: %w", err)
	}
	return listings, nil
}
