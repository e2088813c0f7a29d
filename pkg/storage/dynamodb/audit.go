package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gamebay/marketplace/pkg/models"
)

const (
	auditGSI   = "gsi1pk-timestamp-index"
	auditGSIPK = "AUDIT_ENTRIES"
)

// RecordAuditEntries persists a batch of audit entries. Entries for one
// business operation are written in a single transaction so a purchase's
// debit/credit pair lands together or not at all.
func (s *Store) RecordAuditEntries(ctx context.Context, entries []models.AuditEntry) error {
	if len(entries) == 0 {
		return nil
	}

	items := make([]types.TransactWriteItem, 0, len(entries))
	for i := range entries {
		entries[i].GSI1PK = auditGSIPK
		entryAV, err := attributevalue.MarshalMap(entries[i])
		if err != nil {
			return fmt.Errorf("failed to marshal audit entry: %w", err)
		}
		items = append(items, types.TransactWriteItem{
			Put: &types.Put{
				TableName:           aws.String(s.Tables.Audit),
				Item:                entryAV,
				ConditionExpression: aws.String("attribute_not_exists(entry_id)"),
			},
		})
	}

	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		// A replayed queue message hits the entry_id guard; the entries are
		// already recorded, so this is a success.
		for i := range items {
			if cancelledAt(err, i) {
				return nil
			}
		}
		return infraErr("failed to record audit entries", err)
	}
	return nil
}

// ListAuditEntries retrieves the most recent audit entries.
func (s *Store) ListAuditEntries(ctx context.Context, limit int32) ([]models.AuditEntry, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(s.Tables.Audit),
		IndexName:              aws.String(auditGSI),
		KeyConditionExpression: aws.String("gsi1pk = :pk"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk": &types.AttributeValueMemberS{Value: auditGSIPK},
		},
		ScanIndexForward: aws.Bool(false), // Sort by timestamp in descending order
		Limit:            &limit,
	}

	result, err := s.Client.Query(ctx, input)
	if err != nil {
		return nil, infraErr("failed to query audit entries", err)
	}

	var entries []models.AuditEntry
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal audit entries: %w", err)
	}
	return entries, nil
}
