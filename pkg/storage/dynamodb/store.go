package dynamodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/gamebay/marketplace/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by the store.
// Narrowing to an interface lets tests substitute a mock client.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables holds the DynamoDB table names the store operates on.
type Tables struct {
	Items       string
	Listings    string
	Trades      string
	Wallets     string
	Profiles    string
	Friendships string
	Receipts    string
	Audit       string
}

// Store implements the Storage interface using AWS DynamoDB. All
// check-then-act sequences are expressed as single TransactWriteItems calls
// with condition expressions, so concurrent callers on the same item, listing,
// offer, or wallet serialize through the store.
type Store struct {
	Client DynamoDBAPI
	Tables Tables
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables) *Store {
	return &Store{Client: client, Tables: tables}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const conditionalCheckFailed = "ConditionalCheckFailed"

// cancelledAt reports whether the transact item at index i was the one that
// failed its conditional check. TransactWriteItems reports one cancellation
// reason per transact item, in order, so the failing index identifies which
// invariant was violated.
func cancelledAt(err error, i int) bool {
	var tce *types.TransactionCanceledException
	if !errors.As(err, &tce) {
		return false
	}
	if i >= len(tce.CancellationReasons) {
		return false
	}
	code := tce.CancellationReasons[i].Code
	return code != nil && *code == conditionalCheckFailed
}

// conditionFailed reports whether err is a single-item conditional check failure.
func conditionFailed(err error) bool {
	var ccf *types.ConditionalCheckFailedException
	return errors.As(err, &ccf)
}

// infraErr tags non-business DynamoDB failures as transient store errors so
// callers can distinguish "retry with backoff" from expected outcomes.
func infraErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, storage.ErrStoreUnavailable, err)
}
