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

// Purchase executes the purchase transaction: close the listing, move funds
// from buyer to seller, transfer item ownership, and record a receipt in a
// single TransactWriteItems call. The listing's OPEN condition guarantees that
// exactly one purchase can ever complete against it; every racing attempt
// observes ErrListingAlreadyClosed.
//
// requestToken is client-generated. Replaying a settled token returns the
// original receipt alongside ErrAlreadyProcessed instead of charging twice.
func (s *Store) Purchase(ctx context.Context, buyerID, listingID, requestToken string) (*models.PurchaseReceipt, error) {
	// 1. Pre-read the listing and both wallets. The reads pick the right error
	// kind for the common failures; the transaction conditions re-check
	// everything, so stale reads lose the race instead of corrupting state.
	listing, err := s.GetListing(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != models.ListingOpen {
		// The listing may be closed because this very token already settled
		// it. Replays must get the original receipt, not a closed-listing
		// error, so consult the receipts table before giving up.
		original, getErr := s.getReceipt(ctx, requestToken)
		if getErr != nil {
			return nil, getErr
		}
		if original != nil {
			return original, storage.ErrAlreadyProcessed
		}
		return nil, storage.ErrListingAlreadyClosed
	}
	if listing.SellerID == buyerID {
		return nil, storage.ErrSelfPurchase
	}

	buyerWallet, err := s.GetWallet(ctx, buyerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get buyer's wallet: %w", err)
	}
	if buyerWallet.Balance < listing.Price {
		return nil, storage.ErrInsufficientFunds
	}
	sellerWallet, err := s.GetWallet(ctx, listing.SellerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get seller's wallet: %w", err)
	}

	// 2. Build the receipt that settles this request token.
	receipt := &models.PurchaseReceipt{
		RequestToken:   requestToken,
		TransactionID:  uuid.New().String(),
		ListingID:      listingID,
		BuyerID:        buyerID,
		SellerID:       listing.SellerID,
		ItemInstanceID: listing.ItemInstanceID,
		Amount:         listing.Price,
		BuyerBalance:   buyerWallet.Balance - listing.Price,
		CreatedAt:      time.Now(),
	}
	receiptAV, err := attributevalue.MarshalMap(receipt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal receipt: %w", err)
	}

	amountAV, err := attributevalue.Marshal(listing.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal amount: %w", err)
	}

	// 3. Construct the TransactWriteItems input. Item order is significant:
	// cancellation reasons are reported per transact item, and the failing
	// index selects the error kind below.
	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				// Operation 0: close the listing. The sole winner gate.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Listings),
					Key: map[string]types.AttributeValue{
						"listing_id": &types.AttributeValueMemberS{Value: listingID},
					},
					UpdateExpression:    aws.String("SET #status = :sold"),
					ConditionExpression: aws.String("#status = :open"),
					ExpressionAttributeNames: map[string]string{
						"#status": "status",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":sold": &types.AttributeValueMemberS{Value: string(models.ListingSold)},
						":open": &types.AttributeValueMemberS{Value: string(models.ListingOpen)},
					},
				},
			},
			{
				// Operation 1: debit the buyer.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Wallets),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: buyerID},
					},
					UpdateExpression:    aws.String("SET balance = balance - :amount, version = version + :inc"),
					ConditionExpression: aws.String("balance >= :amount AND version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", buyerWallet.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 2: credit the seller.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Wallets),
					Key: map[string]types.AttributeValue{
						"user_id": &types.AttributeValueMemberS{Value: listing.SellerID},
					},
					UpdateExpression:    aws.String("SET balance = balance + :amount, version = version + :inc"),
					ConditionExpression: aws.String("version = :version"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":amount":  amountAV,
						":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", sellerWallet.Version)},
						":inc":     &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 3: transfer the item to the buyer, unlocked.
				Update: &types.Update{
					TableName: aws.String(s.Tables.Items),
					Key: map[string]types.AttributeValue{
						"instance_id": &types.AttributeValueMemberS{Value: listing.ItemInstanceID},
					},
					UpdateExpression:    aws.String("SET owner_id = :buyer, lock_state = :free, version = version + :inc REMOVE lock_ref"),
					ConditionExpression: aws.String("owner_id = :seller AND lock_state = :listed AND lock_ref = :ref"),
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":buyer":  &types.AttributeValueMemberS{Value: buyerID},
						":seller": &types.AttributeValueMemberS{Value: listing.SellerID},
						":free":   &types.AttributeValueMemberS{Value: string(models.LockFree)},
						":listed": &types.AttributeValueMemberS{Value: string(models.LockListed)},
						":ref":    &types.AttributeValueMemberS{Value: listingID},
						":inc":    &types.AttributeValueMemberN{Value: "1"},
					},
				},
			},
			{
				// Operation 4: settle the request token.
				Put: &types.Put{
					TableName:           aws.String(s.Tables.Receipts),
					Item:                receiptAV,
					ConditionExpression: aws.String("attribute_not_exists(request_token)"),
				},
			},
		},
	}

	// 4. Execute the transaction.
	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		switch {
		case cancelledAt(err, 4):
			// Duplicate request token: hand back the original result. Checked
			// before the listing condition because on a true replay both fail
			// and the token hit is the one that matters.
			original, getErr := s.getReceipt(ctx, requestToken)
			if getErr != nil {
				return nil, fmt.Errorf("duplicate purchase request, failed to load original receipt: %w", getErr)
			}
			if original == nil {
				return nil, fmt.Errorf("duplicate purchase request, original receipt missing for token %s", requestToken)
			}
			return original, storage.ErrAlreadyProcessed
		case cancelledAt(err, 0):
			return nil, storage.ErrListingAlreadyClosed
		case cancelledAt(err, 1):
			return nil, storage.ErrInsufficientFunds
		case cancelledAt(err, 3):
			// The listing was open but the item no longer matches it. This is
			// an invariant violation, not an expected outcome.
			return nil, storage.ErrOwnershipMismatch
		}
		return nil, infraErr("failed to execute purchase transaction", err)
	}

	return receipt, nil
}

// getReceipt retrieves a purchase receipt by its request token. A missing
// receipt is (nil, nil).
func (s *Store) getReceipt(ctx context.Context, requestToken string) (*models.PurchaseReceipt, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"request_token": requestToken})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request token: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.Tables.Receipts),
		Key:       key,
	})
	if err != nil {
		return nil, infraErr("failed to get receipt", err)
	}
	if len(result.Item) == 0 {
		return nil, nil
	}

	var receipt models.PurchaseReceipt
	if err := attributevalue.UnmarshalMap(result.Item, &receipt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal receipt: %w", err)
	}
	return &receipt, nil
}
