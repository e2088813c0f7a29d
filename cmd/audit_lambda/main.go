package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gamebay/marketplace/pkg/audit"
	"github.com/gamebay/marketplace/pkg/config"
	"github.com/gamebay/marketplace/pkg/models"
	"github.com/gamebay/marketplace/pkg/storage"
	dydbstore "github.com/gamebay/marketplace/pkg/storage/dynamodb"
	"github.com/google/uuid"
)

var store storage.AuditLog

func init() {
	cfg := config.MustLoad()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store = dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Audit: cfg.Tables.Audit,
	})
}

// entryID derives a stable id from the SQS message id and the row's role.
// SQS delivers at least once; a redelivered message must produce the same ids
// so the attribute_not_exists(entry_id) guard catches the duplicates.
func entryID(messageID, role string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(messageID+"#"+role)).String()
}

// toEntries converts one audit event into its table rows. A purchase becomes
// a debit/credit pair, like a double-entry ledger; everything else is one row.
func toEntries(messageID string, event audit.Event) []models.AuditEntry {
	base := models.AuditEntry{
		TransactionID: event.TransactionID,
		AccountID:     event.AccountID,
		Action:        event.Action,
		Resource:      event.Resource,
		Detail:        event.Detail,
		Result:        string(event.Result),
		Timestamp:     event.Timestamp,
	}

	if event.Action == "listing.purchase" && event.CounterpartyID != "" {
		debit := base
		debit.EntryID = entryID(messageID, "debit")
		debit.Debit = event.Amount

		credit := base
		credit.EntryID = entryID(messageID, "credit")
		credit.AccountID = event.CounterpartyID
		credit.Credit = event.Amount

		return []models.AuditEntry{debit, credit}
	}

	base.EntryID = entryID(messageID, "entry")
	return []models.AuditEntry{base}
}

// HandleRequest processes SQS messages and persists the audit entries.
func HandleRequest(ctx context.Context, sqsEvent events.SQSEvent) error {
	for _, message := range sqsEvent.Records {
		log.Printf("Processing message %s", message.MessageId)

		var event audit.Event
		if err := json.Unmarshal([]byte(message.Body), &event); err != nil {
			// A malformed event will never parse; drop it instead of letting
			// SQS retry forever.
			log.Printf("ERROR: failed to unmarshal audit event from message %s: %v", message.MessageId, err)
			continue
		}

		if err := store.RecordAuditEntries(ctx, toEntries(message.MessageId, event)); err != nil {
			log.Printf("ERROR: failed to record audit entries for message %s: %v", message.MessageId, err)
			// Returning an error will cause SQS to retry the message, which is appropriate here.
			return err
		}
	}

	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
