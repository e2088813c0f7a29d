package main

import (
	"context"
	"log"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gamebay/marketplace/pkg/config"
	"github.com/gamebay/marketplace/pkg/storage"
	dydbstore "github.com/gamebay/marketplace/pkg/storage/dynamodb"
)

var store storage.TradeStore

func init() {
	cfg := config.MustLoad()

	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	store = dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Items:  cfg.Tables.Items,
		Trades: cfg.Tables.Trades,
	})
}

// HandleRequest is triggered by an EventBridge Schedule. It sweeps trade
// offers whose expiry has passed but which are still stored as pending, and
// transitions each to Expired, releasing the items they hold. Offers touched
// between query and transition are skipped by the transition's own condition.
func HandleRequest(ctx context.Context) error {
	log.Println("Starting expiry sweep for overdue trade offers...")

	overdue, err := store.GetOverdueTrades(ctx, time.Now())
	if err != nil {
		log.Printf("ERROR: failed to get overdue trades: %v", err)
		return err
	}

	if len(overdue) == 0 {
		log.Println("No overdue trade offers found.")
		return nil
	}

	log.Printf("Found %d overdue trade offers. Expiring them...", len(overdue))

	for _, offer := range overdue {
		if err := store.ExpireTrade(ctx, offer.OfferID); err != nil {
			log.Printf("ERROR: failed to expire trade offer %s: %v", offer.OfferID, err)
			// Continue to the next offer, don't let one failure stop the whole batch.
			continue
		}
		log.Printf("Expired trade offer %s", offer.OfferID)
	}

	log.Println("Expiry sweep finished.")
	return nil
}

func main() {
	lambda.Start(HandleRequest)
}
