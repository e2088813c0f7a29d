package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/gamebay/marketplace/pkg/audit"
	"github.com/gamebay/marketplace/pkg/config"
	"github.com/gamebay/marketplace/pkg/handlers"
	dydbstore "github.com/gamebay/marketplace/pkg/storage/dynamodb"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// AWS Session
	awsCfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	dbClient := dynamodb.NewFromConfig(awsCfg)
	store := dydbstore.New(dbClient, dydbstore.Tables{
		Items:       cfg.Tables.Items,
		Listings:    cfg.Tables.Listings,
		Trades:      cfg.Tables.Trades,
		Wallets:     cfg.Tables.Wallets,
		Profiles:    cfg.Tables.Profiles,
		Friendships: cfg.Tables.Friendships,
		Receipts:    cfg.Tables.Receipts,
		Audit:       cfg.Tables.Audit,
	})

	// Audit recording is out of band; without a queue URL it is disabled.
	var recorder audit.Recorder = audit.NoOpRecorder{}
	if cfg.Audit.QueueURL != "" {
		recorder = audit.NewSQSRecorder(sqs.NewFromConfig(awsCfg), cfg.Audit.QueueURL)
	} else {
		logger.Warn("AUDIT_SQS_QUEUE_URL not set, audit recording disabled")
	}

	handler := handlers.NewApiHandler(store, recorder)
	router := handlers.NewRouter(handler, logger)

	logger.Info("starting server", "addr", cfg.Server.Address())

	if err := http.ListenAndServe(cfg.Server.Address(), router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
