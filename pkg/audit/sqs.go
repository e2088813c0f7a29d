package audit

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// SQSAPI is the subset of the SQS client used by the recorder.
type SQSAPI interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
}

// SQSRecorder implements the Recorder interface by publishing events to an
// SQS queue. A downstream worker persists them to the audit table.
type SQSRecorder struct {
	Client   SQSAPI
	QueueURL string
}

// NewSQSRecorder creates a new SQSRecorder.
func NewSQSRecorder(client SQSAPI, queueURL string) *SQSRecorder {
	return &SQSRecorder{
		Client:   client,
		QueueURL: queueURL,
	}
}

// Make sure we conform to the interface
var _ Recorder = (*SQSRecorder)(nil)

// Record sends the event to the audit queue. Failures are logged and dropped;
// audit delivery never gates the operation being audited.
func (r *SQSRecorder) Record(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	body, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal audit event", "action", event.Action, "error", err)
		return
	}

	_, err = r.Client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(r.QueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		slog.Error("failed to publish audit event",
			"action", event.Action,
			"resource", event.Resource,
			"error", err,
		)
	}
}
