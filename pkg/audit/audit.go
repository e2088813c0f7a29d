// Package audit publishes audit events out of band. Recording is
// fire-and-forget: a publish failure is logged and never turns a successful
// business operation into a failure.
package audit

import (
	"context"
	"time"
)

// Result marks whether the audited operation succeeded.
type Result string

const (
	ResultOK     Result = "ok"
	ResultDenied Result = "denied"
	ResultError  Result = "error"
)

// Event is one auditable action performed by an account on a resource.
type Event struct {
	AccountID      string    `json:"account_id"`
	Action         string    `json:"action"`
	Resource       string    `json:"resource"`
	Detail         string    `json:"detail,omitempty"`
	Result         Result    `json:"result"`
	TransactionID  string    `json:"transaction_id,omitempty"`
	Amount         int64     `json:"amount,omitempty"`
	CounterpartyID string    `json:"counterparty_id,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
}

// Recorder defines the interface for a component that records audit events
// for asynchronous persistence.
type Recorder interface {
	// Record enqueues an audit event. Implementations must not block the
	// business operation on delivery and must swallow (but log) failures.
	Record(ctx context.Context, event Event)
}
