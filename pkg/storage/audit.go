package storage

import (
	"context"

	"github.com/gamebay/marketplace/pkg/models"
)

// AuditLog defines the privileged interface for persisting audit entries.
// It is consumed by the audit queue worker, not by request handlers.
type AuditLog interface {
	// RecordAuditEntries persists a batch of audit entries.
	RecordAuditEntries(ctx context.Context, entries []models.AuditEntry) error
}

// AuditReader defines the interface for reading recent audit entries.
type AuditReader interface {
	// ListAuditEntries retrieves the most recent audit entries.
	ListAuditEntries(ctx context.Context, limit int32) ([]models.AuditEntry, error)
}
