package audit

import "context"

// NoOpRecorder is a recorder that does nothing. Used in tests and in workers
// that must not audit their own writes.
type NoOpRecorder struct{}

// Record does nothing.
func (NoOpRecorder) Record(ctx context.Context, event Event) {}
