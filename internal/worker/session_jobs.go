package worker

import "context"

// PendingPublisher recomputes and publishes the pending counter
type PendingPublisher interface {
	PublishPending(ctx context.Context) error
}

// Refresher re-fetches the authoritative snapshot
type Refresher interface {
	Refresh(ctx context.Context) error
}

// PendingTickJob drives the display cadence of the pending counter.
// It never writes to the backend.
type PendingTickJob struct {
	Publisher PendingPublisher
}

// Name implements Named
func (j *PendingTickJob) Name() string { return "pending_tick" }

// Process implements Job
func (j *PendingTickJob) Process(ctx context.Context) error {
	return j.Publisher.PublishPending(ctx)
}

// ResyncJob periodically replaces the snapshot with the backend's
type ResyncJob struct {
	Refresher Refresher
}

// Name implements Named
func (j *ResyncJob) Name() string { return "resync" }

// Process implements Job
func (j *ResyncJob) Process(ctx context.Context) error {
	return j.Refresher.Refresh(ctx)
}
