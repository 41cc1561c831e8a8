package audit

import "context"

// Recorder accepts audit events without blocking the caller. Failures are
// logged by the implementation and never returned.
type Recorder interface {
	Record(ctx context.Context, event Event)
}

// Sink receives persisted events, e.g. a chat channel.
type Sink interface {
	Deliver(ctx context.Context, events []Event) error
}

// NopRecorder discards every event.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Event) {}
