package events

import (
	"context"
	"log/slog"
	"time"
)

const drainTimeout = 5 * time.Second

// Sink persists or forwards events.
type Sink interface {
	Append(ctx context.Context, events ...Event) error
}

// Worker drains a Publisher into a Sink. Sink failures are logged and the
// event is dropped; delivery is best-effort.
type Worker struct {
	sink   Sink
	inbox  <-chan Event
	logger *slog.Logger
}

func NewWorker(sink Sink, inbox <-chan Event, logger *slog.Logger) *Worker {
	return &Worker{sink: sink, inbox: inbox, logger: logger}
}

// Run blocks until ctx is done, then flushes whatever is already queued.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		case e := <-w.inbox:
			w.append(ctx, e)
		}
	}
}

func (w *Worker) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	for {
		select {
		case e := <-w.inbox:
			w.append(ctx, e)
		default:
			return
		}
	}
}

func (w *Worker) append(ctx context.Context, e Event) {
	if err := w.sink.Append(ctx, e); err != nil && w.logger != nil {
		w.logger.ErrorContext(ctx, "failed to deliver civic event",
			"event_type", e.Type,
			"event_id", e.ID,
			"error", err,
		)
	}
}
