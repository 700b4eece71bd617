package events

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ErrBufferFull is returned when the worker has fallen behind.
var ErrBufferFull = errors.New("event buffer full")

const defaultBuffer = 256

// Publisher hands events to a Worker without blocking the request path.
// Events that do not fit in the buffer are dropped.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

type PublisherOption func(*Publisher)

func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// WithBuffer sets the channel capacity.
func WithBuffer(n int) PublisherOption {
	return func(p *Publisher) {
		if n > 0 {
			p.inbox = make(chan Event, n)
		}
	}
}

func NewPublisher(opts ...PublisherOption) *Publisher {
	p := &Publisher{inbox: make(chan Event, defaultBuffer)}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit fills in ID and timestamp and queues the event.
func (p *Publisher) Emit(ctx context.Context, e Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	select {
	case p.inbox <- e:
		return nil
	default:
		if p.logger != nil {
			p.logger.WarnContext(ctx, "dropping civic event",
				"event_type", e.Type,
				"event_id", e.ID,
			)
		}
		return ErrBufferFull
	}
}

// Inbox is the channel a Worker consumes.
func (p *Publisher) Inbox() <-chan Event {
	return p.inbox
}
