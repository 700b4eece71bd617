package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct {
	calls int
}

func (f *failingSink) Append(context.Context, ...Event) error {
	f.calls++
	return errors.New("broker down")
}

func TestPublisherEmit(t *testing.T) {
	t.Run("fills id and timestamp", func(t *testing.T) {
		p := NewPublisher()
		require.NoError(t, p.Emit(context.Background(), Event{Type: EventThoughtCreated, UserID: 3}))

		e := <-p.Inbox()
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.OccurredAt.IsZero())
		assert.Equal(t, EventThoughtCreated, e.Type)
	})

	t.Run("drops when the buffer is full", func(t *testing.T) {
		p := NewPublisher(WithBuffer(1))
		require.NoError(t, p.Emit(context.Background(), Event{Type: EventThoughtCreated}))
		err := p.Emit(context.Background(), Event{Type: EventUserTownChanged})
		assert.ErrorIs(t, err, ErrBufferFull)
	})
}

func TestWorkerRun(t *testing.T) {
	t.Run("delivers events and flushes on shutdown", func(t *testing.T) {
		p := NewPublisher()
		sink := NewInMemorySink()
		w := NewWorker(sink, p.Inbox(), nil)

		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)
		go func() { done <- w.Run(ctx) }()

		require.NoError(t, p.Emit(ctx, Event{Type: EventThoughtCreated, UserID: 1}))
		require.NoError(t, p.Emit(ctx, Event{Type: EventUserTownChanged, UserID: 1}))
		require.Eventually(t, func() bool { return len(sink.Events()) == 2 }, time.Second, 5*time.Millisecond)

		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	})

	t.Run("sink failures do not stop the worker", func(t *testing.T) {
		p := NewPublisher()
		sink := &failingSink{}
		w := NewWorker(sink, p.Inbox(), nil)

		require.NoError(t, p.Emit(context.Background(), Event{Type: EventThoughtCreated}))
		require.NoError(t, p.Emit(context.Background(), Event{Type: EventThoughtCreated}))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, w.Run(ctx), context.Canceled)
		assert.Equal(t, 2, sink.calls)
	})
}
