package metering

import (
	"context"
	"sync"

	"study-copilot/pkg/log"
)

const defaultRecorderBuffer = 256

type costEvent struct {
	userID string
	actual int64
}

// Recorder decouples cost recording from the request path. Record never
// blocks; events that do not fit the buffer are dropped with a warning,
// which is the accepted trade for keeping classification latency flat.
type Recorder struct {
	l      log.Logger
	oracle BudgetOracle

	events chan costEvent
	done   chan struct{}
	once   sync.Once
}

func NewRecorder(l log.Logger, oracle BudgetOracle, buffer int) *Recorder {
	if buffer <= 0 {
		buffer = defaultRecorderBuffer
	}
	r := &Recorder{
		l:      l,
		oracle: oracle,
		events: make(chan costEvent, buffer),
		done:   make(chan struct{}),
	}
	go r.drain()
	return r
}

// Record queues a cost event. Safe to call from any goroutine; never blocks.
func (r *Recorder) Record(ctx context.Context, userID string, actual int64) {
	if actual <= 0 {
		return
	}
	select {
	case r.events <- costEvent{userID: userID, actual: actual}:
	default:
		r.l.Warnf(ctx, "metering.Recorder.Record: buffer full, dropping %d tokens for user %s", actual, userID)
	}
}

func (r *Recorder) drain() {
	defer close(r.done)
	for ev := range r.events {
		if err := r.oracle.RecordCost(context.Background(), ev.userID, ev.actual); err != nil {
			r.l.Warnf(context.Background(), "metering.Recorder.drain.RecordCost: %v", err)
		}
	}
}

// Close flushes queued events and stops the drain goroutine.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.events)
	})
	<-r.done
}
