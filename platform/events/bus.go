package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"placement_portal_backend/platform/logger"
)

// InMemoryBus is a process-local Bus implementation. Handlers are kept in a
// mutex-guarded registry keyed by event name. Publish runs handlers on their
// own goroutines; PublishSync runs them sequentially on the caller's
// goroutine so per-entity ordering is preserved.
type InMemoryBus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	log      *logger.Logger
	wg       sync.WaitGroup
}

// NewInMemoryBus creates an empty bus. The logger records handler errors and
// recovered panics; it must not be nil.
func NewInMemoryBus(log *logger.Logger) *InMemoryBus {
	return &InMemoryBus{
		handlers: make(map[string][]Handler),
		log:      log,
	}
}

// Subscribe registers a handler for the given event name.
func (b *InMemoryBus) Subscribe(eventName string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[eventName] = append(b.handlers[eventName], handler)
}

// Publish sends the event to all handlers asynchronously. Handler errors and
// panics are logged, never propagated to the publisher.
func (b *InMemoryBus) Publish(ctx context.Context, event Event) {
	for _, h := range b.snapshot(event.EventName()) {
		handler := h
		b.wg.Add(1)
		go func() {
			defer b.wg.Done()
			defer b.recoverPanic(event)
			if err := handler.Handle(ctx, event); err != nil {
				b.log.Error("event handler failed",
					slog.String("event", event.EventName()),
					slog.String("error", err.Error()),
				)
			}
		}()
	}
}

// PublishSync sends the event to all handlers in subscription order and
// returns the joined handler errors, if any.
func (b *InMemoryBus) PublishSync(ctx context.Context, event Event) error {
	var errs []error
	for _, handler := range b.snapshot(event.EventName()) {
		if err := b.handleSync(ctx, event, handler); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Wait blocks until all asynchronously published events have been handled.
// Intended for graceful shutdown and tests.
func (b *InMemoryBus) Wait() {
	b.wg.Wait()
}

func (b *InMemoryBus) handleSync(ctx context.Context, event Event, handler Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			b.logPanic(event, r)
			err = fmt.Errorf("handler panic for %s: %v", event.EventName(), r)
		}
	}()
	return handler.Handle(ctx, event)
}

func (b *InMemoryBus) snapshot(eventName string) []Handler {
	b.mu.RLock()
	defer b.mu.RUnlock()
	registered := b.handlers[eventName]
	out := make([]Handler, len(registered))
	copy(out, registered)
	return out
}

func (b *InMemoryBus) recoverPanic(event Event) {
	if r := recover(); r != nil {
		b.logPanic(event, r)
	}
}

func (b *InMemoryBus) logPanic(event Event, r any) {
	b.log.Error("event handler panicked",
		slog.String("event", event.EventName()),
		slog.Any("panic", r),
	)
}
