package event

import "context"

// Publisher sends domain events to downstream consumers. Publishing is
// best-effort and must never block or fail the operation that produced the
// event.
type Publisher interface {
	Publish(ctx context.Context, evt DomainEvent)
}

// NopPublisher discards events. Useful in tests and tools that run engine
// code without a bus.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, DomainEvent) {}
