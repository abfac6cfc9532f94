package eventbus

import (
	"context"
	"log"

	"github.com/gymops/memberpulse/internal/event"
)

// LogConsumer logs all domain events for observability.
type LogConsumer struct{}

func NewLogConsumer() *LogConsumer { return &LogConsumer{} }

func (c *LogConsumer) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	scope := "population"
	if evt.MemberID != nil {
		scope = "member:" + evt.MemberID.String()[:8]
	}
	log.Printf("event: %s [%s] %s", evt.EventType, scope, evt.Summary)
	return nil
}
