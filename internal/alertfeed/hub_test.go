package alertfeed

import (
	"context"
	"testing"

	"github.com/gymops/memberpulse/internal/event"
	"github.com/gymops/memberpulse/internal/types"
)

func TestHub_ForwardsAlertEventsOnly(t *testing.T) {
	hub := NewHub()
	ch := hub.subscribe()
	defer hub.unsubscribe(ch)

	hub.HandleEvent(context.Background(), event.NewAlertRaised(types.Alert{
		Condition: types.ConditionInactivity,
		Severity:  types.SeverityMedium,
		Message:   "Member Jane Doe has not attended in 21 days",
	}))
	hub.HandleEvent(context.Background(), event.DomainEvent{EventType: "model_evaluated"})

	select {
	case evt := <-ch:
		if evt.EventType != "alert_raised" {
			t.Errorf("event type = %q, want alert_raised", evt.EventType)
		}
	default:
		t.Fatal("no event forwarded")
	}
	select {
	case evt := <-ch:
		t.Errorf("unexpected second event %q", evt.EventType)
	default:
	}
}

func TestHub_SlowClientDoesNotBlock(t *testing.T) {
	hub := NewHub()
	ch := hub.subscribe()
	defer hub.unsubscribe(ch)

	// Fill the buffer past capacity; HandleEvent must not stall.
	for i := 0; i < subscriberBuffer+10; i++ {
		hub.HandleEvent(context.Background(), event.NewAlertRaised(types.Alert{
			Condition: types.ConditionInactivity,
			Severity:  types.SeverityMedium,
		}))
	}

	if got := len(ch); got != subscriberBuffer {
		t.Errorf("buffered = %d, want %d (overflow dropped)", got, subscriberBuffer)
	}
}
