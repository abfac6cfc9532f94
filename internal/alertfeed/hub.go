// Package alertfeed streams alert lifecycle events to WebSocket clients.
// It subscribes to the event bus and fans every alert_raised event out to
// all connected dashboards.
package alertfeed

import (
	"context"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/gymops/memberpulse/internal/event"
)

// subscriberBuffer bounds per-client queues. A client that cannot keep up
// loses events rather than stalling the bus consumer.
const subscriberBuffer = 32

// FeedMessage is the wire frame sent to clients.
type FeedMessage struct {
	Type  string            `json:"type"`
	Event event.DomainEvent `json:"event"`
}

// Hub tracks connected clients and broadcasts to them.
type Hub struct {
	mu   sync.Mutex
	subs map[chan event.DomainEvent]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan event.DomainEvent]struct{})}
}

// HandleEvent implements the bus Handler. Only alert events are forwarded;
// the feed is an alerting surface, not a general event firehose.
func (h *Hub) HandleEvent(_ context.Context, evt event.DomainEvent) error {
	if evt.EventType != "alert_raised" {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- evt:
		default:
		}
	}
	return nil
}

func (h *Hub) subscribe() chan event.DomainEvent {
	ch := make(chan event.DomainEvent, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()
	return ch
}

func (h *Hub) unsubscribe(ch chan event.DomainEvent) {
	h.mu.Lock()
	delete(h.subs, ch)
	h.mu.Unlock()
}

// ServeHTTP upgrades to WebSocket and streams alert events until the
// client disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("alertfeed: websocket accept: %v", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ch := h.subscribe()
	defer h.unsubscribe(ch)

	// The client never sends application messages; this read loop exists
	// to surface disconnects and answer control frames.
	readDone := make(chan struct{})
	go func() {
		defer close(readDone)
		for {
			if _, _, err := conn.Read(ctx); err != nil {
				return
			}
		}
	}()

	if err := wsjson.Write(ctx, conn, FeedMessage{Type: "hello"}); err != nil {
		log.Printf("alertfeed: write error: %v", err)
		return
	}

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case evt := <-ch:
			if err := wsjson.Write(ctx, conn, FeedMessage{Type: "alert", Event: evt}); err != nil {
				log.Printf("alertfeed: write error: %v", err)
				return
			}
		case <-ping.C:
			if err := conn.Ping(ctx); err != nil {
				return
			}
		case <-readDone:
			return
		case <-ctx.Done():
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		}
	}
}
