// Package worker runs the engine's background loops.
package worker

import (
	"context"
	"log"
	"time"

	"github.com/gymops/memberpulse/internal/alerting"
)

// ScanWorker triggers alert generation on a fixed interval. The generator
// itself is idempotent, so an operator-triggered run overlapping a
// scheduled one at worst suppresses duplicates.
type ScanWorker struct {
	generator *alerting.Generator
	interval  time.Duration
}

func NewScanWorker(g *alerting.Generator, interval time.Duration) *ScanWorker {
	if interval <= 0 {
		interval = time.Hour
	}
	return &ScanWorker{generator: g, interval: interval}
}

// Run blocks until the context is cancelled. The first scan fires after
// one full interval; startup is left quiet so demo seeding and schema
// migration finish first.
func (w *ScanWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.Printf("worker: alert scan every %s", w.interval)
	for {
		select {
		case <-ticker.C:
			res, err := w.generator.Run(ctx, time.Now().UTC())
			if err != nil {
				log.Printf("worker: alert scan failed: %v", err)
				continue
			}
			log.Printf("worker: alert scan done: %d created, %d payments marked overdue, %d errors",
				res.CreatedCount, len(res.PaymentsMarkedOverdue), res.Errors)
		case <-ctx.Done():
			log.Printf("worker: alert scan stopped")
			return
		}
	}
}
