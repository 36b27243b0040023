package service

import (
	"context"
	"fmt"
	"log"
	"time"
)

// Reconciler rebuilds the per-location tally from the cafes table. Event
// folding keeps it current between passes; a pass repairs cafes that predate
// the feed, events that were never published and redelivered events.
type Reconciler struct {
	Source   LocationSource
	Store    StoreInterface
	Interval time.Duration
}

func NewReconciler(source LocationSource, store StoreInterface, interval time.Duration) *Reconciler {
	return &Reconciler{
		Source:   source,
		Store:    store,
		Interval: interval,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context) error {
	counts, err := r.Source.LocationCounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to count locations: %w", err)
	}
	if err := r.Store.ReplaceLocations(ctx, counts); err != nil {
		return fmt.Errorf("failed to replace locations: %w", err)
	}
	log.Printf("Reconciled %d locations from the cafes table", len(counts))
	return nil
}

// Run reconciles once, then every Interval until ctx is cancelled.
// A non-positive Interval means a single pass.
func (r *Reconciler) Run(ctx context.Context) {
	if err := r.Reconcile(ctx); err != nil {
		log.Printf("Error reconciling locations: %v", err)
	}
	if r.Interval <= 0 {
		return
	}

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Reconcile(ctx); err != nil {
				log.Printf("Error reconciling locations: %v", err)
			}
		}
	}
}
