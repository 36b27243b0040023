package service

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"cafe-api/cafe-feed/internal/domain"
)

const defaultRetryBackoff = time.Second

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	// RetryBackoff is the pause after a failed read.
	RetryBackoff time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader:       reader,
		Store:        store,
		RetryBackoff: defaultRetryBackoff,
	}
}

// Start blocks until ctx is cancelled.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Cafe Feed consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Cafe Feed consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			select {
			case <-ctx.Done():
				log.Println("Cafe Feed consumer stopped")
				return
			case <-time.After(c.RetryBackoff):
			}
			continue
		}

		var event domain.CafeEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.ProcessEvent(ctx, event)
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event domain.CafeEvent) {
	var delta int
	switch event.Type {
	case domain.EventCafeAdded:
		delta = 1
	case domain.EventCafeClosed:
		delta = -1
	case domain.EventPriceUpdated:
	default:
		log.Printf("Skipping unknown event type %q for cafe %d", event.Type, event.CafeID)
		return
	}

	log.Printf("Processing %s: CafeID=%d, Location=%q", event.Type, event.CafeID, event.Location)

	if err := c.Store.RecordEvent(ctx, event.Type); err != nil {
		log.Printf("Error recording event: %v", err)
		return
	}

	location := strings.ToLower(strings.TrimSpace(event.Location))
	if delta == 0 || location == "" {
		return
	}
	if err := c.Store.AdjustLocation(ctx, location, delta); err != nil {
		log.Printf("Error adjusting location %q: %v", location, err)
	}
}
