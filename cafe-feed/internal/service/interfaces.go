package service

import (
	"context"

	"cafe-api/cafe-feed/internal/domain"
	"cafe-api/cafe-feed/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordEvent(ctx context.Context, eventType string) error
	AdjustLocation(ctx context.Context, location string, delta int) error
	ReplaceLocations(ctx context.Context, counts map[string]int) error
}

type LocationSource interface {
	LocationCounts(ctx context.Context) (map[string]int, error)
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessEvent(ctx context.Context, event domain.CafeEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ LocationSource    = (*storage.LocationSource)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
)
