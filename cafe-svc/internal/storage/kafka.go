package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"cafe-api/cafe-svc/internal/domain"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type KafkaPublisher struct {
	Writer messageWriter
}

func NewKafkaPublisher(writer *kafka.Writer) *KafkaPublisher {
	return &KafkaPublisher{Writer: writer}
}

// PublishCafeEvent keys messages by cafe id so events for one cafe stay ordered.
func (p *KafkaPublisher) PublishCafeEvent(ctx context.Context, event domain.CafeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.CafeID)),
		Value: payload,
	})
}
