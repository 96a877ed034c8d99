// Package events publishes profile domain events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/twmb/franz-go/pkg/kgo"

	"profiles/internal/profile/ports"
)

const eventTypeProfileCreated = "profile.created"

// Producer is the subset of *kgo.Client the publisher needs.
type Producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

// Publisher writes events keyed by profile ID so every event of a profile
// lands on the same partition.
type Publisher struct {
	producer Producer
	topic    string
}

func NewPublisher(producer Producer, topic string) *Publisher {
	return &Publisher{producer: producer, topic: topic}
}

func (p *Publisher) PublishProfileCreated(ctx context.Context, event ports.ProfileCreated) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal profile created event: %w", err)
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(event.ProfileID),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event_type", Value: []byte(eventTypeProfileCreated)},
		},
	}
	if err := p.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce profile created event: %w", err)
	}
	return nil
}

var _ ports.EventPublisher = (*Publisher)(nil)
