package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// KafkaSink produces events as JSON records keyed by user id.
type KafkaSink struct {
	client *kgo.Client
	topic  string
}

// NewKafkaSink connects to brokers and makes sure topic exists.
func NewKafkaSink(ctx context.Context, brokers []string, topic string) (*KafkaSink, error) {
	if len(brokers) == 0 {
		return nil, errors.New("kafka brokers are required")
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}
	if err := ensureTopic(ctx, kadm.NewClient(client), topic); err != nil {
		client.Close()
		return nil, err
	}
	return &KafkaSink{client: client, topic: topic}, nil
}

func ensureTopic(ctx context.Context, admin *kadm.Client, topic string) error {
	resp, err := admin.CreateTopics(ctx, 1, -1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

func (s *KafkaSink) Append(ctx context.Context, events ...Event) error {
	records := make([]*kgo.Record, 0, len(events))
	for _, e := range events {
		value, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshal event %s: %w", e.ID, err)
		}
		records = append(records, &kgo.Record{
			Topic: s.topic,
			Key:   []byte(e.UserID.String()),
			Value: value,
		})
	}
	if err := s.client.ProduceSync(ctx, records...).FirstErr(); err != nil {
		return fmt.Errorf("produce events: %w", err)
	}
	return nil
}

func (s *KafkaSink) Close() {
	s.client.Close()
}
