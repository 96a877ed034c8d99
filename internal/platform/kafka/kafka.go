// Package kafka builds the franz-go client used for profile events.
package kafka

import (
	"context"
	"errors"
	"fmt"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"

	"profiles/internal/platform/config"
)

// NewClient connects to the configured brokers with the profile topic as
// the default produce topic. Returns nil when no brokers are configured.
func NewClient(ctx context.Context, cfg config.KafkaConfig, opts ...kgo.Opt) (*kgo.Client, error) {
	if !cfg.Enabled() {
		return nil, nil
	}
	base := []kgo.Opt{
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.ProfileTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
	}
	client, err := kgo.NewClient(append(base, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("kafka ping failed: %w", err)
	}
	return client, nil
}

// EnsureTopic creates the profile topic if it does not exist yet.
func EnsureTopic(ctx context.Context, client *kgo.Client, cfg config.KafkaConfig) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopic(ctx, cfg.Partitions, cfg.Replication, nil, cfg.ProfileTopic)
	if err == nil {
		err = resp.Err
	}
	if err != nil && !errors.Is(err, kerr.TopicAlreadyExists) {
		return fmt.Errorf("create topic %s: %w", cfg.ProfileTopic, err)
	}
	return nil
}
