package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"profiles/internal/profile/models"
	"profiles/internal/profile/ports"
	id "profiles/pkg/domain"
	"profiles/pkg/platform/sentinel"
)

const defaultRedisKeyPrefix = "profile:"

// RedisStore keeps each profile as a JSON document under prefix+id.
type RedisStore struct {
	client *redis.Client
	prefix string
}

type RedisOption func(*RedisStore)

// WithKeyPrefix namespaces the keys, e.g. per test or per tenant.
func WithKeyPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

func NewRedis(client *redis.Client, opts ...RedisOption) *RedisStore {
	s := &RedisStore{client: client, prefix: defaultRedisKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStore) key(profileID id.ProfileID) string {
	return s.prefix + profileID.String()
}

func (s *RedisStore) Save(ctx context.Context, p *models.Profile) error {
	payload, err := json.Marshal(toRecord(p))
	if err != nil {
		return ports.UnknownError(fmt.Errorf("marshal profile: %w", err))
	}
	if err := s.client.Set(ctx, s.key(p.ID()), payload, 0).Err(); err != nil {
		return ports.DatabaseError(fmt.Errorf("save profile: %w", err))
	}
	return nil
}

// CreateIfAbsent uses SETNX so only the first writer of an ID succeeds.
func (s *RedisStore) CreateIfAbsent(ctx context.Context, p *models.Profile) error {
	payload, err := json.Marshal(toRecord(p))
	if err != nil {
		return ports.UnknownError(fmt.Errorf("marshal profile: %w", err))
	}
	created, err := s.client.SetNX(ctx, s.key(p.ID()), payload, 0).Result()
	if err != nil {
		return ports.DatabaseError(fmt.Errorf("create profile: %w", err))
	}
	if !created {
		return ports.DatabaseError(fmt.Errorf("create profile %s: %w", p.ID(), sentinel.ErrConflict))
	}
	return nil
}

func (s *RedisStore) GetProfileByID(ctx context.Context, profileID id.ProfileID) (*models.Profile, error) {
	payload, err := s.client.Get(ctx, s.key(profileID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, ports.DatabaseError(fmt.Errorf("find profile by id: %w", err))
	}

	var r record
	if err := json.Unmarshal(payload, &r); err != nil {
		return nil, ports.UnknownError(fmt.Errorf("unmarshal profile: %w", err))
	}
	p, err := r.toProfile()
	if err != nil {
		return nil, ports.UnknownError(err)
	}
	return p, nil
}
