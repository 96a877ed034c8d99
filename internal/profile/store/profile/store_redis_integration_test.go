//go:build integration

package profile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"profiles/internal/profile/domain/shared"
	"profiles/internal/profile/models"
	"profiles/internal/profile/ports"
	"profiles/internal/profile/store/profile"
	id "profiles/pkg/domain"
	"profiles/pkg/platform/sentinel"
	"profiles/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *profile.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	mgr := containers.GetManager()
	s.redis = mgr.GetRedis(s.T())
	s.store = profile.NewRedis(s.redis.Client, profile.WithKeyPrefix("test:profile:"))
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	p := models.NewProfile(id.NewProfileID(), shared.MustEmail("ada@example.com"),
		models.WithProfileImageURL(shared.MustImageURL("https://example.com/ada.jpg")),
	)
	s.Require().NoError(s.store.Save(ctx, p))

	found, err := s.store.GetProfileByID(ctx, p.ID())
	s.Require().NoError(err)
	s.True(p.Equal(found))

	exists, err := s.redis.Client.Exists(ctx, "test:profile:"+p.ID().String()).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}

func (s *RedisStoreSuite) TestGetMissingReturnsNil() {
	found, err := s.store.GetProfileByID(context.Background(), id.NewProfileID())
	s.NoError(err)
	s.Nil(found)
}

func (s *RedisStoreSuite) TestCreateIfAbsent() {
	ctx := context.Background()
	p := models.NewProfile(id.NewProfileID(), shared.MustEmail("ada@example.com"))
	s.Require().NoError(s.store.CreateIfAbsent(ctx, p))

	err := s.store.CreateIfAbsent(ctx, models.NewProfile(p.ID(), shared.MustEmail("b@example.com")))
	s.ErrorIs(err, sentinel.ErrConflict)

	found, err := s.store.GetProfileByID(ctx, p.ID())
	s.Require().NoError(err)
	s.Equal("ada@example.com", found.Email().String())
}

func (s *RedisStoreSuite) TestCorruptPayloadIsUnknown() {
	ctx := context.Background()
	profileID := id.NewProfileID()
	s.Require().NoError(s.redis.Client.Set(ctx, "test:profile:"+profileID.String(), "{not json", 0).Err())

	_, err := s.store.GetProfileByID(ctx, profileID)
	s.Equal(ports.RepositoryUnknown, ports.RepositoryKindOf(err))
}
