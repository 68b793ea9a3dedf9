package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"swayam-intelligence/internal/common/database"
	stderrors "swayam-intelligence/internal/common/errors"
	"swayam-intelligence/internal/models"
)

const sessionKeyPrefix = "swayam:session:"

// RedisStore keeps session context in Redis so multiple server instances can
// share sessions. Contexts are stored as JSON with the configured TTL.
type RedisStore struct {
	client *database.RedisClient
	ttl    time.Duration
}

func NewRedisStore(client *database.RedisClient, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (*models.ConversationContext, error) {
	raw, err := s.client.Get(ctx, sessionKeyPrefix+sessionID)
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}

	var cctx models.ConversationContext
	if err := json.Unmarshal([]byte(raw), &cctx); err != nil {
		return nil, stderrors.NewSessionStoreFailedError(err)
	}
	return &cctx, nil
}

func (s *RedisStore) Put(ctx context.Context, cctx *models.ConversationContext) error {
	raw, err := json.Marshal(cctx)
	if err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	if err := s.client.Set(ctx, sessionKeyPrefix+cctx.SessionID, raw, s.ttl); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}

func (s *RedisStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKeyPrefix+sessionID); err != nil {
		return stderrors.NewSessionStoreFailedError(err)
	}
	return nil
}
