package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swayam-intelligence/internal/common/database"
	"swayam-intelligence/internal/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore(time.Hour)
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	cctx := models.NewConversationContext("s1")
	cctx.History = append(cctx.History, models.Message{Role: "user", Content: "namaste"})
	require.NoError(t, s.Put(ctx, cctx))

	got, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.History, 1)
	assert.Equal(t, 1, s.Len())

	require.NoError(t, s.Clear(ctx, "s1"))
	got, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore(time.Nanosecond)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.NewConversationContext("s1")))
	time.Sleep(time.Millisecond)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got, "expired sessions read as absent")
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{
		Client: redis.NewClient(&redis.Options{Addr: mr.Addr()}),
	}
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	s, _ := newRedisStore(t)
	ctx := context.Background()

	got, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, got)

	cctx := models.NewConversationContext("s1")
	cctx.Entities[models.EntityGSTIN] = models.EntityValues{{
		Type:            models.EntityGSTIN,
		Value:           "27AABCU9603R1ZM",
		NormalizedValue: "27AABCU9603R1ZM",
		Confidence:      0.9,
	}}
	require.NoError(t, s.Put(ctx, cctx))

	got, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.SessionID)
	require.True(t, got.Entities.Has(models.EntityGSTIN))
	gstin, _ := got.Entities.First(models.EntityGSTIN)
	assert.Equal(t, "27AABCU9603R1ZM", gstin.NormalizedValue)

	require.NoError(t, s.Clear(ctx, "s1"))
	got, err = s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreExpiry(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, models.NewConversationContext("s1")))
	mr.FastForward(2 * time.Hour)

	got, err := s.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
