package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T, ttl time.Duration) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	r := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr()}), ttl)
	t.Cleanup(func() { _ = r.Close() })

	return r, mr
}

func TestRedis_GetPut(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, time.Hour)
	require.NoError(t, r.Ping(ctx))

	key := KeyPrefix + "abc"
	_, err := r.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)

	e := Entry{
		Tour:        []int{2, 0, 1},
		Cost:        123.456789,
		InitialCost: 200.5,
		Steps:       55249,
		Temperature: 9.9e-9,
		Seed:        42,
		Stop:        "temperature",
	}
	require.NoError(t, r.Put(ctx, key, e))

	got, err := r.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, e, got)
	assert.Equal(t, time.Hour, mr.TTL(key))

	mr.FastForward(time.Hour + time.Second)
	_, err = r.Get(ctx, key)
	assert.ErrorIs(t, err, ErrMiss)
}

func TestRedis_NoTTLKeepsEntries(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, 0)

	require.NoError(t, r.Put(ctx, "k", Entry{Tour: []int{0}, Stop: "trivial"}))
	assert.Zero(t, mr.TTL("k"))
	assert.True(t, mr.Exists("k"))
}

func TestRedis_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	r, mr := newTestRedis(t, time.Hour)

	require.NoError(t, mr.Set("k", "{not json"))
	_, err := r.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
	assert.ErrorContains(t, err, "cache: decode k")
}

func TestRedis_ServerDown(t *testing.T) {
	ctx := context.Background()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	r := NewRedis(redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1}), time.Hour)
	defer r.Close()
	mr.Close()

	_, err = r.Get(ctx, "k")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)
	assert.Error(t, r.Put(ctx, "k", Entry{}))
}
