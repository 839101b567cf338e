package cache

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/itsatony/w4b_v3/server/readings/internal/config"
	"github.com/itsatony/w4b_v3/server/readings/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func newTestCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := NewRedisCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Minute)
	t.Cleanup(func() { c.Close() })
	return c, mr
}

func TestStatisticKey(t *testing.T) {
	tests := []struct {
		name   string
		filter models.ReadingFilter
		stat   string
		gen    int64
		want   string
	}{
		{
			name:   "open range",
			filter: models.ReadingFilter{DeviceUUID: "d1", Type: models.Temperature},
			stat:   "max",
			want:   "readings:device:d1:gen:0:stat:max:type:temperature:start:-:end:-",
		},
		{
			name: "bounded range",
			filter: models.ReadingFilter{
				DeviceUUID: "d1",
				Type:       models.Humidity,
				Start:      int64Ptr(10),
				End:        int64Ptr(20),
			},
			stat: "quartiles",
			gen:  3,
			want: "readings:device:d1:gen:3:stat:quartiles:type:humidity:start:10:end:20",
		},
		{
			name:   "separator in device id",
			filter: models.ReadingFilter{DeviceUUID: "a:gen:1", Type: models.Temperature},
			stat:   "min",
			want:   "readings:device:a%3Agen%3A1:gen:0:stat:min:type:temperature:start:-:end:-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatisticKey(tt.filter, tt.stat, tt.gen))
		})
	}
}

func TestKeysOfDistinctDevicesNeverCollide(t *testing.T) {
	a := models.ReadingFilter{DeviceUUID: "a:gen:1:stat:min", Type: models.Temperature}
	b := models.ReadingFilter{DeviceUUID: "a", Type: models.Temperature}

	assert.NotEqual(t, StatisticKey(a, "min", 0), StatisticKey(b, "min", 1))
	assert.NotEqual(t, GenerationKey("a:device:b"), GenerationKey("a"))
	assert.Equal(t, "readings:device:d1:generation", GenerationKey("d1"))
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	filter := models.ReadingFilter{DeviceUUID: "d1", Type: models.Temperature}

	key, err := c.Key(ctx, filter, "mean")
	require.NoError(t, err)

	var got models.StatisticResult
	hit, err := c.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	want := models.StatisticResult{DeviceUUID: "d1", DeviceType: models.Temperature, Value: 48.5}
	require.NoError(t, c.Store(ctx, key, want))

	hit, err = c.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, want, got)
}

func TestRedisCacheInvalidateMovesKey(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	filter := models.ReadingFilter{DeviceUUID: "d1", Type: models.Temperature}

	before, err := c.Key(ctx, filter, "min")
	require.NoError(t, err)
	require.NoError(t, c.Invalidate(ctx, "d1"))

	// a value computed before the write lands under the old key
	require.NoError(t, c.Store(ctx, before, models.StatisticResult{Value: 22.0}))

	after, err := c.Key(ctx, filter, "min")
	require.NoError(t, err)
	assert.NotEqual(t, before, after)

	var got models.StatisticResult
	hit, err := c.Load(ctx, after, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	gen, err := mr.Get(GenerationKey("d1"))
	require.NoError(t, err)
	assert.Equal(t, "1", gen)
}

func TestRedisCacheEntriesExpire(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	key, err := c.Key(ctx, models.ReadingFilter{DeviceUUID: "d1", Type: models.Humidity}, "max")
	require.NoError(t, err)
	require.NoError(t, c.Store(ctx, key, models.StatisticResult{Value: 1.0}))

	mr.FastForward(2 * time.Minute)

	var got models.StatisticResult
	hit, err := c.Load(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestNewDisabledReturnsNoop(t *testing.T) {
	c, err := New(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.IsType(t, Noop{}, c)

	ctx := context.Background()
	key, err := c.Key(ctx, models.ReadingFilter{DeviceUUID: "d1"}, "min")
	assert.NoError(t, err)
	assert.Empty(t, key)

	var dst models.StatisticResult
	hit, err := c.Load(ctx, key, &dst)
	assert.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Store(ctx, key, dst))
	assert.NoError(t, c.Invalidate(ctx, "d1"))
	assert.NoError(t, c.Close())
}

func TestNewConnectsToRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := New(context.Background(), config.RedisConfig{
		Enabled: true,
		Host:    mr.Host(),
		Port:    mustPort(t, mr),
		TTL:     time.Minute,
	})
	require.NoError(t, err)
	assert.IsType(t, &RedisCache{}, c)
	assert.NoError(t, c.Close())
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestNewUnreachableRedis(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := New(ctx, config.RedisConfig{Enabled: true, Host: "127.0.0.1", Port: 1, TTL: time.Minute})
	assert.Error(t, err)
}

func TestRedisCacheErrorsWhenUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	c := NewRedisCache(client, time.Minute)
	defer c.Close()
	ctx := context.Background()
	filter := models.ReadingFilter{DeviceUUID: "d1", Type: models.Temperature}

	_, err := c.Key(ctx, filter, "min")
	assert.Error(t, err)

	var dst models.StatisticResult
	hit, err := c.Load(ctx, StatisticKey(filter, "min", 0), &dst)
	assert.Error(t, err)
	assert.False(t, hit)
	assert.Error(t, c.Store(ctx, StatisticKey(filter, "min", 0), dst))
	assert.Error(t, c.Invalidate(ctx, "d1"))
}
