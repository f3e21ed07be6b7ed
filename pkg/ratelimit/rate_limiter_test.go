package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, config *Config) *RateLimiter {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRateLimiter(client, config)
}

func testConfig() *Config {
	return &Config{
		Enabled:          true,
		WindowDuration:   time.Minute,
		DefaultRequests:  10,
		PublicRequests:   20,
		AuthRequests:     5,
		CheckoutRequests: 2,
		AdminRequests:    30,
	}
}

func TestIsAllowedBlocksAtLimit(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	first, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeCheckout)
	require.NoError(t, err)
	assert.True(t, first.Allowed)
	assert.Equal(t, 2, first.Limit)
	assert.Equal(t, 1, first.Remaining)

	second, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeCheckout)
	require.NoError(t, err)
	assert.True(t, second.Allowed)
	assert.Equal(t, 0, second.Remaining)

	// every request past the limit is rejected, not just the first
	for i := 0; i < 3; i++ {
		res, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeCheckout)
		require.NoError(t, err)
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
	}
}

func TestIsAllowedBucketsPerIP(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeCheckout)
		require.NoError(t, err)
		require.True(t, res.Allowed)
	}

	blocked, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeCheckout)
	require.NoError(t, err)
	assert.False(t, blocked.Allowed)

	other, err := limiter.IsAllowed(ctx, "10.0.0.2", RateLimitTypeCheckout)
	require.NoError(t, err)
	assert.True(t, other.Allowed)
}

func TestIsAllowedBucketsPerType(t *testing.T) {
	limiter := newTestLimiter(t, testConfig())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		res, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeCheckout)
		require.NoError(t, err)
		require.True(t, res.Allowed)
	}

	// the auth bucket for the same IP is untouched
	res, err := limiter.IsAllowed(ctx, "10.0.0.1", RateLimitTypeAuth)
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 5, res.Limit)
}

func TestIsAllowedWhitelistedIP(t *testing.T) {
	config := testConfig()
	config.WhitelistedIPs = []string{"192.168.1.1"}
	limiter := newTestLimiter(t, config)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		res, err := limiter.IsAllowed(ctx, "192.168.1.1", RateLimitTypeCheckout)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, 2, res.Remaining)
	}
}

func TestIsAllowedDisabled(t *testing.T) {
	config := testConfig()
	config.Enabled = false
	limiter := newTestLimiter(t, config)

	for i := 0; i < 10; i++ {
		res, err := limiter.IsAllowed(context.Background(), "10.0.0.1", RateLimitTypeCheckout)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	}
}

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		path string
		want RateLimitType
	}{
		{"/api/v1/admin/transactions", RateLimitTypeAdmin},
		{"/api/v1/auth/login", RateLimitTypeAuth},
		{"/api/v1/checkout/submit", RateLimitTypeCheckout},
		{"/api/v1/showtimes", RateLimitTypePublic},
		{"/api/v1/transactions", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, getRateLimitType(tt.path), tt.path)
	}
}
