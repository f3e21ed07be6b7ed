package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type RateLimitType string

const (
	RateLimitTypeDefault  RateLimitType = "default"
	RateLimitTypePublic   RateLimitType = "public"
	RateLimitTypeAuth     RateLimitType = "auth"
	RateLimitTypeCheckout RateLimitType = "checkout"
	RateLimitTypeAdmin    RateLimitType = "admin"
)

// Config holds per-bucket request limits for a shared window
type Config struct {
	Enabled          bool          `json:"enabled"`
	WindowDuration   time.Duration `json:"window_duration"`
	DefaultRequests  int           `json:"default_requests"`
	PublicRequests   int           `json:"public_requests"`
	AuthRequests     int           `json:"auth_requests"`
	CheckoutRequests int           `json:"checkout_requests"`
	AdminRequests    int           `json:"admin_requests"`
	WhitelistedIPs   []string      `json:"whitelisted_ips"`
}

// Result represents rate limit check result
type Result struct {
	Allowed   bool  `json:"allowed"`
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	ResetTime int64 `json:"reset_time"`
}

// RateLimiter handles rate limiting using Redis
type RateLimiter struct {
	client *redis.Client
	config *Config
}

func NewRateLimiter(client *redis.Client, config *Config) *RateLimiter {
	return &RateLimiter{
		client: client,
		config: config,
	}
}

// IsAllowed checks whether a request from clientIP fits the bucket's limit
func (r *RateLimiter) IsAllowed(ctx context.Context, clientIP string, limitType RateLimitType) (*Result, error) {
	limit := r.getLimit(limitType)

	if !r.config.Enabled || r.isWhitelisted(clientIP) {
		return &Result{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit,
			ResetTime: time.Now().Add(r.config.WindowDuration).Unix(),
		}, nil
	}

	key := fmt.Sprintf("beeos:ratelimit:%s:%s", clientIP, limitType)
	return r.checkLimit(ctx, key, limit)
}

// The script returns {allowed, remaining}. Allowed must be an explicit flag:
// a saturated bucket and the request that fills it both sit at count == limit,
// so the count alone cannot tell acceptance from rejection.
const slidingWindowScript = `
	local key = KEYS[1]
	local window_start = tonumber(ARGV[1])
	local now = tonumber(ARGV[2])
	local limit = tonumber(ARGV[3])
	local window_seconds = tonumber(ARGV[4])
	local member = ARGV[5]

	-- Remove entries outside the window
	redis.call('ZREMRANGEBYSCORE', key, '-inf', window_start)

	local current_count = redis.call('ZCARD', key)

	if current_count >= limit then
		redis.call('EXPIRE', key, window_seconds)
		return {0, 0}
	end

	-- Record this request; the member must be unique so same-second
	-- requests are not collapsed into one sorted-set entry
	redis.call('ZADD', key, now, member)
	redis.call('EXPIRE', key, window_seconds)

	return {1, limit - current_count - 1}
`

// checkLimit performs the actual check using a sliding window over a sorted set
func (r *RateLimiter) checkLimit(ctx context.Context, key string, limit int) (*Result, error) {
	now := time.Now()
	windowStart := now.Add(-r.config.WindowDuration)

	result, err := r.client.Eval(ctx, slidingWindowScript, []string{key},
		windowStart.Unix(),
		now.Unix(),
		limit,
		int(r.config.WindowDuration.Seconds()),
		uuid.NewString()).Result()

	if err != nil {
		return nil, fmt.Errorf("redis eval failed: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) != 2 {
		return nil, fmt.Errorf("unexpected redis response")
	}

	allowed, _ := strconv.Atoi(fmt.Sprintf("%v", values[0]))
	remaining, _ := strconv.Atoi(fmt.Sprintf("%v", values[1]))
	if remaining < 0 {
		remaining = 0
	}

	return &Result{
		Allowed:   allowed == 1,
		Limit:     limit,
		Remaining: remaining,
		ResetTime: now.Add(r.config.WindowDuration).Unix(),
	}, nil
}

func (r *RateLimiter) getLimit(limitType RateLimitType) int {
	switch limitType {
	case RateLimitTypePublic:
		return r.config.PublicRequests
	case RateLimitTypeAuth:
		return r.config.AuthRequests
	case RateLimitTypeCheckout:
		return r.config.CheckoutRequests
	case RateLimitTypeAdmin:
		return r.config.AdminRequests
	default:
		return r.config.DefaultRequests
	}
}

func (r *RateLimiter) isWhitelisted(clientIP string) bool {
	for _, ip := range r.config.WhitelistedIPs {
		if ip == clientIP {
			return true
		}
	}
	return false
}
