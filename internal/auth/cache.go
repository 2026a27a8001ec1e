package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedMembership decorates a MembershipChecker with a short-TTL Redis
// cache. The cache is an optimisation only: any cache fault falls through to
// the underlying store, so a classification is never served from a degraded
// cache path.
type CachedMembership struct {
	next   MembershipChecker
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedMembership wraps next with a Redis-backed cache.
func NewCachedMembership(next MembershipChecker, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedMembership {
	return &CachedMembership{next: next, client: client, ttl: ttl, logger: logger}
}

func membershipKey(userID string) string {
	return "harborgate:admin:" + userID
}

// IsAdmin answers from cache when possible, otherwise consults the store and
// caches the answer.
func (c *CachedMembership) IsAdmin(ctx context.Context, userID string) (bool, error) {
	cached, err := c.client.Get(ctx, membershipKey(userID)).Result()
	if err == nil {
		return cached == "1", nil
	}
	if err != redis.Nil {
		c.logger.Warn("admin cache read", slog.Any("error", err))
	}

	isAdmin, err := c.next.IsAdmin(ctx, userID)
	if err != nil {
		return false, err
	}

	value := "0"
	if isAdmin {
		value = "1"
	}
	if err := c.client.Set(ctx, membershipKey(userID), value, c.ttl).Err(); err != nil {
		c.logger.Warn("admin cache write", slog.Any("error", err))
	}
	return isAdmin, nil
}

var _ MembershipChecker = (*CachedMembership)(nil)
