package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Keys for the public portfolio reads. Admin mutations invalidate the whole
// set; content edits are rare enough that per-key precision buys nothing.
const (
	KeyPersonalInfo    = "portfolio:personal-info"
	KeyExperiences     = "portfolio:experiences"
	KeyProjects        = "portfolio:projects"
	KeyFeaturedProj    = "portfolio:projects:featured"
	KeySkills          = "portfolio:skills"
	KeyEducation       = "portfolio:education"
	KeyTestimonials    = "portfolio:testimonials"
	KeyTalents         = "portfolio:talents"
	KeyApprovedReviews = "portfolio:reviews:approved"
	KeyReviewStats     = "portfolio:reviews:stats"
)

var allKeys = []string{
	KeyPersonalInfo, KeyExperiences, KeyProjects, KeyFeaturedProj,
	KeySkills, KeyEducation, KeyTestimonials, KeyTalents,
	KeyApprovedReviews, KeyReviewStats,
}

// Cache is a redis-backed read-through layer over the public portfolio
// reads. A nil Cache (or one built with an empty address) is valid and
// means every read goes straight to the store.
type Cache struct {
	rdb *redis.Client
	ttl time.Duration
	log zerolog.Logger
}

func New(addr, password string, ttl time.Duration, log zerolog.Logger) *Cache {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, Password: password})
	return &Cache{rdb: rdb, ttl: ttl, log: log}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// InvalidatePortfolio drops every public-read key. Called after each
// successful admin mutation so visitor-facing views refresh promptly.
func (c *Cache) InvalidatePortfolio(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, allKeys...).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache: invalidation failed")
	}
}

func (c *Cache) get(ctx context.Context, key string, dest any) bool {
	if c == nil {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("key", key).Msg("cache: get failed")
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: stale payload dropped")
		return false
	}
	return true
}

func (c *Cache) set(ctx context.Context, key string, v any) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Str("key", key).Msg("cache: set failed")
	}
}

// Through serves key from the cache when possible, otherwise fetches from
// the store and fills the cache. Cache trouble never fails the request.
func Through[T any](ctx context.Context, c *Cache, key string, fetch func() (T, error)) (T, error) {
	var cached T
	if c.get(ctx, key, &cached) {
		return cached, nil
	}
	fresh, err := fetch()
	if err != nil {
		return fresh, err
	}
	c.set(ctx, key, fresh)
	return fresh, nil
}
