package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/restoservice/repair-admin/internal/models"
)

const trackingTTL = 5 * time.Minute

// TrackingCache is a cache-aside layer in front of the public
// order-number lookup. Every method is safe on a nil receiver and
// fails open: Redis being down only costs the cache hit.
type TrackingCache struct {
	rdb *redis.Client
}

// NewTrackingCache returns nil when no address is configured.
func NewTrackingCache(addr, password string) *TrackingCache {
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	return &TrackingCache{rdb: rdb}
}

func key(orderNumber string) string {
	return "tracking:" + orderNumber
}

func (c *TrackingCache) Get(ctx context.Context, orderNumber string) (*models.RepairOrder, bool) {
	if c == nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, key(orderNumber)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("tracking cache get: %v", err)
		}
		return nil, false
	}

	var o models.RepairOrder
	if err := json.Unmarshal([]byte(raw), &o); err != nil {
		return nil, false
	}
	return &o, true
}

func (c *TrackingCache) Set(ctx context.Context, o *models.RepairOrder) {
	if c == nil || o == nil {
		return
	}

	raw, err := json.Marshal(o)
	if err != nil {
		return
	}

	if err := c.rdb.Set(ctx, key(o.OrderNumber), raw, trackingTTL).Err(); err != nil {
		log.Printf("tracking cache set: %v", err)
	}
}

// Invalidate drops the cached entry after an order mutation so the
// public view never serves a stale status longer than necessary.
func (c *TrackingCache) Invalidate(ctx context.Context, orderNumber string) {
	if c == nil || orderNumber == "" {
		return
	}

	if err := c.rdb.Del(ctx, key(orderNumber)).Err(); err != nil {
		log.Printf("tracking cache invalidate: %v", err)
	}
}
