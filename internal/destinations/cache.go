// README: Redis read-through cache for destination fact sheets.
package destinations

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// CachedProvider caches fact sheets in redis. Cache errors never fail a
// lookup; they log and fall through to the wrapped provider.
type CachedProvider struct {
	inner Provider
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedProvider(inner Provider, rdb *redis.Client, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, rdb: rdb, ttl: ttl}
}

func cacheKey(destination string) string {
	return "trek:facts:" + strings.ToLower(strings.TrimSpace(destination))
}

func (p *CachedProvider) Lookup(ctx context.Context, destination string) (Facts, error) {
	key := cacheKey(destination)

	if raw, err := p.rdb.Get(ctx, key).Result(); err == nil {
		var f Facts
		if err := json.Unmarshal([]byte(raw), &f); err == nil {
			return f, nil
		}
		// Corrupt entry: drop it and refetch.
		p.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		log.Printf("facts cache get %s: %v", key, err)
	}

	facts, err := p.inner.Lookup(ctx, destination)
	if err != nil {
		return Facts{}, err
	}

	if raw, err := json.Marshal(facts); err == nil {
		if err := p.rdb.Set(ctx, key, raw, p.ttl).Err(); err != nil {
			log.Printf("facts cache set %s: %v", key, err)
		}
	}
	return facts, nil
}
