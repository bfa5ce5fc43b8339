package notification

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const allUsersKey = "all-users"

// idCache is a small expiring cache for the full user id list. Broadcasts
// to all users are rare but the id fetch is the most expensive part, so a
// short TTL keeps back-to-back broadcasts cheap without serving a stale
// roster for long.
type idCache struct {
	lru *expirable.LRU[string, []string]
}

// newIDCache creates the cache with the given TTL.
func newIDCache(ttl time.Duration) *idCache {
	return &idCache{
		lru: expirable.NewLRU[string, []string](1, nil, ttl),
	}
}

func (c *idCache) Get() ([]string, bool) {
	return c.lru.Get(allUsersKey)
}

func (c *idCache) Set(ids []string) {
	c.lru.Add(allUsersKey, ids)
}

// Clear drops the cached roster.
func (c *idCache) Clear() {
	c.lru.Purge()
}
