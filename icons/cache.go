package icons

import (
	"fmt"
	"time"

	"github.com/alovak/cardfield/brand"
	"github.com/patrickmn/go-cache"
)

// CachedProvider memoizes another provider's answers for a while. It is
// safe for concurrent use.
type CachedProvider struct {
	next  Provider
	store *cache.Cache
}

// Cached wraps p so each (brand, forCVC, valid) lookup reaches p at most
// once per ttl. A ttl <= 0 keeps entries until the process exits.
func Cached(p Provider, ttl time.Duration) *CachedProvider {
	cleanup := 2 * ttl
	if ttl <= 0 {
		ttl = cache.NoExpiration
		cleanup = 0
	}
	return &CachedProvider{
		next:  p,
		store: cache.New(ttl, cleanup),
	}
}

func (c *CachedProvider) IconFor(b brand.Brand, forCVC, valid bool) IconRef {
	key := fmt.Sprintf("%d/%t/%t", b, forCVC, valid)
	if v, ok := c.store.Get(key); ok {
		return v.(IconRef)
	}
	ref := c.next.IconFor(b, forCVC, valid)
	c.store.Set(key, ref, cache.DefaultExpiration)
	return ref
}

// Flush drops every cached icon, e.g. after the host swaps its asset set.
func (c *CachedProvider) Flush() {
	c.store.Flush()
}
