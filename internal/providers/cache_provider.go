package providers

import (
	"github.com/coocood/freecache"
	"unsafe"
	"urlchecker/internal/structures"
)

type CacheProviderInterface interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Enabled() bool
}

type CacheProvider struct {
	cache *freecache.Cache
	ttl   int
}

func NewCacheProvider(conf *structures.Config, logger Logger) CacheProviderInterface {
	if !conf.Cache.Enabled || conf.Cache.Size <= 0 {
		logger.Infof(TypeApp, "Cache disabled")
		return &noopCache{}
	}

	sizeBytes := conf.Cache.Size * 1024 * 1024
	// freecache treats 0 as "never expire"
	ttl := 0
	if conf.Cache.Ttl > 0 {
		ttl = max(int(conf.Cache.Ttl.Seconds()), 1)
	}

	logger.Infof(TypeApp, "Cache initialized: %dMB, TTL=%ds", conf.Cache.Size, ttl)

	return &CacheProvider{
		cache: freecache.NewCache(sizeBytes),
		ttl:   ttl,
	}
}

// unsafeStringToBytes converts string to []byte without allocation.
// freecache copies keys internally, so the result is never written to.
func unsafeStringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func (c *CacheProvider) Get(key string) ([]byte, bool) {
	val, err := c.cache.Get(unsafeStringToBytes(key))
	if err != nil {
		return nil, false
	}
	return val, true
}

// Set fails with freecache.ErrLargeEntry when value exceeds 1/1024 of the cache size.
func (c *CacheProvider) Set(key string, value []byte) error {
	return c.cache.Set(unsafeStringToBytes(key), value, c.ttl)
}

func (c *CacheProvider) Enabled() bool { return true }

type noopCache struct{}

func (n *noopCache) Get(_ string) ([]byte, bool)  { return nil, false }
func (n *noopCache) Set(_ string, _ []byte) error { return nil }
func (n *noopCache) Enabled() bool                { return false }
