package api

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// NewCache returns the list cache, or nil when ttl is not positive.
func NewCache(ttl, cleanup time.Duration) *cache.Cache {
	if ttl <= 0 {
		return nil
	}
	return cache.New(ttl, cleanup)
}

func cached[T any](h *Handler, key string, fetch func() (T, error)) (T, error) {
	if h.cache != nil {
		if data, found := h.cache.Get(key); found {
			if v, ok := data.(T); ok {
				return v, nil
			}
		}
	}

	data, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	if h.cache != nil {
		h.cache.Set(key, data, cache.DefaultExpiration)
	}
	return data, nil
}
