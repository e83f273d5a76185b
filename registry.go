package folio

import (
	"sync"
)

// Factory builds a middleware with default configuration.
type Factory func(own Ownership) (BlockMiddleware, error)

// registryKey combines metadata key and ownership for cache lookup.
type registryKey struct {
	key       string
	ownership Ownership
}

var (
	factories = map[string]Factory{
		KeyLatexEncoding: func(own Ownership) (BlockMiddleware, error) { return NewLatexEncoding(own) },
		KeyLatexDecoding: func(own Ownership) (BlockMiddleware, error) { return NewLatexDecoding(own) },
	}
	registry   = make(map[registryKey]BlockMiddleware)
	registryMu sync.RWMutex
)

// Register makes a middleware factory available to Use under key,
// replacing any factory already registered there. Cached instances for
// key are dropped.
func Register(key string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	factories[key] = f
	for k := range registry {
		if k.key == key {
			delete(registry, k)
		}
	}
}

// Use returns a cached middleware or builds a new one.
// Middlewares are cached by metadata key and ownership.
func Use(key string, own Ownership) (BlockMiddleware, error) {
	rk := registryKey{key: key, ownership: own}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[rk]; ok {
		registryMu.RUnlock()
		return cached, nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[rk]; ok {
		return cached, nil
	}

	f, ok := factories[key]
	if !ok {
		return nil, newConfigError(ErrUnknownMiddleware, key, "")
	}

	mw, err := f(own)
	if err != nil {
		return nil, err
	}

	registry[rk] = mw
	return mw, nil
}

// Reset clears the middleware cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]BlockMiddleware)
}
