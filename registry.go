// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package pathkit

import (
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for names nobody registered.
var ErrUnknownBackend = errors.New("pathkit: unknown backend")

// BackendConfig carries the options a backend factory is created with.
type BackendConfig struct {
	// QuadCurves enables native quadratic curves on toolkits where support
	// depends on the runtime (AppKit gained it late). Backends without any
	// native support ignore it.
	QuadCurves bool
}

// BackendOption configures a backend created through NewBackend.
type BackendOption func(*BackendConfig)

// WithQuadCurves sets whether native quadratic curves may be used.
func WithQuadCurves(enabled bool) BackendOption {
	return func(c *BackendConfig) {
		c.QuadCurves = enabled
	}
}

func defaultBackendConfig() BackendConfig {
	return BackendConfig{QuadCurves: true}
}

// BackendFactory creates a backend from its configuration.
type BackendFactory func(cfg BackendConfig) Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name. Backend packages call it
// from init(), following the database/sql driver pattern:
//
//	func init() {
//		pathkit.Register("gtk", func(cfg pathkit.BackendConfig) pathkit.Backend {
//			return New()
//		})
//	}
//
// Register panics if factory is nil or name is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("pathkit: Register factory is nil")
	}
	if _, dup := backends[name]; dup {
		panic("pathkit: Register called twice for " + name)
	}
	backends[name] = factory
	Logger().Info("pathkit: backend registered", "name", name)
}

// Unregister removes a backend. It exists for tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// NewBackend creates the backend registered under name.
func NewBackend(name string, opts ...BackendOption) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}

	cfg := defaultBackendConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return factory(cfg), nil
}

// MustBackend is like NewBackend but panics on error.
func MustBackend(name string, opts ...BackendOption) Backend {
	b, err := NewBackend(name, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// Backends returns the registered backend names in sorted order.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered reports whether name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// preferredBackends returns backend names in the order Default tries them
// on the given operating system.
func preferredBackends(goos string) []string {
	if goos == "darwin" {
		return []string{"appkit", "gtk"}
	}
	return []string{"gtk", "appkit"}
}

// Default creates the native backend for the running platform: AppKit on
// macOS, GTK elsewhere. If the preferred backends are not registered, the
// first registered backend in name order is used.
func Default(opts ...BackendOption) (Backend, error) {
	for _, name := range preferredBackends(runtime.GOOS) {
		if IsRegistered(name) {
			return NewBackend(name, opts...)
		}
	}
	if names := Backends(); len(names) > 0 {
		return NewBackend(names[0], opts...)
	}
	return nil, fmt.Errorf("%w: none registered", ErrUnknownBackend)
}
