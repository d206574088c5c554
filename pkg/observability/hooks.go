// Package observability provides hooks for metrics and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies to the document builder. The CLI registers hooks at startup
// to receive events about scene builds, diagnostics, exports and cache
// operations.
//
// Hooks default to no-ops. Registration is global and meant to happen once,
// before the first build; [Reset] restores the defaults.
//
// [PromHooks] is the bundled implementation. It records Prometheus metrics
// on a private registry that can be written to a node_exporter textfile.
//
// # Usage
//
// Register hooks at application startup:
//
//	prom := observability.NewPromHooks()
//	observability.SetBuildHooks(prom)
//	observability.SetCacheHooks(prom)
//	defer prom.WriteTextfile("svgkit.prom")
//
// The builder reaches the hooks through a diagnostic sink:
//
//	b := svg.NewBuilder(svg.WithSink(observability.DiagnosticSink(ctx)))
package observability

import (
	"context"
	"sync"
	"time"
)

// BuildHooks receives events from scene builds.
type BuildHooks interface {
	// Build events
	OnBuildStart(ctx context.Context, scene string)
	OnBuildComplete(ctx context.Context, scene string, elements int, duration time.Duration, err error)

	// OnDiagnostic records one diagnostic reported while building.
	OnDiagnostic(ctx context.Context, kind, element string)

	// OnExport records a document write.
	OnExport(ctx context.Context, path string, size int, err error)
}

// CacheHooks receives events from cache operations.
type CacheHooks interface {
	// OnCacheHit records a cache hit.
	OnCacheHit(ctx context.Context, backend string)

	// OnCacheMiss records a cache miss.
	OnCacheMiss(ctx context.Context, backend string)

	// OnCacheSet records a cache write.
	OnCacheSet(ctx context.Context, backend string, size int)
}

// NoopBuildHooks is a no-op implementation of BuildHooks.
type NoopBuildHooks struct{}

func (NoopBuildHooks) OnBuildStart(context.Context, string) {}
func (NoopBuildHooks) OnBuildComplete(context.Context, string, int, time.Duration, error) {}
func (NoopBuildHooks) OnDiagnostic(context.Context, string, string) {}
func (NoopBuildHooks) OnExport(context.Context, string, int, error) {}

// NoopCacheHooks is a no-op implementation of CacheHooks.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

var (
	buildHooks BuildHooks = NoopBuildHooks{}
	cacheHooks CacheHooks = NoopCacheHooks{}
	hooksMu    sync.RWMutex
)

// SetBuildHooks replaces the build hooks. A nil h is ignored.
func SetBuildHooks(h BuildHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		buildHooks = h
	}
}

// SetCacheHooks replaces the cache hooks. A nil h is ignored.
func SetCacheHooks(h CacheHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		cacheHooks = h
	}
}

// Build returns the registered build hooks.
func Build() BuildHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return buildHooks
}

// Cache returns the registered cache hooks.
func Cache() CacheHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return cacheHooks
}

// Reset restores the no-op hooks. The CLI calls it once a render has
// written its metrics file.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	buildHooks = NoopBuildHooks{}
	cacheHooks = NoopCacheHooks{}
}
