// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about graph construction, component merges
// and zoom steps.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGraphHooks(&myGraphHooks{})
//	    // ... run application
//	}
//
// The graph manager calls hooks to emit events:
//
//	observability.Graph().OnEdgeCreated(label, position, selfLoop)
package observability

import (
	"sync"
)

// =============================================================================
// Graph Hooks
// =============================================================================

// GraphHooks receives events from graph managers. Hooks run synchronously
// inside the pointer event that caused them and must not block.
type GraphHooks interface {
	// OnNodeCreated records a new node.
	OnNodeCreated(label string)

	// OnEdgeCreated records a new edge and its parallel-edge position.
	OnEdgeCreated(label string, position int, selfLoop bool)

	// OnComponentCreated records a component allocated by an edge.
	OnComponentCreated(id string)

	// OnComponentMerged records absorbed being folded into survivor.
	OnComponentMerged(survivor, absorbed string, joined int)

	// OnZoom records a successful zoom step and the resulting counters.
	OnZoom(in bool, inCount, outCount int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGraphHooks is a no-op implementation of GraphHooks.
type NoopGraphHooks struct{}

func (NoopGraphHooks) OnNodeCreated(string)                  {}
func (NoopGraphHooks) OnEdgeCreated(string, int, bool)       {}
func (NoopGraphHooks) OnComponentCreated(string)             {}
func (NoopGraphHooks) OnComponentMerged(string, string, int) {}
func (NoopGraphHooks) OnZoom(bool, int, int)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	graphHooks GraphHooks = NoopGraphHooks{}
	hooksMu    sync.RWMutex
)

// SetGraphHooks registers custom graph hooks.
// This should be called once at application startup before any graph is built.
func SetGraphHooks(h GraphHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		graphHooks = h
	}
}

// Graph returns the registered graph hooks.
func Graph() GraphHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return graphHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	graphHooks = NoopGraphHooks{}
}
