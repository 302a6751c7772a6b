// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about chart updates, value animations, text fitting and
// colour resolution.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// The layout core runs synchronously inside a render cycle, so hooks receive
// plain values rather than a context.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetColorHooks(&missingKeyCounter{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Color().OnMissingKey(scheme.Name, key)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Chart Hooks
// =============================================================================

// ChartHooks receives events from chart update cycles.
type ChartHooks interface {
	// OnUpdate records one completed update cycle of a chart.
	OnUpdate(chartType, name string, duration time.Duration)
}

// =============================================================================
// Animation Hooks
// =============================================================================

// AnimationHooks receives events from value animations.
type AnimationHooks interface {
	// OnStart records a new animation sequence.
	OnStart(id string, from, to float64)

	// OnCancel records a sequence stopped before it finished, either
	// explicitly or because a newer sequence superseded it.
	OnCancel(id string, frames int)

	// OnFinish records a sequence that reached its target value.
	OnFinish(id string, frames int, duration time.Duration)
}

// =============================================================================
// Text Fit Hooks
// =============================================================================

// TextFitHooks receives events from adaptive text fitting.
type TextFitHooks interface {
	// OnPass records one measurement pass. converged is true when the pass
	// produced no scale change.
	OnPass(pass int, scale float64, converged bool)

	// OnDefer records a pass skipped because the element had no size yet.
	OnDefer()
}

// =============================================================================
// Color Hooks
// =============================================================================

// ColorHooks receives events from colour resolution.
type ColorHooks interface {
	// OnMissingKey records a key that had neither an override nor a place in
	// the domain and fell back to the default colour.
	OnMissingKey(scheme, key string)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopChartHooks is a no-op implementation of ChartHooks.
type NoopChartHooks struct{}

func (NoopChartHooks) OnUpdate(string, string, time.Duration) {}

// NoopAnimationHooks is a no-op implementation of AnimationHooks.
type NoopAnimationHooks struct{}

func (NoopAnimationHooks) OnStart(string, float64, float64)    {}
func (NoopAnimationHooks) OnCancel(string, int)                {}
func (NoopAnimationHooks) OnFinish(string, int, time.Duration) {}

// NoopTextFitHooks is a no-op implementation of TextFitHooks.
type NoopTextFitHooks struct{}

func (NoopTextFitHooks) OnPass(int, float64, bool) {}
func (NoopTextFitHooks) OnDefer()                  {}

// NoopColorHooks is a no-op implementation of ColorHooks.
type NoopColorHooks struct{}

func (NoopColorHooks) OnMissingKey(string, string) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	chartHooks     ChartHooks     = NoopChartHooks{}
	animationHooks AnimationHooks = NoopAnimationHooks{}
	textFitHooks   TextFitHooks   = NoopTextFitHooks{}
	colorHooks     ColorHooks     = NoopColorHooks{}
	hooksMu        sync.RWMutex
)

// SetChartHooks registers custom chart hooks.
// This should be called once at application startup.
func SetChartHooks(h ChartHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		chartHooks = h
	}
}

// SetAnimationHooks registers custom animation hooks.
func SetAnimationHooks(h AnimationHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		animationHooks = h
	}
}

// SetTextFitHooks registers custom text fit hooks.
func SetTextFitHooks(h TextFitHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		textFitHooks = h
	}
}

// SetColorHooks registers custom colour hooks.
func SetColorHooks(h ColorHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		colorHooks = h
	}
}

// Chart returns the registered chart hooks.
func Chart() ChartHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return chartHooks
}

// Animation returns the registered animation hooks.
func Animation() AnimationHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return animationHooks
}

// TextFit returns the registered text fit hooks.
func TextFit() TextFitHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return textFitHooks
}

// Color returns the registered colour hooks.
func Color() ColorHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return colorHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	chartHooks = NoopChartHooks{}
	animationHooks = NoopAnimationHooks{}
	textFitHooks = NoopTextFitHooks{}
	colorHooks = NoopColorHooks{}
}
