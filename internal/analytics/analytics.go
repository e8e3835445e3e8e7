// Package analytics is a flag-gated event tracker. It records events in the
// log stream only; no analytics backend is attached.
package analytics

import (
	"sync"

	"go.uber.org/zap"
)

// Tracker forwards analytics calls when analytics is enabled for the build.
type Tracker struct {
	enabled     bool
	environment string
	logger      *zap.Logger

	mu      sync.Mutex
	pending int
}

// New creates a Tracker. environment is only used for log context.
func New(enabled bool, environment string, logger *zap.Logger) *Tracker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracker{
		enabled:     enabled,
		environment: environment,
		logger:      logger.Named("analytics"),
	}
}

// Initialize announces whether analytics is active for this environment.
func (t *Tracker) Initialize() {
	if t.enabled {
		t.logger.Info("analytics initialized", zap.String("environment", t.environment))
		return
	}
	t.logger.Info("analytics disabled", zap.String("environment", t.environment))
}

// CanTrack reports whether events are recorded.
func (t *Tracker) CanTrack() bool {
	return t.enabled
}

// TrackEvent records a custom event with optional parameters.
func (t *Tracker) TrackEvent(name string, params map[string]any) {
	if !t.enabled {
		t.logger.Debug("analytics disabled, event not tracked", zap.String("event", name))
		return
	}
	t.record()
	t.logger.Info("event tracked", zap.String("event", name), zap.Any("params", params))
}

// TrackScreen records a screen (or endpoint) view.
func (t *Tracker) TrackScreen(name string) {
	if !t.enabled {
		return
	}
	t.record()
	t.logger.Info("screen tracked", zap.String("screen", name))
}

// SetUserProperty attaches a property to the current user.
func (t *Tracker) SetUserProperty(name, value string) {
	if !t.enabled {
		return
	}
	t.logger.Info("user property set", zap.String("name", name), zap.String("value", value))
}

// SetUserID associates subsequent events with a user.
func (t *Tracker) SetUserID(id string) {
	if !t.enabled {
		return
	}
	t.logger.Info("user id set", zap.String("user_id", id))
}

// Flush reports and resets the number of events recorded since the last flush.
func (t *Tracker) Flush() int {
	if !t.enabled {
		return 0
	}
	t.mu.Lock()
	n := t.pending
	t.pending = 0
	t.mu.Unlock()

	t.logger.Info("analytics flushed", zap.Int("events", n))
	return n
}

func (t *Tracker) record() {
	t.mu.Lock()
	t.pending++
	t.mu.Unlock()
}
