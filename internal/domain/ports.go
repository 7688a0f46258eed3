package domain

import (
	"context"
	"io"
	"time"
)

// TaskStore is the state container owned by the application root.
// Dispatch runs one transition to completion before the next one starts.
type TaskStore interface {
	// Dispatch applies the action and returns the new state.
	Dispatch(a Action) State

	// State returns the current state.
	State() State

	// View returns the current view projection.
	View() []Task

	// Counts returns counters over the unfiltered items.
	Counts() Counts
}

// TaskSource supplies the initial task collection.
type TaskSource interface {
	// Fetch retrieves at most limit tasks from the front of the source
	// (limit <= 0 means all). It is called once per session.
	// Malformed elements in that prefix are skipped and reported in the result.
	Fetch(ctx context.Context, limit int) (*FetchResult, error)
}

// FetchResult is what a TaskSource returned.
// Fields are ordered to minimize memory padding.
type FetchResult struct {
	Tasks   []Task   // Well-formed tasks in source order
	Skipped []string // One reason per malformed element
	Total   int      // Elements in the payload before the limit
}

// TaskEncoder writes tasks in a serialization format.
type TaskEncoder interface {
	Encode(w io.Writer, format ExportFormat, tasks []Task) error
}

// Notifier receives notices about user actions. It is one-way.
type Notifier interface {
	Notify(n Notice)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(n Notice)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notice) {
	f(n)
}

// NopNotifier discards every notice.
type NopNotifier struct{}

// Notify does nothing.
func (NopNotifier) Notify(Notice) {}

// Logger writes categorized log lines.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults, global, local).
	Load() (*Config, error)

	// LoadGlobal returns only the global configuration.
	LoadGlobal() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetLocalConfigInfo returns information about the working directory config file.
	GetLocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the global config file rendered from cfg.
	// An existing file is kept unless force is set.
	InitGlobalConfig(cfg *Config, force bool) error
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
