// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"sync"
	"time"

	"github.com/runoshun/todo/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskSource is a test double for domain.TaskSource.
// Fields are ordered to minimize memory padding.
type MockTaskSource struct {
	FetchErr   error
	Tasks      []domain.Task
	Skipped    []string
	FetchCalls int
	LastLimit  int
}

// Ensure MockTaskSource implements domain.TaskSource.
var _ domain.TaskSource = (*MockTaskSource)(nil)

// Fetch returns the first limit configured tasks or the configured error.
func (m *MockTaskSource) Fetch(ctx context.Context, limit int) (*domain.FetchResult, error) {
	m.FetchCalls++
	m.LastLimit = limit
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if m.FetchErr != nil {
		return nil, m.FetchErr
	}
	n := len(m.Tasks)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Task, n)
	copy(out, m.Tasks)
	return &domain.FetchResult{
		Tasks:   out,
		Skipped: append([]string(nil), m.Skipped...),
		Total:   len(m.Tasks) + len(m.Skipped),
	}, nil
}

// MockNotifier records every notice.
type MockNotifier struct {
	Notices []domain.Notice
}

// Ensure MockNotifier implements domain.Notifier.
var _ domain.Notifier = (*MockNotifier)(nil)

// Notify records n.
func (m *MockNotifier) Notify(n domain.Notice) {
	m.Notices = append(m.Notices, n)
}

// Last returns the most recent notice, or a zero Notice.
func (m *MockNotifier) Last() domain.Notice {
	if len(m.Notices) == 0 {
		return domain.Notice{}
	}
	return m.Notices[len(m.Notices)-1]
}

// LogEntry is one line captured by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

// Ensure MockLogger implements domain.Logger.
var _ domain.Logger = (*MockLogger)(nil)

func (m *MockLogger) add(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("debug", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("info", category, msg) }

// Warn records a warn entry.
func (m *MockLogger) Warn(category, msg string) { m.add("warn", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("error", category, msg) }

// ByLevel returns the entries logged at level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Ensure MockConfigLoader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// LoadGlobal behaves like Load.
func (m *MockConfigLoader) LoadGlobal() (*domain.Config, error) {
	return m.Load()
}

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitConfig *domain.Config
	GlobalInfo domain.ConfigInfo
	LocalInfo  domain.ConfigInfo
	InitCalled bool
	InitForced bool
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// GetGlobalConfigInfo returns the configured info.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo {
	return m.GlobalInfo
}

// GetLocalConfigInfo returns the configured info.
func (m *MockConfigManager) GetLocalConfigInfo() domain.ConfigInfo {
	return m.LocalInfo
}

// InitGlobalConfig records the call.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config, force bool) error {
	m.InitCalled = true
	m.InitForced = force
	m.InitConfig = cfg
	return m.InitErr
}
