package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages configuration files.
type Manager struct {
	workDir       string // Directory holding .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(workDir, globalConfDir string) *Manager {
	return &Manager{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// GetGlobalConfigInfo returns information about the global config file.
func (m *Manager) GetGlobalConfigInfo() domain.ConfigInfo {
	if m.globalConfDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(domain.GlobalConfigPath(m.globalConfDir))
}

// GetLocalConfigInfo returns information about the working directory config file.
func (m *Manager) GetLocalConfigInfo() domain.ConfigInfo {
	if m.workDir == "" {
		return domain.ConfigInfo{}
	}
	return m.getConfigInfo(domain.LocalConfigPath(m.workDir))
}

// getConfigInfo reads a config file and returns its info.
func (m *Manager) getConfigInfo(path string) domain.ConfigInfo {
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitGlobalConfig creates the global config file rendered from cfg.
func (m *Manager) InitGlobalConfig(cfg *domain.Config, force bool) error {
	if m.globalConfDir == "" {
		return domain.ErrNoConfigDir
	}
	path := domain.GlobalConfigPath(m.globalConfDir)

	if !force {
		if _, err := os.Stat(path); err == nil {
			return domain.ErrConfigExists
		}
	}

	// Create parent directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(domain.RenderConfigTemplate(cfg)), 0600)
}
