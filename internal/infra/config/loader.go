// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory holding .todo.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/todo)
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// DefaultGlobalConfigDir returns the default global config directory,
// or "" when no home directory can be resolved.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration (defaults <- global <- local),
// with the TODO_SOURCE environment variable applied last.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	if l.globalConfDir != "" {
		global, err := l.loadFile(domain.GlobalConfigPath(l.globalConfDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if global != nil {
			base = mergeConfigs(base, global)
		}
	}

	if l.workDir != "" {
		local, err := l.loadFile(domain.LocalConfigPath(l.workDir))
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if local != nil {
			base = mergeConfigs(base, local)
		}
	}

	if v := os.Getenv(domain.SourceEnvVar); v != "" {
		base.Source.URL = v
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	fc, err := l.loadFile(domain.GlobalConfigPath(l.globalConfDir))
	if err != nil {
		return nil, err
	}
	return fc.cfg, nil
}

// LoadLocal returns only the working directory configuration.
func (l *Loader) LoadLocal() (*domain.Config, error) {
	if l.workDir == "" {
		return nil, os.ErrNotExist
	}
	fc, err := l.loadFile(domain.LocalConfigPath(l.workDir))
	if err != nil {
		return nil, err
	}
	return fc.cfg, nil
}

// fileConfig is the content of one config file.
// Zero is a valid timeout, so whether it was given is tracked separately.
type fileConfig struct {
	cfg        *domain.Config
	timeoutSet bool
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
// Only values that are present and valid are set; everything else stays zero.
func convertRawToDomainConfig(raw map[string]any) *fileConfig {
	res := &domain.Config{}
	timeoutSet := false
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "source":
			for k, v := range m {
				switch k {
				case "url":
					if s, ok := v.(string); ok {
						res.Source.URL = s
					}
				case "limit":
					if n, ok := v.(int64); ok && n > 0 {
						res.Source.Limit = int(n)
					} else {
						warnings = append(warnings, "invalid value in [source]: limit must be a positive integer")
					}
				case "timeout":
					d, err := parseDuration(v)
					if err != nil {
						warnings = append(warnings, fmt.Sprintf("invalid value in [source]: timeout: %v", err))
					} else {
						res.Source.Timeout = d
						timeoutSet = true
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [source]: %s", k))
				}
			}
		case "view":
			for k, v := range m {
				s, _ := v.(string)
				switch k {
				case "filter":
					if f, err := domain.ParseFilter(s); err == nil {
						res.View.Filter = f
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid value in [view]: filter %q", s))
					}
				case "sort":
					if mode, err := domain.ParseSortMode(s); err == nil {
						res.View.Sort = mode
					} else {
						warnings = append(warnings, fmt.Sprintf("invalid value in [view]: sort %q", s))
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [view]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					if s, ok := v.(string); ok {
						res.Log.Level = s
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return &fileConfig{cfg: res, timeoutSet: timeoutSet}
}

// parseDuration accepts a Go duration string or a whole number of seconds.
// Zero disables the timeout.
func parseDuration(v any) (time.Duration, error) {
	switch v := v.(type) {
	case string:
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, err
		}
		if d < 0 {
			return 0, fmt.Errorf("must not be negative, got %s", v)
		}
		return d, nil
	case int64:
		if v < 0 {
			return 0, fmt.Errorf("must not be negative, got %d", v)
		}
		return time.Duration(v) * time.Second, nil
	}
	return 0, fmt.Errorf("unsupported type %T", v)
}

// mergeConfigs merges a file config over base, with the file taking precedence.
func mergeConfigs(base *domain.Config, file *fileConfig) *domain.Config {
	override := file.cfg
	result := &domain.Config{
		Source:   base.Source,
		View:     base.View,
		Log:      base.Log,
		Warnings: append([]string{}, base.Warnings...),
	}

	// Add override warnings
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Source.URL != "" {
		result.Source.URL = override.Source.URL
	}
	if override.Source.Limit != 0 {
		result.Source.Limit = override.Source.Limit
	}
	if file.timeoutSet {
		result.Source.Timeout = override.Source.Timeout
	}
	if override.View.Filter != "" {
		result.View.Filter = override.View.Filter
	}
	if override.View.Sort != "" {
		result.View.Sort = override.View.Sort
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}

	return result
}
