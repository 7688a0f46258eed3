package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
	"time"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
type Config struct {
	Source   SourceConfig `toml:"source"`
	View     ViewConfig   `toml:"view"`
	Log      LogConfig    `toml:"log"`
	Warnings []string     `toml:"-"` // Problems found while loading (unknown keys, bad values)
}

// SourceConfig holds bootstrap settings from the [source] section.
// Fields are ordered to minimize memory padding.
type SourceConfig struct {
	URL     string        `toml:"url"`     // HTTP(S) URL or seed file path
	Timeout time.Duration `toml:"timeout"` // HTTP timeout
	Limit   int           `toml:"limit"`   // Number of tasks kept from the source
}

// ViewConfig holds the initial view preferences from the [view] section.
type ViewConfig struct {
	Filter Filter   `toml:"filter"`
	Sort   SortMode `toml:"sort"`
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// ConfigInfo describes a config file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Default configuration values.
const (
	DefaultSourceURL    = "https://jsonplaceholder.typicode.com/todos"
	DefaultFetchLimit   = 30
	DefaultFetchTimeout = 10 * time.Second
	DefaultLogLevel     = "info"
)

// Config file locations.
const (
	ConfigDirName       = "todo"        // Directory under XDG_CONFIG_HOME
	ConfigFileName      = "config.toml" // Global config file name
	LocalConfigFileName = ".todo.toml"  // Config file in the working directory
	SourceEnvVar        = "TODO_SOURCE" // Overrides source.url
)

// NewDefaultConfig returns a new Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			URL:     DefaultSourceURL,
			Limit:   DefaultFetchLimit,
			Timeout: DefaultFetchTimeout,
		},
		View: ViewConfig{
			Filter: FilterAll,
			Sort:   SortByID,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// GlobalConfigDir returns the global config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, ConfigDirName)
}

// GlobalConfigPath returns the global config file path.
func GlobalConfigPath(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// LocalConfigPath returns the config file path inside a working directory.
func LocalConfigPath(workDir string) string {
	return filepath.Join(workDir, LocalConfigFileName)
}

// LogPath returns the log file path inside the config directory.
func LogPath(configDir string) string {
	return filepath.Join(configDir, "logs", "todo.log")
}

// templateData holds the values substituted into the config template.
type templateData struct {
	SourceURL string
	Timeout   string
	Filter    Filter
	Sort      SortMode
	LogLevel  string
	Limit     int
}

// RenderConfigTemplate renders a commented config file holding the values of cfg.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		SourceURL: cfg.Source.URL,
		Limit:     cfg.Source.Limit,
		Timeout:   cfg.Source.Timeout.String(),
		Filter:    cfg.View.Filter,
		Sort:      cfg.View.Sort,
		LogLevel:  cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		// Should never happen with valid data
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
