package domain

import (
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, DefaultSourceURL, cfg.Source.URL)
	assert.Equal(t, 30, cfg.Source.Limit)
	assert.Equal(t, DefaultFetchTimeout, cfg.Source.Timeout)
	assert.Equal(t, FilterAll, cfg.View.Filter)
	assert.Equal(t, SortByID, cfg.View.Sort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Empty(t, cfg.Warnings)
}

func TestConfigPaths(t *testing.T) {
	dir := GlobalConfigDir("/home/u/.config")

	assert.Equal(t, filepath.Join("/home/u/.config", "todo"), dir)
	assert.Equal(t, filepath.Join(dir, "config.toml"), GlobalConfigPath(dir))
	assert.Equal(t, filepath.Join(dir, "logs", "todo.log"), LogPath(dir))
	assert.Equal(t, filepath.Join("/work", ".todo.toml"), LocalConfigPath("/work"))
}

func TestRenderConfigTemplate(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Source.URL = "seed.yaml"
	cfg.Source.Limit = 5
	cfg.View.Sort = SortRecent

	out := RenderConfigTemplate(cfg)

	var raw map[string]map[string]any
	require.NoError(t, toml.Unmarshal([]byte(out), &raw))
	assert.Equal(t, "seed.yaml", raw["source"]["url"])
	assert.Equal(t, int64(5), raw["source"]["limit"])
	assert.Equal(t, "10s", raw["source"]["timeout"])
	assert.Equal(t, "all", raw["view"]["filter"])
	assert.Equal(t, "recent", raw["view"]["sort"])
	assert.Equal(t, "info", raw["log"]["level"])
	assert.Contains(t, out, "# todo configuration")
}
