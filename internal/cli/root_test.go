package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todo/internal/app"
	"github.com/runoshun/todo/internal/domain"
)

func TestNewRootCommand_NoArgs_LaunchesTUI(t *testing.T) {
	// Save original function and restore after test
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	// Create root command with nil container (not used in this test)
	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{})
	err := root.Execute()

	assert.NoError(t, err)
	assert.True(t, called, "launchTUIFunc should be called when no arguments are provided")
}

func TestNewRootCommand_TUISubcommand_LaunchesTUI(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	root.SetArgs([]string{"tui"})

	assert.NoError(t, root.Execute())
	assert.True(t, called)
}

func TestNewRootCommand_WithHelp_ShowsHelp(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	root := NewRootCommand(nil, "test-version")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--help"})
	err := root.Execute()

	assert.NoError(t, err)
	assert.False(t, called, "launchTUIFunc should NOT be called when --help is provided")
	assert.Contains(t, buf.String(), "Task Commands:")
	assert.Contains(t, buf.String(), "Setup Commands:")
}

func TestNewRootCommand_Version(t *testing.T) {
	root := NewRootCommand(nil, "1.2.3")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetArgs([]string{"--version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, buf.String(), "1.2.3")
}

func TestNewRootCommand_PrintsConfigWarnings(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()
	launchTUIFunc = func(c *app.Container) error { return nil }

	appConfig := domain.NewDefaultConfig()
	appConfig.Warnings = []string{"unknown section: colors"}
	container := newTestContainer(appConfig, nil)

	root := NewRootCommand(container, "test-version")
	var stderr bytes.Buffer
	root.SetErr(&stderr)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Equal(t, "Warning: unknown section: colors\n", stderr.String())
}

func TestNewRootCommand_SourceFlag(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	var got domain.TaskSource
	launchTUIFunc = func(c *app.Container) error {
		got = c.Source
		return nil
	}

	container := newTestContainer(nil, nil)
	root := NewRootCommand(container, "test-version")
	root.SetArgs([]string{"--source", "seed.yaml"})

	require.NoError(t, root.Execute())
	assert.NotNil(t, got)
	assert.Equal(t, "seed.yaml", container.AppConfig.Source.URL)
}

func TestNewRootCommand_SourceFlag_Unsupported(t *testing.T) {
	originalFunc := launchTUIFunc
	defer func() {
		launchTUIFunc = originalFunc
	}()

	called := false
	launchTUIFunc = func(c *app.Container) error {
		called = true
		return nil
	}

	container := newTestContainer(nil, nil)
	root := NewRootCommand(container, "test-version")
	root.SetArgs([]string{"--source", "seed.csv"})

	err := root.Execute()

	assert.ErrorIs(t, err, domain.ErrUnsupportedSource)
	assert.False(t, called)
}

func TestLaunchTUI_NilContainer(t *testing.T) {
	assert.Error(t, launchTUI(nil))
}
