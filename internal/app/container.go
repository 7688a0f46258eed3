// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/config"
	"github.com/runoshun/todo/internal/infra/filesource"
	"github.com/runoshun/todo/internal/infra/logging"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/infra/remote"
	"github.com/runoshun/todo/internal/infra/taskwire"
	"github.com/runoshun/todo/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir   string // Working directory (holds .todo.toml)
	ConfigDir string // Global config directory (holds config.toml and logs/)
}

// Container provides dependency injection for the application.
// It owns the single task store and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskStore
	Source        domain.TaskSource
	Clock         domain.Clock
	Encoder       domain.TaskEncoder
	FileLogger    domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	Logger    *slog.Logger
	AppConfig *domain.Config
	closer    func() error

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
func New(dir string) (*Container, error) {
	cfg := Config{
		WorkDir:   dir,
		ConfigDir: config.DefaultGlobalConfigDir(),
	}

	configLoader := config.NewLoaderWithGlobalDir(cfg.WorkDir, cfg.ConfigDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	source, err := NewSource(appConfig.Source)
	if err != nil {
		return nil, err
	}

	level := logging.ParseLevel(appConfig.Log.Level)
	fileLogger := logging.New(cfg.ConfigDir, level)

	// Create logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if path := fileLogger.Path(); path != "" {
		logger.Debug("file log", "path", path)
	}

	store := memstore.New(domain.NewState(appConfig.View.Filter, appConfig.View.Sort))

	return &Container{
		Store:         store,
		Source:        source,
		Clock:         domain.RealClock{},
		Encoder:       taskwire.Encoder{},
		FileLogger:    fileLogger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManagerWithGlobalDir(cfg.WorkDir, cfg.ConfigDir),
		Logger:        logger,
		AppConfig:     appConfig,
		closer:        fileLogger.Close,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, store domain.TaskStore, source domain.TaskSource, clock domain.Clock, fileLogger domain.Logger, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	return &Container{
		Store:      store,
		Source:     source,
		Clock:      clock,
		Encoder:    taskwire.Encoder{},
		FileLogger: fileLogger,
		Logger:     logger,
		AppConfig:  appConfig,
		Config:     cfg,
	}
}

// NewSource selects the task source for sc.URL.
// HTTP(S) URLs use the remote client; .json/.yaml/.yml paths use the seed file reader.
// An empty URL returns a nil source.
func NewSource(sc domain.SourceConfig) (domain.TaskSource, error) {
	if sc.URL == "" {
		return nil, nil
	}

	if u, err := url.Parse(sc.URL); err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != "" {
		return remote.NewClient(sc.URL, sc.Timeout), nil
	}

	if filesource.Supports(sc.URL) {
		return filesource.New(sc.URL), nil
	}

	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedSource, sc.URL)
}

// UseSource replaces the task source with the one selected for rawURL.
// It must be called before the bootstrap runs.
func (c *Container) UseSource(rawURL string) error {
	sc := c.AppConfig.Source
	sc.URL = rawURL
	source, err := NewSource(sc)
	if err != nil {
		return err
	}
	c.AppConfig.Source = sc
	c.Source = source
	return nil
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case reporting to n.
func (c *Container) AddTaskUseCase(n domain.Notifier) *usecase.AddTask {
	return usecase.NewAddTask(c.Store, c.Clock, n, c.FileLogger)
}

// ToggleTaskUseCase returns a new ToggleTask use case reporting to n.
func (c *Container) ToggleTaskUseCase(n domain.Notifier) *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Store, n, c.FileLogger)
}

// DeleteTaskUseCase returns a new DeleteTask use case reporting to n.
func (c *Container) DeleteTaskUseCase(n domain.Notifier) *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Store, n, c.FileLogger)
}

// SetFilterUseCase returns a new SetFilter use case.
func (c *Container) SetFilterUseCase() *usecase.SetFilter {
	return usecase.NewSetFilter(c.Store)
}

// SetSortUseCase returns a new SetSort use case.
func (c *Container) SetSortUseCase() *usecase.SetSort {
	return usecase.NewSetSort(c.Store)
}

// BootstrapUseCase returns a new Bootstrap use case.
func (c *Container) BootstrapUseCase() *usecase.Bootstrap {
	return usecase.NewBootstrap(c.Store, c.Source, c.FileLogger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Store)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Store, c.Encoder)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}
