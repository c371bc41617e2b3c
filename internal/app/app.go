package app

import (
	"fmt"
	"os"
	"sync"

	"github.com/dshills/maskedit/internal/config"
	"github.com/dshills/maskedit/internal/config/watcher"
	"github.com/dshills/maskedit/internal/field"
	"github.com/dshills/maskedit/internal/plugin/lua"
	"github.com/dshills/maskedit/internal/registry"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// the default location.
	ConfigPath string

	// LogLevel overrides the configured log level when non-empty.
	LogLevel string

	// Watch enables live reload of the configuration file.
	Watch bool
}

// Application wires configuration, the mask registry, plugins and the
// config watcher together.
type Application struct {
	mu sync.RWMutex

	opts    Options
	cfg     config.Config
	logger  *Logger
	logFile *os.File

	registry *registry.Registry
	plugins  *lua.Loader
	watcher  *watcher.Watcher
}

// New creates the application: configuration is loaded, the logger is
// built, the registry is seeded with builtins plus configured masks,
// and plugin scripts are run.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}

	app := &Application{
		opts:     opts,
		cfg:      cfg,
		registry: registry.NewWithBuiltins(),
	}

	if err := app.initLogger(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInitialization, err)
	}
	app.applyConfig()

	if opts.Watch {
		path := opts.ConfigPath
		if path == "" {
			path = config.DefaultPath()
		}
		if path != "" {
			w, err := watcher.New(path, app.onConfigChange,
				watcher.WithErrorHandler(func(err error) {
					app.Logger().Warn("config watch error: %v", err)
				}))
			if err != nil {
				// Live reload is a convenience; run without it.
				app.Logger().Warn("config watcher disabled: %v", err)
			} else {
				app.watcher = w
			}
		}
	}

	return app, nil
}

// Config returns the current configuration snapshot.
func (app *Application) Config() config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Logger returns the application logger.
func (app *Application) Logger() *Logger {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.logger
}

// Registry returns the mask registry.
func (app *Application) Registry() *registry.Registry {
	return app.registry
}

// NewField builds a field from a named mask definition, wiring in the
// configured prompt, the show-optional default and any plugin
// validator registered for the name.
func (app *Application) NewField(name string, opts ...field.Option) (*field.Field, error) {
	def, ok := app.registry.Lookup(name)
	if !ok {
		return nil, NewOperationError("new-field", name, ErrMaskNotFound)
	}

	app.mu.RLock()
	cfg := app.cfg
	plugins := app.plugins
	app.mu.RUnlock()

	prompt := def.Prompt
	if prompt == 0 {
		prompt = cfg.PromptRune()
	}

	all := []field.Option{
		field.WithLabel(def.Description),
		field.WithPrompt(prompt),
		field.WithShowOptional(cfg.Input.ShowOptional),
	}
	if plugins != nil {
		if v, ok := plugins.Validator(name); ok {
			all = append(all, field.WithValidator(v))
		}
	}
	all = append(all, opts...)

	return field.New(def.Pattern, all...), nil
}

// Reload re-reads configuration and plugin scripts and swaps the
// registry definitions. Fields already built keep their masks; new
// fields see the new state.
func (app *Application) Reload() error {
	cfg, err := config.Load(app.opts.ConfigPath)
	if err != nil {
		return NewOperationError("reload", app.opts.ConfigPath, err)
	}

	app.mu.Lock()
	app.cfg = cfg
	app.logger.SetLevel(app.effectiveLogLevel())
	app.mu.Unlock()

	app.applyConfig()
	app.Logger().Info("configuration reloaded")
	return nil
}

// Shutdown stops the watcher and releases plugin states and the log
// file. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.mu.Lock()
	w := app.watcher
	p := app.plugins
	f := app.logFile
	app.watcher = nil
	app.plugins = nil
	app.logFile = nil
	app.mu.Unlock()

	if w != nil {
		w.Stop()
	}
	if p != nil {
		p.Close()
	}
	if f != nil {
		_ = f.Close()
	}
}

// initLogger builds the logger from configuration and options.
func (app *Application) initLogger() error {
	cfg := DefaultLoggerConfig()
	cfg.Level = app.effectiveLogLevel()

	if path := app.cfg.Logging.Path; path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file %s: %w", path, err)
		}
		app.logFile = f
		cfg.Output = f
	}

	app.logger = NewLogger(cfg)
	return nil
}

// effectiveLogLevel resolves the option override against the
// configured level.
func (app *Application) effectiveLogLevel() LogLevel {
	if app.opts.LogLevel != "" {
		return ParseLogLevel(app.opts.LogLevel)
	}
	return ParseLogLevel(app.cfg.Logging.Level)
}

// applyConfig pushes the current configuration into the registry and
// plugin loader.
func (app *Application) applyConfig() {
	app.mu.Lock()
	cfg := app.cfg
	old := app.plugins
	app.plugins = nil
	app.mu.Unlock()

	if old != nil {
		old.Close()
	}

	app.registry.Replace(cfg.Definitions(), true)

	if cfg.Plugins.Dir != "" {
		loader := lua.NewLoader(app.registry)
		if err := loader.LoadDir(cfg.Plugins.Dir); err != nil {
			app.Logger().Warn("plugin load failed: %v", err)
		}
		for _, err := range loader.Errors() {
			app.Logger().Warn("plugin error: %v", err)
		}
		app.mu.Lock()
		app.plugins = loader
		app.mu.Unlock()
	}
}

// onConfigChange is the watcher callback.
func (app *Application) onConfigChange(path string) {
	app.Logger().Debug("config change detected: %s", path)
	if err := app.Reload(); err != nil {
		app.Logger().Error("config reload failed: %v", err)
	}
}
