package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-raycaster/internal/config"
	"github.com/vovakirdan/tui-raycaster/internal/registry"
	"github.com/vovakirdan/tui-raycaster/internal/storage"
	"github.com/vovakirdan/tui-raycaster/internal/texture"
	"github.com/vovakirdan/tui-raycaster/internal/viewer"
	"github.com/vovakirdan/tui-raycaster/internal/world"
)

// app is the state shared by the commands: configuration with flag
// overrides applied, the logger, the level catalog and the optional store.
type app struct {
	cfg     config.Config
	logger  *log.Logger
	catalog *registry.Catalog
	store   *storage.Store
}

func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// setup loads the configuration and applies the global flags.
func setup(prefix string) (*app, error) {
	logger := newLogger(prefix)

	cfg, source, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return nil, err
	}
	logger.Debug("configuration loaded", "source", source)

	if err := config.ApplyQualityPreset(&cfg, config.QualityPreset(flagQuality)); err != nil {
		return nil, err
	}
	if flagFPS > 0 {
		cfg.Render.TickRate = flagFPS
	}
	if flagWorkers > 0 {
		cfg.Render.Workers = flagWorkers
	}
	if flagDBPath != "" {
		cfg.Storage.DB = flagDBPath
	}
	if flagLevel != "" {
		cfg.Levels.Default = flagLevel
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		catalog: registry.NewCatalog(config.ExpandHome(cfg.Levels.Dir)),
	}, nil
}

// openStore opens the waypoint database. Failure leaves the store nil;
// viewing still works without waypoints.
func (a *app) openStore() {
	if a.cfg.Storage.DB == "" {
		return
	}
	store, err := storage.Open(a.cfg.Storage.DB)
	if err != nil {
		a.logger.Warn("waypoints disabled", "error", err)
		return
	}
	a.store = store
}

func (a *app) close() {
	if a.store != nil {
		a.store.Close()
	}
}

// level resolves args[0], falling back to the configured default.
func (a *app) level(args []string) (world.Level, error) {
	id := a.cfg.Levels.Default
	if len(args) > 0 {
		id = args[0]
	}
	if id == "" {
		id = world.ReferenceID
	}
	lvl, err := a.catalog.Resolve(id)
	if err != nil {
		return world.Level{}, fmt.Errorf("%w\nRun 'raycaster list' to see available levels", err)
	}
	return lvl, nil
}

// texture loads the configured wall texture, falling back to the
// generated one.
func (a *app) texture() texture.Sampler {
	path := config.ExpandHome(a.cfg.Render.Texture)
	if path == "" {
		return texture.Rock(a.cfg.Render.TextureSeed)
	}
	tex, err := texture.Load(path)
	if err != nil {
		a.logger.Warn("using generated texture", "error", err)
		return texture.Rock(a.cfg.Render.TextureSeed)
	}
	return tex
}

func (a *app) session(lvl world.Level) viewer.Session {
	return viewer.Session{
		Level:         lvl,
		Texture:       a.texture(),
		Config:        a.cfg,
		Store:         a.store,
		Logger:        a.logger,
		ScreenshotDir: screenshotDir(),
	}
}

// screenshotDir returns ~/.raycaster/screenshots, or empty when the home
// directory is unknown.
func screenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".raycaster", "screenshots")
}

// terminalSize returns the size of stdout, or 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}
