package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/five82/shutter/internal/config"
	"github.com/five82/shutter/internal/logging"
	"github.com/five82/shutter/internal/pexels"
	"github.com/five82/shutter/internal/prefs"
	"github.com/five82/shutter/internal/search"
	"github.com/five82/shutter/internal/state"
	"github.com/five82/shutter/internal/ui"
)

// Options configure the shutter application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/shutter/prefs.toml
	PhotoID    string // open the detail route for this id at startup
	DarkMode   bool
}

// Run boots the shutter TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	deps, err := setup(ctx, opts)
	if err != nil {
		return err
	}
	defer deps.close()

	deps.logger.Info("shutter starting", "api_url", deps.cfg.APIURL, "columns", deps.controller.Columns())

	err = ui.Run(ui.Options{
		Context:        ctx,
		Controller:     deps.controller,
		Photos:         deps.client,
		DownloadDir:    deps.cfg.DownloadDir,
		DarkMode:       opts.DarkMode,
		InitialPhotoID: opts.PhotoID,
	})
	if err != nil {
		deps.logger.Error("ui exited with error", "error", err)
	}
	return err
}

type dependencies struct {
	cfg        config.Config
	logger     *slog.Logger
	client     *pexels.Client
	controller *search.Controller
	closers    []func() error
}

func (d *dependencies) close() {
	if d.controller != nil {
		d.controller.Close()
	}
	for i := len(d.closers) - 1; i >= 0; i-- {
		_ = d.closers[i]()
	}
}

// setup loads configuration and wires the client, store and controller.
func setup(ctx context.Context, opts Options) (*dependencies, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	deps := &dependencies{cfg: cfg}

	logger, closeLog, err := logging.OpenFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, err
	}
	deps.logger = logger
	deps.closers = append(deps.closers, closeLog)

	client, err := pexels.NewClient(cfg.APIURL, cfg.APIKey, pexels.WithLogger(logger))
	if err != nil {
		deps.close()
		return nil, fmt.Errorf("init search client: %w", err)
	}
	deps.client = client

	userPrefs := prefs.Open(opts.PrefsPath)
	if userPrefs.Path() == "" {
		logger.Warn("preferences path unresolved; layout changes will not persist")
	}

	controller, err := search.New(search.Options{
		Context:  ctx,
		Searcher: client,
		Store:    &state.Store{},
		Prefs:    userPrefs,
		Logger:   logger,
	})
	if err != nil {
		deps.close()
		return nil, fmt.Errorf("init search controller: %w", err)
	}
	deps.controller = controller
	return deps, nil
}
