package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/five82/memoix/internal/collection"
	"github.com/five82/memoix/internal/config"
	"github.com/five82/memoix/internal/deeplink"
	"github.com/five82/memoix/internal/ingredients"
	"github.com/five82/memoix/internal/logging"
	"github.com/five82/memoix/internal/store"
)

// Options configure the memoix application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/memoix/prefs.toml
	PollEvery  int    // seconds; zero uses the config value
}

// Env bundles the long-lived pieces shared by the TUI and the CLI commands.
type Env struct {
	Config config.Config
	Log    *zap.Logger
	Store  *store.Store
	Links  *deeplink.Controller
}

// Open loads the config, opens the log and the database, and wires the
// share link controller.
func Open(ctx context.Context, opts Options) (*Env, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollSeconds = opts.PollEvery
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	handler := deeplink.NewHandler(st, cfg.OnDuplicate, logger)
	return &Env{
		Config: cfg,
		Log:    logger,
		Store:  st,
		Links:  deeplink.NewController(handler),
	}, nil
}

// Seed loads collection files from paths into the store as bundled records.
func (e *Env) Seed(ctx context.Context, paths ...string) (collection.Result, store.SeedResult, error) {
	loaded, err := collection.Load(ctx, paths...)
	if err != nil {
		return loaded, store.SeedResult{}, err
	}
	res, err := e.Store.Seed(ctx, loaded.Records)
	if err != nil {
		return loaded, res, fmt.Errorf("seed: %w", err)
	}
	e.Log.Info("collection seeded",
		zap.Int("files", loaded.Files),
		zap.Int("entries_skipped", loaded.Skipped),
		zap.Int("added", res.Added),
		zap.Int("updated", res.Updated),
		zap.Int("unchanged", res.Unchanged),
		zap.Int("skipped", res.Skipped))
	return loaded, res, nil
}

// SeedCollection seeds the configured collection directory. A directory
// that does not exist is skipped quietly.
func (e *Env) SeedCollection(ctx context.Context) error {
	dir := e.Config.CollectionDir
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		e.Log.Debug("no collection directory", zap.String("dir", dir))
		return nil
	}
	if _, _, err := e.Seed(ctx, dir); err != nil {
		return err
	}
	return nil
}

// Classifier returns an ingredient classifier backed by the configured
// index when one has been built, and by the keyword rules otherwise.
func (e *Env) Classifier() (*ingredients.Classifier, error) {
	ix, err := ingredients.LoadIndex(e.Config.IngredientsDB)
	if err != nil {
		return nil, err
	}
	e.Log.Debug("ingredient classifier ready", zap.Int("index_entries", len(ix)))
	return ingredients.NewClassifier(ix), nil
}

// Close releases the database and flushes the log.
func (e *Env) Close() error {
	err := e.Store.Close()
	_ = e.Log.Sync()
	return err
}
