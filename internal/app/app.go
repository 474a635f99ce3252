package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/five82/memoix/internal/prefs"
	"github.com/five82/memoix/internal/state"
	"github.com/five82/memoix/internal/transport"
	"github.com/five82/memoix/internal/ui"
)

// Run boots the memoix TUI until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	env, err := Open(ctx, opts)
	if err != nil {
		return err
	}
	defer env.Close()

	if err := env.SeedCollection(ctx); err != nil {
		// A broken collection file must not keep the user from their own recipes.
		env.Log.Warn("collection seed failed", zap.String("dir", env.Config.CollectionDir), zap.Error(err))
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	snap := &state.Store{}
	interval := time.Duration(env.Config.PollSeconds) * time.Second
	refresher := NewRefresher(snap, env.Store, interval, env.Log)

	// Initial refresh so the first frame has data.
	_ = refresher.Refresh(ctx)

	runCtx, cancel := context.WithCancel(ctx)
	done := refresher.Start(runCtx)
	defer func() {
		cancel()
		<-done
	}()

	env.Log.Info("ui started", zap.String("db", env.Config.DBPath))
	err = ui.Run(ui.Options{
		Context:    runCtx,
		Snapshots:  snap,
		Collection: env.Store,
		Links:      env.Links,
		Clipboard:  transport.NewClipboard(),
		LogPath:    env.Config.LogFile,
		PollTick:   ui.DefaultUIInterval,
		Prefs:      userPrefs,
		PrefsPath:  opts.PrefsPath,
		Refresh:    refresher.Trigger,
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
