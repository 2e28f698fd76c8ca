package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/navinject/internal/foundation/errors"
	"git.home.luguber.info/inful/navinject/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	TargetFlags

	Debounce time.Duration `default:"300ms" help:"Quiet period before a changed file is processed"`
}

// Run performs an initial pass and then processes changes until interrupted.
func (w *WatchCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	in, _, err := newInjector(g, cfg, w.TargetFlags, false)
	if err != nil {
		return err
	}

	layoutRoot := in.Config().Root
	if _, err := os.Stat(layoutRoot); os.IsNotExist(err) {
		return errors.NotFoundError("layout directory not found").
			WithContext("path", layoutRoot).
			Build()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Register the watches before the initial pass so no change is missed
	// between the two.
	watcher, err := watch.New(layoutRoot, cfg.Extension, in)
	if err != nil {
		return err
	}
	watcher.WithDebounce(w.Debounce).WithLogger(g.logger())

	if _, err := in.Run(ctx); err != nil {
		watcher.Close()
		return err
	}
	return watcher.Run(ctx)
}
