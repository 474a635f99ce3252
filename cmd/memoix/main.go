package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/memoix/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "memoix: %v\n", err)
		return 1
	}
	return 0
}

// cli carries the persistent flags into every subcommand.
type cli struct {
	opts app.Options
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	root := &cobra.Command{
		Use:   "memoix",
		Short: "Recipe collection with share links",
		Long: `memoix keeps recipes, pizzas, sandwiches, smoking notes and modernist
techniques in a local database and moves them between devices as
memoix:// share links, QR codes or plain text.

Run without arguments to open the terminal interface.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.Run(cmd.Context(), c.opts)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.ConfigPath, "config", "", "config file (default ~/.config/memoix/config.toml)")
	flags.StringVar(&c.opts.PrefsPath, "prefs", "", "preferences file (default ~/.config/memoix/prefs.toml)")
	flags.IntVar(&c.opts.PollEvery, "poll", 0, "refresh interval in seconds (default from config, 2s)")

	root.AddCommand(
		c.listCmd(),
		c.shareCmd(),
		c.codeCmd(),
		c.qrCmd(),
		c.exportCmd(),
		c.importCmd(),
		c.loadCmd(),
		c.favoriteCmd(),
		c.cookedCmd(),
		c.rateCmd(),
		c.deleteCmd(),
		c.ingredientsCmd(),
	)
	return root
}

// withEnv opens the database and log for the duration of fn.
func (c *cli) withEnv(cmd *cobra.Command, fn func(ctx context.Context, env *app.Env) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	env, err := app.Open(ctx, c.opts)
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(ctx, env)
}
