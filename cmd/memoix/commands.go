package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/memoix/internal/app"
	"github.com/five82/memoix/internal/deeplink"
	"github.com/five82/memoix/internal/model"
	"github.com/five82/memoix/internal/share"
	"github.com/five82/memoix/internal/store"
	"github.com/five82/memoix/internal/transport"
)

func (c *cli) listCmd() *cobra.Command {
	var (
		kind      string
		favorites bool
		query     string
		source    string
	)
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List records in the collection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := store.Filter{FavoritesOnly: favorites, Query: query}
			if kind != "" {
				k, ok := model.ParseKind(strings.ToLower(kind))
				if !ok {
					return fmt.Errorf("unknown kind %q (want one of %s)", kind, kindList())
				}
				f.Kind = k
			}
			if source != "" {
				src, ok := model.LookupSource(source)
				if !ok {
					return fmt.Errorf("unknown source %q (want personal, memoix or imported)", source)
				}
				f.Source = src
			}
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				records, err := env.Store.List(ctx, f)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "no records")
					return nil
				}
				rows := make([][]string, 0, len(records))
				for _, r := range records {
					ref := r.Ref()
					rows = append(rows, []string{
						ref.UUID,
						ref.Kind.Label(),
						ref.Name,
						string(r.Local().Source),
						map[bool]string{true: "★"}[r.Local().Favorite],
					})
				}
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("UUID", "KIND", "NAME", "SOURCE", "FAV").
					Rows(rows...)
				fmt.Fprintln(out, t.Render())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "only this kind ("+kindList()+")")
	cmd.Flags().BoolVar(&favorites, "favorites", false, "only favourites")
	cmd.Flags().StringVar(&query, "query", "", "name contains (case-insensitive)")
	cmd.Flags().StringVar(&source, "source", "", "only this source (personal, memoix, imported)")
	return cmd
}

func (c *cli) shareCmd() *cobra.Command {
	var (
		copyIt bool
		asText bool
	)
	cmd := &cobra.Command{
		Use:   "share <uuid>",
		Short: "Print the share link (or text) for a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				rec, err := env.Store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				payload := share.Encode(rec)
				if asText {
					payload = share.PlainText(rec)
				}
				if copyIt {
					if err := transport.NewClipboard().Write(payload); err != nil {
						return err
					}
					fmt.Fprintf(cmd.ErrOrStderr(), "copied %s for %s\n", ternary(asText, "text", "link"), rec.Ref().Name)
					return nil
				}
				return transport.NewShareSheet(cmd.OutOrStdout()).Present(payload, rec.Ref().Name)
			})
		},
	}
	cmd.Flags().BoolVar(&copyIt, "copy", false, "copy to the clipboard instead of printing")
	cmd.Flags().BoolVar(&asText, "text", false, "share readable text instead of a link")
	return cmd
}

func (c *cli) codeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "code <uuid>",
		Short: "Print the short display code for a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				rec, err := env.Store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), share.ShortCode(rec))
				return nil
			})
		},
	}
}

func (c *cli) qrCmd() *cobra.Command {
	var (
		pngPath string
		size    int
	)
	cmd := &cobra.Command{
		Use:   "qr <uuid>",
		Short: "Render the share link as a QR code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				rec, err := env.Store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				img, err := transport.QRRenderer{}.Render(share.Encode(rec))
				if err != nil {
					if errors.Is(err, transport.ErrPayloadTooLarge) {
						return fmt.Errorf("%s is too long for a QR code; use `memoix share` instead", rec.Ref().Name)
					}
					return err
				}
				if pngPath != "" {
					if err := img.WritePNG(pngPath, size); err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", pngPath)
					return nil
				}
				fmt.Fprint(cmd.OutOrStdout(), img.String())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&pngPath, "png", "", "write a PNG file instead of printing")
	cmd.Flags().IntVar(&size, "size", transport.DefaultPNGSize, "PNG edge length in pixels")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export <uuid>",
		Short: "Write a record as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				rec, err := env.Store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				text := share.PlainText(rec)
				if outPath == "" {
					_, err := io.WriteString(cmd.OutOrStdout(), text)
					return err
				}
				if err := os.WriteFile(outPath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", outPath, err)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")
	return cmd
}

func (c *cli) importCmd() *cobra.Command {
	var (
		policyFlag    string
		fromClipboard bool
	)
	cmd := &cobra.Command{
		Use:     "import [link|-]",
		Aliases: []string{"open"},
		Short:   "Import a memoix:// share link",
		Long: `Import a memoix:// share link. Pass the link as an argument, "-" to
read it from stdin, or --clipboard to take it from the clipboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			link, err := readLink(cmd, args, fromClipboard)
			if err != nil {
				return err
			}
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				links := env.Links
				if policyFlag != "" {
					policy, err := store.ParsePolicy(policyFlag)
					if err != nil {
						return err
					}
					links = deeplink.NewController(deeplink.NewHandler(env.Store, policy, env.Log))
				}

				rec, err := links.Dispatch(ctx, link)
				out := cmd.OutOrStdout()
				var de *share.DecodeError
				switch {
				case err == nil:
					fmt.Fprintf(out, "imported %s (%s) as %s\n", rec.Ref().Name, rec.Kind().Label(), rec.Ref().UUID)
					return nil
				case errors.Is(err, store.ErrDuplicate):
					fmt.Fprintf(out, "already in your collection: %s (%s)\n", rec.Ref().Name, rec.Ref().UUID)
					return nil
				case errors.As(err, &de):
					return errors.New(share.UserMessage(err))
				default:
					return err
				}
			})
		},
	}
	cmd.Flags().StringVar(&policyFlag, "on-duplicate", "", "skip, replace or copy (default from config)")
	cmd.Flags().BoolVar(&fromClipboard, "clipboard", false, "read the link from the clipboard")
	return cmd
}

func readLink(cmd *cobra.Command, args []string, fromClipboard bool) (string, error) {
	switch {
	case fromClipboard:
		if len(args) > 0 {
			return "", errors.New("pass a link or --clipboard, not both")
		}
		return transport.NewClipboard().Read()
	case len(args) == 0:
		return "", errors.New("no link given")
	case args[0] == "-":
		data, err := io.ReadAll(io.LimitReader(cmd.InOrStdin(), 1<<20))
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	return args[0], nil
}

func (c *cli) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load <file|dir>...",
		Short: "Load collection files (JSON or YAML) as bundled records",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				loaded, res, err := env.Seed(ctx, args...)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(),
					"%d files: %d added, %d updated, %d unchanged, %d kept (personal or imported), %d entries skipped\n",
					loaded.Files, res.Added, res.Updated, res.Unchanged, res.Skipped, loaded.Skipped)
				return nil
			})
		},
	}
}

func (c *cli) favoriteCmd() *cobra.Command {
	var off bool
	cmd := &cobra.Command{
		Use:   "favorite <uuid>",
		Short: "Mark a record as favourite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.Store.SetFavorite(ctx, args[0], !off)
			})
		},
	}
	cmd.Flags().BoolVar(&off, "off", false, "remove the favourite mark")
	return cmd
}

func (c *cli) cookedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cooked <uuid>",
		Short: "Record that a recipe was cooked today",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.Store.RecordCook(ctx, args[0])
			})
		},
	}
}

func (c *cli) rateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <uuid> <0-5>",
		Short: "Rate a record (0 clears the rating)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("rating %q is not a number", args[1])
			}
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.Store.SetRating(ctx, args[0], n)
			})
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <uuid>",
		Short: "Delete a record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.Store.Delete(ctx, args[0])
			})
		},
	}
}

func kindList() string {
	kinds := model.Kinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func ternary(cond bool, a, b string) string {
	if cond {
		return a
	}
	return b
}
