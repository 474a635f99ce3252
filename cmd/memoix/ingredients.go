package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/five82/memoix/internal/app"
	"github.com/five82/memoix/internal/ingredients"
)

func (c *cli) ingredientsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ingredients",
		Aliases: []string{"categorize"},
		Short:   "Sort ingredients into shop categories",
	}
	cmd.AddCommand(c.shopCmd(), c.classifyCmd(), c.buildIndexCmd())
	return cmd
}

func (c *cli) shopCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shop <uuid>",
		Short: "Print a record's ingredients grouped by shop category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				rec, err := env.Store.Get(ctx, args[0])
				if err != nil {
					return err
				}
				classifier, err := env.Classifier()
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				sections := classifier.Group(ingredients.Items(rec))
				if len(sections) == 0 {
					fmt.Fprintf(out, "%s has no ingredients\n", rec.Ref().Name)
					return nil
				}
				for i, sec := range sections {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintln(out, sec.Category.Label())
					for _, it := range sec.Items {
						fmt.Fprintf(out, "  - %s\n", joinWords(it.Amount, it.Unit, it.Name))
					}
				}
				return nil
			})
		},
	}
}

func (c *cli) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <name>...",
		Short: "Show the shop category of ingredient names",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(_ context.Context, env *app.Env) error {
				classifier, err := env.Classifier()
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(args))
				for _, name := range args {
					rows = append(rows, []string{name, classifier.Classify(name).String()})
				}
				t := table.New().
					Border(lipgloss.NormalBorder()).
					Headers("INGREDIENT", "CATEGORY").
					Rows(rows...)
				fmt.Fprintln(cmd.OutOrStdout(), t.Render())
				return nil
			})
		},
	}
}

func (c *cli) buildIndexCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "build <off-export.tsv>",
		Short: "Build the ingredient index from an Open Food Facts TSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()

				ix, stats, err := ingredients.Build(ctx, f)
				if err != nil {
					return err
				}
				dest := outPath
				if dest == "" {
					dest = env.Config.IngredientsDB
				}
				if err := ix.Save(dest); err != nil {
					return err
				}
				env.Log.Info("ingredient index built",
					zap.String("path", dest),
					zap.Int("rows", stats.Rows),
					zap.Int("classified", stats.Classified),
					zap.Int("unclassified", stats.Unclassified),
					zap.Int("filtered", stats.Filtered))
				fmt.Fprintf(cmd.OutOrStdout(), "%d rows: %d classified, %d unclassified, %d filtered\nwrote %s\n",
					stats.Rows, stats.Classified, stats.Unclassified, stats.Filtered, dest)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "index file (default from config, <data_dir>/ingredients_json.gz)")
	return cmd
}

func joinWords(words ...string) string {
	var parts []string
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			parts = append(parts, w)
		}
	}
	return strings.Join(parts, " ")
}
