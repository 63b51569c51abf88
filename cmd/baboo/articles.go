package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Baboo7/baboo.dev/article"
)

func newArticlesCmd(opts *rootOptions) *cobra.Command {
	var (
		limit  int
		asJSON bool
		slug   string
	)

	cmd := &cobra.Command{
		Use:   "articles",
		Short: "List articles, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo := article.NewRepository(os.DirFS(opts.contentDir()))
			svc := article.NewService(repo, article.WithLogger(slog.Default()))
			out := cmd.OutOrStdout()

			if slug != "" {
				a, err := svc.LookupArticle(slug)
				if err != nil {
					return err
				}
				if asJSON {
					return encodeJSON(cmd, a)
				}
				fmt.Fprintf(out, "%s\n%s\n\n%s", a.Title, article.FormatDate(a.Date), a.Content)
				return nil
			}

			articles, err := svc.GetArticlesMetadata(limit)
			if err != nil {
				return err
			}
			if asJSON {
				return encodeJSON(cmd, articles)
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, m := range articles {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.Date, m.Slug, m.Title)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&limit, "limit", article.NoLimit, "Maximum number of articles (0 lists all)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	cmd.Flags().StringVar(&slug, "slug", "", "Print a single article")
	return cmd
}

func encodeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
