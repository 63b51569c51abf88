package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Baboo7/baboo.dev/article"
	"github.com/Baboo7/baboo.dev/scaffold"
)

func newNewCmd(opts *rootOptions) *cobra.Command {
	var a scaffold.Article

	cmd := &cobra.Command{
		Use:   "new <title>",
		Short: "Create a new article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Title = args[0]
			dir := filepath.Join(opts.contentDir(), article.DefaultFolder)
			path, err := scaffold.NewArticle(dir, a)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&a.Description, "description", "", "Article description")
	cmd.Flags().StringVar(&a.Date, "date", "", "Publish date, YYYY-MM-DD (default today)")
	cmd.Flags().StringSliceVar(&a.Categories, "category", nil, "Category, repeatable")
	cmd.Flags().StringVar(&a.Slug, "slug", "", "File name without extension (default derived from title)")
	return cmd
}
