package main

import (
	"github.com/spf13/cobra"

	"github.com/Baboo7/baboo.dev/i18n"
	"github.com/Baboo7/baboo.dev/seo"
)

func newSEOCmd() *cobra.Command {
	var title, description string

	cmd := &cobra.Command{
		Use:   "seo",
		Short: "Print the page metadata generated for a title and description",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta := seo.NewBuilder(i18n.Default()).Generate(seo.BaseMetadata{
				Title:       title,
				Description: description,
			})
			return encodeJSON(cmd, meta)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Page title")
	cmd.Flags().StringVar(&description, "description", "", "Page description")
	return cmd
}
