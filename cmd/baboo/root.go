package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	baboo "github.com/Baboo7/baboo.dev"
)

type rootOptions struct {
	verbose bool
	content string
	envFile string
}

// contentDir returns --content, then CONTENT_DIR, then "content".
func (o *rootOptions) contentDir() string {
	if o.content != "" {
		return o.content
	}
	return baboo.EnvOr("CONTENT_DIR", "content")
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "baboo",
		Short: "Personal portfolio and blog served from markdown articles",
		Long: `baboo serves a portfolio and blog. Articles are markdown files with
YAML front matter stored under <content>/articles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := godotenv.Load(opts.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&opts.content, "content", "", "Content directory (default $CONTENT_DIR or \"content\")")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Environment file loaded before reading configuration")

	cmd.AddCommand(
		newServeCmd(opts),
		newArticlesCmd(opts),
		newSEOCmd(),
		newNewCmd(opts),
		newVersionCmd(),
	)
	return cmd
}
