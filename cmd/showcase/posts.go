package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/labstack/gommon/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/filter"
)

type postsFlags struct {
	query  string
	tags   []string
	asJSON bool
	all    bool
}

func newPostsCmd(opts *options) *cobra.Command {
	f := &postsFlags{}
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts, optionally filtered by a search query and tags",
		Example: `  showcase posts
  showcase posts --query go --tag Backend
  showcase posts --tag CSS --tag Design --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts, map[string]*pflag.Flag{
				"content_dir": cmd.Flags().Lookup("content"),
			})
			if err != nil {
				return err
			}

			logger := log.New("showcase")
			logger.SetOutput(cmd.ErrOrStderr())
			logger.SetLevel(log.WARN)
			logger.SetHeader("${level} ${short_file}:${line}")

			src := content.NewFallback(
				content.NewLoader(cfg.ContentDir, content.WithLogger(logger)),
				content.NewSamples(),
			)
			return listPosts(cmd.OutOrStdout(), src, f)
		},
	}
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "case-insensitive search over title, excerpt, and tags")
	cmd.Flags().StringArrayVarP(&f.tags, "tag", "t", nil, "only posts carrying this exact tag (repeatable, or comma separated)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print posts as JSON")
	cmd.Flags().BoolVar(&f.all, "tags", false, "print the available tags instead of posts")
	cmd.Flags().String("content", "content/posts", "directory of Markdown posts")
	return cmd
}

func listPosts(w io.Writer, src content.Source, f *postsFlags) error {
	posts := src.ListPosts()

	if f.all {
		tags := filter.AvailableTags(posts)
		if f.asJSON {
			return writeJSON(w, tags)
		}
		for _, t := range tags {
			fmt.Fprintln(w, t)
		}
		return nil
	}

	matched := filter.Filter(posts, f.query, filter.ParseTags(f.tags))
	if f.asJSON {
		return writeJSON(w, matched)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tSLUG\tTITLE\tTAGS\tREAD")
	for _, p := range matched {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Date, p.Slug, p.Title, strings.Join(p.Tags, ", "), p.ReadTime)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d of %d posts\n", len(matched), len(posts))
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
