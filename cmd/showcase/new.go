package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/showcase/content"
	"github.com/eringen/showcase/scaffold"
)

func newNewCmd() *cobra.Command {
	var empty bool
	cmd := &cobra.Command{
		Use:   "new <dir>",
		Short: "Create a new showcase site",
		Example: `  showcase new myblog
  showcase new myblog --empty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			out := cmd.OutOrStdout()

			var posts []content.Post
			if !empty {
				posts = content.NewSamples().ListPosts()
			}

			fmt.Fprintf(out, "Creating new showcase site: %s\n\n", dir)
			created, err := scaffold.Generate(dir, scaffold.NewData(dir), posts)
			for _, path := range created {
				fmt.Fprintf(out, "  created %s\n", path)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Done! Next steps:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  cd %s\n", dir)
			fmt.Fprintln(out, "  cp .env.example .env")
			fmt.Fprintln(out, "  showcase serve")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "Add Markdown files to %s; set SHOWCASE_SESSION_SECRET in .env for production.\n", scaffold.PostsDir)
			return nil
		},
	}
	cmd.Flags().BoolVar(&empty, "empty", false, "do not copy the sample posts")
	return cmd
}
