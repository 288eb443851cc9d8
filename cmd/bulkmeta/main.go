package main

import (
	"io"
	"os"

	"github.com/fsdevblog/bulkmeta/internal/bmeta"
	"github.com/fsdevblog/bulkmeta/internal/config"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

type rootOptions struct {
	out        io.Writer
	jsonOutput bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{out: out}

	rootCmd := &cobra.Command{
		Use:   "bulkmeta",
		Short: "Bulk metadata actions for posts",
		Long: `bulkmeta applies bulk actions to posts, such as copying each post title
into its SEO focus keyword, over HTTP or from the command line.`,
		SilenceUsage: true,
	}
	rootCmd.SetOut(out)

	config.RegisterFlags(rootCmd.PersistentFlags())
	rootCmd.PersistentFlags().BoolVarP(&opts.jsonOutput, "json", "j", false, "Output as JSON")

	rootCmd.AddCommand(
		newServeCmd(opts),
		newAssignCmd(opts),
		newTokenCmd(opts),
		newVersionCmd(opts),
	)
	return rootCmd
}

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build info",
		RunE: func(_ *cobra.Command, _ []string) error {
			info := bmeta.New(buildVersion, buildDate, buildCommit)
			if opts.jsonOutput {
				return printJSON(opts.out, info)
			}
			info.Print(opts.out)
			return nil
		},
	}
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v) //nolint:wrapcheck
}
