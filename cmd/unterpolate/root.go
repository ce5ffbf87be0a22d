package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"unterpolate/internal/logging"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	match         string
	quoteLiterals bool
	verbose       bool
}

func (g *globalOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !g.verbose {
		return logging.NewNop()
	}

	return logging.NewWithWriter(cmd.ErrOrStderr(), slog.LevelDebug)
}

// errCheckFailed reports that check found error diagnostics. They are already
// printed, so main only sets the exit status.
var errCheckFailed = errors.New("template file has errors")

func exitCode(err error) int {
	if errors.Is(err, errCheckFailed) {
		return 1
	}

	return 2
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "unterpolate",
		Short: "Map values to and from a shape described by a template",
		Long: `unterpolate runs a template in two directions.

A template mirrors the parent document: strings are patterns with {path}
placeholders, lists and maps keep their shape, and !fn nodes call jq functions
declared in the template file.

  to    extracts the placeholder values out of a parent document
  from  fills the placeholders back in from a child value`,
		Example: `  # Extract the date parts of a document
  unterpolate to -t date.yaml -i doc.json

  # Rebuild the document from the parts, as YAML
  echo '{year: "2019", month: "10", day: "01"}' | unterpolate from -t date.yaml -o yaml

  # Lint a template file
  unterpolate check -t date.yaml`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.PersistentFlags().StringVar(&opts.match, "match", "", "Placeholder regular expression, overriding the template file (first group is the path)")
	cmd.PersistentFlags().BoolVar(&opts.quoteLiterals, "quote-literals", false, "Match literal pattern text verbatim instead of as a regular expression")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log debug events to stderr")

	cmd.AddCommand(newToCommand(opts))
	cmd.AddCommand(newFromCommand(opts))
	cmd.AddCommand(newCheckCommand(opts))
	cmd.AddCommand(newVersionCommand())

	return cmd
}
