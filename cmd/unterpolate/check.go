package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"unterpolate/internal/diagnostic"
	"unterpolate/internal/mapping"
)

func newCheckCommand(global *globalOptions) *cobra.Command {
	var (
		templatePath string
		quiet        bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Lint a template file",
		Long: `Check reports problems in a template file without running it: unknown
functions, jq that does not compile, bad placeholder rules, and patterns that
do not compile into a matcher. It exits with status 1 when errors are found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := mapping.LoadFile(templatePath)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("match") {
				f.Options["match"] = global.match
			}

			if cmd.Flags().Changed("quote-literals") {
				f.Options["quote_literals"] = global.quoteLiterals
			}

			res := mapping.Validate(f, nil)
			printDiagnostics(cmd.OutOrStdout(), res, quiet)

			if res.HasErrors() {
				return errCheckFailed
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", templatePath)

			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Template file (YAML)")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print errors")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func printDiagnostics(w io.Writer, res *diagnostic.Diagnostics, quiet bool) {
	for _, d := range res.All() {
		if quiet && d.Severity != diagnostic.SeverityError {
			continue
		}

		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
