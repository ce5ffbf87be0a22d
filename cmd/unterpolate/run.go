package main

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	"unterpolate/internal/mapping"
	"unterpolate/template"
)

// runOptions are the flags of the to and from subcommands.
type runOptions struct {
	templatePath string
	inputPath    string
	output       string
	flat         bool
}

func (r *runOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&r.templatePath, "template", "t", "", "Template file (YAML)")
	cmd.Flags().StringVarP(&r.inputPath, "input", "i", "-", "Input document, JSON or YAML; - reads stdin")
	cmd.Flags().StringVarP(&r.output, "output", "o", formatJSON, "Output format: json or yaml")

	_ = cmd.MarkFlagRequired("template")
}

func newToCommand(global *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "to",
		Short: "Extract a child value out of a parent document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTo(cmd, global, opts)
		},
	}

	opts.bind(cmd)
	cmd.Flags().BoolVar(&opts.flat, "flat", false, "Print the flat placeholder map instead of the nested child")

	return cmd
}

func newFromCommand(global *globalOptions) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "from",
		Short: "Rebuild a parent document from a child value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrom(cmd, global, opts)
		},
	}

	opts.bind(cmd)

	return cmd
}

func runTo(cmd *cobra.Command, global *globalOptions, opts *runOptions) error {
	tpl, mapper, err := loadTemplate(cmd, global, opts.templatePath)
	if err != nil {
		return err
	}

	parent, err := readInput(cmd.InOrStdin(), opts.inputPath)
	if err != nil {
		return err
	}

	var out any

	if opts.flat {
		fields, err := mapper.Extract(tpl, parent)
		if err != nil {
			return err
		}

		out = fields.Map()
	} else {
		if out, err = mapper.To(tpl, parent); err != nil {
			return err
		}
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, out)
}

func runFrom(cmd *cobra.Command, global *globalOptions, opts *runOptions) error {
	tpl, mapper, err := loadTemplate(cmd, global, opts.templatePath)
	if err != nil {
		return err
	}

	child, err := readInput(cmd.InOrStdin(), opts.inputPath)
	if err != nil {
		return err
	}

	out, err := mapper.From(tpl, child)
	if err != nil {
		return err
	}

	return writeOutput(cmd.OutOrStdout(), opts.output, out)
}

// loadTemplate builds the template file, applies flag overrides to its options
// and checks the template against the final options.
func loadTemplate(cmd *cobra.Command, global *globalOptions, path string) (template.Template, *template.Mapper, error) {
	f, err := mapping.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	tpl, opts, err := f.Build(nil, global.logger(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := global.apply(cmd, &opts); err != nil {
		return nil, nil, err
	}

	mapper := template.NewMapper(opts)
	if err := mapper.Check(tpl); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}

	return tpl, mapper, nil
}

// apply overrides file options with the flags set on the command line.
func (g *globalOptions) apply(cmd *cobra.Command, opts *template.Options) error {
	flags := cmd.Flags()

	if flags.Changed("match") {
		re, err := regexp.Compile(g.match)
		if err != nil {
			return fmt.Errorf("--match: %w", err)
		}

		opts.Match = re
	}

	if flags.Changed("quote-literals") {
		opts.QuoteLiterals = g.quoteLiterals
	}

	if err := opts.Validate(); err != nil {
		return fmt.Errorf("--match: %w", err)
	}

	return nil
}
