package mapping

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/mitchellh/mapstructure"

	"unterpolate/template"
)

// DecodeOptions decodes the options section. Unknown keys are an error, and
// scalar values are weakly typed so quote_literals: "true" is accepted.
func (f *File) DecodeOptions() (Options, error) {
	var opts Options

	if len(f.Options) == 0 {
		return opts, nil
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, err
	}

	if err := decoder.Decode(f.Options); err != nil {
		return opts, fmt.Errorf("invalid options: %w", err)
	}

	return opts, nil
}

// TemplateOptions compiles o into mapper options logging to logger.
func (o Options) TemplateOptions(logger *slog.Logger) (template.Options, error) {
	opts := template.DefaultOptions()
	opts.QuoteLiterals = o.QuoteLiterals

	if logger != nil {
		opts.Logger = logger
	}

	if o.Match != "" {
		re, err := regexp.Compile(o.Match)
		if err != nil {
			return opts, fmt.Errorf("%w: match rule %q: %w", template.ErrInvalidPattern, o.Match, err)
		}

		opts.Match = re
	}

	if err := opts.Validate(); err != nil {
		return opts, err
	}

	return opts, nil
}
