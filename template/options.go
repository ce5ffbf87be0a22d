package template

import (
	"fmt"
	"log/slog"
	"regexp"

	"unterpolate/internal/logging"
)

// DefaultMatch finds "{path}" placeholders.
var DefaultMatch = regexp.MustCompile(`\{(.+?)\}`)

var nopLogger = logging.NewNop()

// Options configures a Mapper.
type Options struct {
	// Match finds placeholders in patterns; its first capture group is the path.
	// Defaults to DefaultMatch.
	Match *regexp.Regexp

	// QuoteLiterals escapes regexp-special characters in pattern literal text
	// when extracting. Off by default: literal text is used as a regexp fragment,
	// so "{a}.{b}" lets "." match any character.
	QuoteLiterals bool

	// Logger receives debug events. Defaults to a no-op logger.
	Logger *slog.Logger
}

// DefaultOptions returns the default mapper options.
func DefaultOptions() Options {
	return Options{
		Match:  DefaultMatch,
		Logger: nopLogger,
	}
}

// Validate checks that the placeholder rule can produce paths.
func (o Options) Validate() error {
	if o.Match != nil && o.Match.NumSubexp() < 1 {
		return fmt.Errorf("%w: match rule %q has no capture group", ErrInvalidPattern, o.Match.String())
	}

	return nil
}

func (o Options) withDefaults() Options {
	if o.Match == nil {
		o.Match = DefaultMatch
	}

	if o.Logger == nil {
		o.Logger = nopLogger
	}

	return o
}
