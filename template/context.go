package template

import (
	"log/slog"
	"regexp"
)

// Direction tells which operation a traversal is running.
type Direction int

const (
	_ Direction = iota

	// DirectionTo extracts a child value out of a parent value.
	DirectionTo
	// DirectionFrom reconstructs a parent value from a child value.
	DirectionFrom
)

// String returns "to" or "from".
func (d Direction) String() string {
	switch d {
	case DirectionTo:
		return "to"
	case DirectionFrom:
		return "from"
	default:
		return "unknown"
	}
}

// Context is the per-call configuration handed to every template node.
// It is passed by value; walkers derive copies and never mutate the caller's.
type Context struct {
	// Direction is set by the walker running the traversal.
	Direction Direction

	// Match finds placeholders in patterns. The first capture group is the path.
	Match *regexp.Regexp

	// QuoteLiterals escapes regexp-special characters in pattern literal text
	// before matching.
	QuoteLiterals bool

	// Logger receives debug events of the traversal.
	Logger *slog.Logger
}

// WithDirection returns a copy of c with the direction replaced.
func (c Context) WithDirection(d Direction) Context {
	c.Direction = d
	return c
}

func (c Context) match() *regexp.Regexp {
	if c.Match == nil {
		return DefaultMatch
	}

	return c.Match
}

func (c Context) logger() *slog.Logger {
	if c.Logger == nil {
		return nopLogger
	}

	return c.Logger
}
