package template

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrShapeMismatch is returned when a value cannot be carved by a template:
	// several placeholders against a non-string value, or a nested Func result
	// that is not a field map.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrInvalidPattern is returned when a matcher cannot be built from a pattern
	// or the placeholder rule has no capture group.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrUnsupportedTemplate is returned for nil template nodes.
	ErrUnsupportedTemplate = errors.New("unsupported template")
)

// Error reports a failure at a template position.
type Error struct {
	// Op is the direction of the failing traversal ("to" or "from").
	Op string
	// Path is the position of the failing node, e.g. "$.fourth[1]".
	Path string
	// Err is the underlying sentinel or cause.
	Err error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}

	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// at attaches a template position to engine errors. Errors that already carry
// a position pass through untouched.
func at(op Direction, trail string, err error) error {
	if err == nil {
		return nil
	}

	var located *Error
	if errors.As(err, &located) && located.Path != "" {
		return err
	}

	return &Error{Op: op.String(), Path: trail, Err: err}
}

func indexTrail(trail string, i int) string {
	return trail + "[" + strconv.Itoa(i) + "]"
}

func keyTrail(trail, key string) string {
	return trail + "." + key
}
