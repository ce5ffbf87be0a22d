package template

import (
	"fmt"
	"regexp"
)

// Check verifies tpl before it runs: every node must be a non-nil template and
// every pattern must compile into a matcher under the mapper's options. It
// returns the first problem in walk order as an *Error with Op "check".
func (m *Mapper) Check(tpl Template) error {
	const op = "check"

	if err := m.opts.Validate(); err != nil {
		return &Error{Op: op, Err: err}
	}

	ctx := Context{Match: m.opts.Match, QuoteLiterals: m.opts.QuoteLiterals}

	var first error

	Walk(tpl, func(trail string, node Template) bool {
		if first != nil {
			return false
		}

		kind := KindOf(node)

		switch {
		case kind.IsLeaf():
			if err := checkLeaf(node, ctx); err != nil {
				first = &Error{Op: op, Path: trail, Err: err}
			}
		case !kind.IsComposite():
			first = &Error{Op: op, Path: trail, Err: ErrUnsupportedTemplate}
		}

		return kind.IsComposite()
	})

	return first
}

func checkLeaf(node Template, ctx Context) error {
	switch t := node.(type) {
	case Func:
		if t == nil {
			return ErrUnsupportedTemplate
		}
	case Pattern:
		source, err := Matcher(string(t), ctx)
		if err != nil {
			return err
		}

		if _, err := regexp.Compile(source); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidPattern, string(t), err)
		}
	}

	return nil
}
