package template

import (
	"fmt"
	"regexp"
)

// placeholder is one interpolation point found in a pattern.
type placeholder struct {
	start, end int
	path       string
}

// scan finds the placeholders of pattern in declaration order.
func scan(pattern string, match *regexp.Regexp) ([]placeholder, error) {
	if match.NumSubexp() < 1 {
		return nil, fmt.Errorf("%w: match rule %q has no capture group", ErrInvalidPattern, match.String())
	}

	locs := match.FindAllStringSubmatchIndex(pattern, -1)
	if len(locs) == 0 {
		return nil, nil
	}

	found := make([]placeholder, 0, len(locs))
	for _, loc := range locs {
		ph := placeholder{start: loc[0], end: loc[1]}
		if loc[2] >= 0 {
			ph.path = pattern[loc[2]:loc[3]]
		}

		found = append(found, ph)
	}

	return found, nil
}

// isFullMatch reports whether pattern is exactly one placeholder.
func isFullMatch(pattern string, found []placeholder) bool {
	return len(found) == 1 && found[0].start == 0 && found[0].end == len(pattern)
}

// Placeholders returns the placeholder paths of pattern in declaration order.
func Placeholders(pattern string, ctx Context) ([]string, error) {
	found, err := scan(pattern, ctx.match())
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(found))
	for _, ph := range found {
		paths = append(paths, ph.path)
	}

	return paths, nil
}

// Matcher returns the regular expression source Unmatch applies to string
// values: each placeholder becomes a "(.*)" capture, and literal text is kept
// verbatim or quoted when ctx.QuoteLiterals is set.
func Matcher(pattern string, ctx Context) (string, error) {
	found, err := scan(pattern, ctx.match())
	if err != nil {
		return "", err
	}

	return matcherSource(pattern, found, ctx.QuoteLiterals), nil
}
