package pathexpr

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Segment is a single step of a path: either a mapping key or a positional index.
type Segment struct {
	// Key is the mapping key (also set for index segments, as the decimal text).
	Key string

	// Index is the position for index segments.
	Index int

	// IsIndex indicates the segment addresses a sequence position (e.g., "[0]" or ".0").
	IsIndex bool
}

// Path represents a parsed path like "first.second[0].third".
type Path struct {
	Segments []Segment
}

// String returns the path in bracket notation for indexes.
func (p Path) String() string {
	var sb strings.Builder

	for i, seg := range p.Segments {
		if seg.IsIndex {
			sb.WriteString("[" + strconv.Itoa(seg.Index) + "]")
			continue
		}

		if i > 0 {
			sb.WriteString(".")
		}

		sb.WriteString(seg.Key)
	}

	return sb.String()
}

// Keys returns the dotted form of the path where indexes are plain numeric segments.
// "first[0].second" -> "first.0.second".
func (p Path) Keys() []string {
	keys := make([]string, 0, len(p.Segments))
	for _, seg := range p.Segments {
		keys = append(keys, seg.Key)
	}

	return keys
}

var numericSegment = regexp.MustCompile(`\.(\d+)(\.|\[|$)`)

// Normalize rewrites dot-numeric segments into bracket notation.
// "first.0.second" -> "first[0].second".
func Normalize(path string) string {
	// The trailing delimiter is part of the match, so adjacent numeric
	// segments ("a.0.1") need a second pass.
	for {
		next := numericSegment.ReplaceAllString(path, "[$1]$2")
		if next == path {
			return next
		}

		path = next
	}
}

// Parse parses a path string into a Path.
// Supports: "name", "first.second", "first.0", "first[0]", "first['odd key']".
func Parse(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	normalized := Normalize(path)

	var (
		segments []Segment
		current  strings.Builder
		// expectKey is set after a '.' so that "a..b" and trailing dots are rejected
		expectKey = true
	)

	flush := func() error {
		if current.Len() == 0 {
			if expectKey {
				return fmt.Errorf("invalid path %q: empty segment", path)
			}

			return nil
		}

		segments = append(segments, Segment{Key: current.String()})
		current.Reset()
		expectKey = false

		return nil
	}

	for i := 0; i < len(normalized); i++ {
		switch c := normalized[i]; c {
		case '.':
			if err := flush(); err != nil {
				return Path{}, err
			}

			expectKey = true

		case '[':
			if current.Len() > 0 {
				if err := flush(); err != nil {
					return Path{}, err
				}
			}

			end := strings.IndexByte(normalized[i:], ']')
			if end < 0 {
				return Path{}, fmt.Errorf("invalid path %q: unclosed bracket", path)
			}

			seg, err := parseBracket(normalized[i+1 : i+end])
			if err != nil {
				return Path{}, fmt.Errorf("invalid path %q: %w", path, err)
			}

			segments = append(segments, seg)
			expectKey = false
			i += end

		default:
			current.WriteByte(c)
		}
	}

	if current.Len() > 0 || expectKey {
		if err := flush(); err != nil {
			return Path{}, err
		}
	}

	return Path{Segments: segments}, nil
}

func parseBracket(inner string) (Segment, error) {
	if inner == "" {
		return Segment{}, errors.New("empty brackets")
	}

	if n := len(inner); n >= 2 && (inner[0] == '\'' || inner[0] == '"') && inner[n-1] == inner[0] {
		return Segment{Key: inner[1 : n-1]}, nil
	}

	idx, err := strconv.Atoi(inner)
	if err != nil || idx < 0 {
		return Segment{Key: inner}, nil
	}

	return Segment{Key: inner, Index: idx, IsIndex: true}, nil
}
