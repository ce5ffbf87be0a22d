package template

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapper_Check(t *testing.T) {
	identity := Func(func(v any, _ Context) (any, error) { return v, nil })

	tests := []struct {
		name    string
		opts    Options
		tpl     Template
		path    string
		wantErr error
	}{
		{
			name: "valid",
			tpl:  Mapping{"a": Sequence{Pattern("{x}"), identity}, "b": Pattern("lit")},
		},
		{
			name:    "nil template",
			tpl:     nil,
			path:    "$",
			wantErr: ErrUnsupportedTemplate,
		},
		{
			name:    "nil func",
			tpl:     Mapping{"a": Sequence{Pattern("{x}"), Func(nil)}},
			path:    "$.a[1]",
			wantErr: ErrUnsupportedTemplate,
		},
		{
			name:    "nil child",
			tpl:     Sequence{Pattern("{x}"), nil},
			path:    "$[1]",
			wantErr: ErrUnsupportedTemplate,
		},
		{
			name:    "matcher does not compile",
			tpl:     Mapping{"b": Pattern("{x}(open")},
			path:    "$.b",
			wantErr: ErrInvalidPattern,
		},
		{
			name: "quoted literals compile",
			opts: Options{QuoteLiterals: true},
			tpl:  Mapping{"b": Pattern("{x}(open")},
		},
		{
			name:    "match rule without group",
			opts:    Options{Match: regexp.MustCompile(`\{.+?\}`)},
			tpl:     Pattern("{x}"),
			wantErr: ErrInvalidPattern,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewMapper(tt.opts).Check(tt.tpl)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}

			require.ErrorIs(t, err, tt.wantErr)

			var tErr *Error
			require.ErrorAs(t, err, &tErr)
			assert.Equal(t, "check", tErr.Op)
			assert.Equal(t, tt.path, tErr.Path)
		})
	}
}

func TestWalk(t *testing.T) {
	tpl := Mapping{
		"b": Sequence{Pattern("{x}"), Mapping{"c": Pattern("{y}")}},
		"a": Pattern("{z}"),
	}

	var trails []string

	Walk(tpl, func(trail string, node Template) bool {
		trails = append(trails, trail+":"+KindOf(node).String())
		return true
	})

	assert.Equal(t, []string{
		"$:KindMapping",
		"$.a:KindPattern",
		"$.b:KindSequence",
		"$.b[0]:KindPattern",
		"$.b[1]:KindMapping",
		"$.b[1].c:KindPattern",
	}, trails)
}

func TestWalk_SkipChildren(t *testing.T) {
	var trails []string

	Walk(Sequence{Sequence{Pattern("a")}, Pattern("b")}, func(trail string, node Template) bool {
		trails = append(trails, trail)
		return trail == "$"
	})

	assert.Equal(t, []string{"$", "$[0]", "$[1]"}, trails)
}

func TestKind_LeafAndComposite(t *testing.T) {
	tests := []struct {
		kind      Kind
		leaf      bool
		composite bool
	}{
		{KindFunc, true, false},
		{KindPattern, true, false},
		{KindSequence, false, true},
		{KindMapping, false, true},
		{Kind(0), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.leaf, tt.kind.IsLeaf())
			assert.Equal(t, tt.composite, tt.kind.IsComposite())
		})
	}
}
