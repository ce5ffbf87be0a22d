package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type label string

func TestUnmatch(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		value    any
		expected map[string]any
	}{
		{"single placeholders", "{year}-{month}-{day}", "2019-10-01", map[string]any{"year": "2019", "month": "10", "day": "01"}},
		{"prefix literal", "third-{fourth.fifth}", "third-jim", map[string]any{"fourth.fifth": "jim"}},
		{"full match string", "{name}", "ada", map[string]any{"name": "ada"}},
		{"full match non-string", "{names}", []string{"a", "b"}, map[string]any{"names": []string{"a", "b"}}},
		{"literal only", "lit", "lit", map[string]any{}},
		{"literal only non-string", "lit", 42, map[string]any{}},
		{"no match", "{a}-{b}", "ab", map[string]any{"a": nil, "b": nil}},
		{"named string type", "{major}-{minor}", label("1-2"), map[string]any{"major": "1", "minor": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields, err := Unmatch(tt.pattern, tt.value, Context{})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fields.Map())
		})
	}
}

func TestUnmatch_ShapeMismatch(t *testing.T) {
	_, err := Unmatch("{joe}-{bill}", []any{"first", "second"}, Context{})
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "2 placeholders")
}

func TestUnmatch_Literals(t *testing.T) {
	t.Run("unquoted dot matches any character", func(t *testing.T) {
		fields, err := Unmatch("{name}.txt", "readme_txt", Context{})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "readme"}, fields.Map())
	})

	t.Run("quoted dot matches only a dot", func(t *testing.T) {
		fields, err := Unmatch("{name}.txt", "readme_txt", Context{QuoteLiterals: true})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": nil}, fields.Map())

		fields, err = Unmatch("{major}.{minor}", "1.2", Context{QuoteLiterals: true})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"major": "1", "minor": "2"}, fields.Map())
	})

	t.Run("unquoted literal that is not a valid expression", func(t *testing.T) {
		_, err := Unmatch("({a}", "(x", Context{})
		assert.ErrorIs(t, err, ErrInvalidPattern)

		fields, err := Unmatch("({a}", "(x", Context{QuoteLiterals: true})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"a": "x"}, fields.Map())
	})
}

func TestMatcher(t *testing.T) {
	src, err := Matcher("{year}-{month}.{day}", Context{})
	require.NoError(t, err)
	assert.Equal(t, "(.*)-(.*).(.*)", src)

	src, err = Matcher("{year}-{month}.{day}", Context{QuoteLiterals: true})
	require.NoError(t, err)
	assert.Equal(t, `(.*)-(.*)\.(.*)`, src)
}
