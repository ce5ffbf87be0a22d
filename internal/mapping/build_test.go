package mapping

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unterpolate/template"
)

func TestBuild(t *testing.T) {
	f, err := Parse([]byte(sampleFile))
	require.NoError(t, err)

	tpl, opts, err := f.Build(nil, nil)
	require.NoError(t, err)

	assert.True(t, opts.QuoteLiterals)
	assert.Equal(t, `\$\{(.+?)\}`, opts.Match.String())
	require.NotNil(t, opts.Logger)

	m, ok := tpl.(template.Mapping)
	require.True(t, ok)
	assert.Equal(t, []string{"date", "first", "names"}, m.Keys())
	assert.Equal(t, template.KindFunc, template.KindOf(m["first"]))
	assert.Equal(t, template.Pattern("${year}-${month}-${day}"), m["date"])
	assert.Equal(t, template.Sequence{template.Pattern("${a}"), template.Pattern("lit"), template.Pattern("${b}")}, m["names"])

	mapper := template.NewMapper(opts)

	child, err := mapper.To(tpl, map[string]any{
		"first": 20,
		"date":  "2019-10-01",
		"names": []any{"x", "lit", "y"},
	})
	require.NoError(t, err)

	out := child.(map[string]any)
	assert.EqualValues(t, 10, out["prop"])
	assert.Equal(t, "2019", out["year"])
	assert.Equal(t, "x", out["a"])
	assert.Equal(t, "y", out["b"])

	parent, err := mapper.From(tpl, out)
	require.NoError(t, err)
	assert.Equal(t, "2019-10-01", parent.(map[string]any)["date"])
	assert.EqualValues(t, 20, parent.(map[string]any)["first"])
}

func TestBuild_RegistryFunctions(t *testing.T) {
	registry := NewFuncRegistry()
	registry.Add("constant", func(value any, ctx template.Context) (any, error) {
		if ctx.Direction == template.DirectionTo {
			return map[string]any{"seen": value}, nil
		}

		return "constant", nil
	})

	f, err := Parse([]byte("template:\n  a: !fn constant\n"))
	require.NoError(t, err)

	tpl, opts, err := f.Build(registry, nil)
	require.NoError(t, err)

	parent, err := template.NewMapper(opts).From(tpl, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": "constant"}, parent)
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{name: "unsupported version", yaml: "version: \"2\"\ntemplate: a", message: "unsupported template file version"},
		{name: "unknown option", yaml: "options: {quote: true}\ntemplate: a", message: "invalid options"},
		{name: "bad match rule", yaml: "options: {match: '('}\ntemplate: a", message: "invalid pattern"},
		{name: "match rule without group", yaml: "options: {match: 'x'}\ntemplate: a", message: "no capture group"},
		{name: "invalid jq", yaml: "functions: {f: {to: '{'}}\ntemplate: a", message: `function "f": to`},
		{name: "missing template", yaml: "version: \"1\"", message: "no template section"},
		{name: "null template", yaml: "template:\n  a: ~", message: "$.a (line 2): null is not a template"},
		{name: "unknown tag", yaml: "template: [!foo x]", message: "unknown tag !foo"},
		{
			name:    "unknown function with suggestion",
			yaml:    "functions: {halve: {to: ., from: .}}\ntemplate: {a: !fn halv}",
			message: `unknown function "halv" (did you mean "halve"?)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.yaml))
			require.NoError(t, err)

			_, _, err = f.Build(nil, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestBuild_InvalidMatchIsInvalidPattern(t *testing.T) {
	f, err := Parse([]byte("options: {match: 'x'}\ntemplate: a"))
	require.NoError(t, err)

	_, _, err = f.Build(nil, nil)
	assert.True(t, errors.Is(err, template.ErrInvalidPattern))
}

func TestBuildTemplate_NodeError(t *testing.T) {
	f, err := Parse([]byte("template:\n  list:\n    - ok\n    - !fn nope\n"))
	require.NoError(t, err)

	_, err = BuildTemplate(&f.Template, NewFuncRegistry())
	require.Error(t, err)

	var nodeErr *NodeError
	require.ErrorAs(t, err, &nodeErr)
	assert.Equal(t, "$.list[1]", nodeErr.Path)
	assert.Equal(t, 4, nodeErr.Line)
}

func TestBuildTemplate_Scalars(t *testing.T) {
	f, err := Parse([]byte("template: [42, true, '{x}', &anchor '{y}', *anchor]"))
	require.NoError(t, err)

	tpl, err := BuildTemplate(&f.Template, nil)
	require.NoError(t, err)

	assert.Equal(t, template.Sequence{
		template.Pattern("42"),
		template.Pattern("true"),
		template.Pattern("{x}"),
		template.Pattern("{y}"),
		template.Pattern("{y}"),
	}, tpl)
}
