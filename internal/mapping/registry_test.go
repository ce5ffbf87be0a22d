package mapping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"unterpolate/template"
)

func identity(value any, _ template.Context) (any, error) {
	return value, nil
}

func TestFuncRegistry(t *testing.T) {
	r := NewFuncRegistry()
	assert.False(t, r.Has("id"))
	assert.Nil(t, r.Get("id"))

	r.Add("id", identity)
	r.Add("alpha", identity)

	assert.True(t, r.Has("id"))
	require.NotNil(t, r.Get("id"))
	assert.Nil(t, r.Get("id").Def)
	assert.Equal(t, []string{"alpha", "id"}, r.Names())

	clone := r.Clone()
	clone.Add("beta", identity)
	assert.False(t, r.Has("beta"))
	assert.True(t, clone.Has("id"))
}

func TestFuncRegistry_Nil(t *testing.T) {
	var r *FuncRegistry

	assert.False(t, r.Has("x"))
	assert.Nil(t, r.Names())
	assert.NotNil(t, r.Clone())
}

func TestBuildRegistry(t *testing.T) {
	base := NewFuncRegistry()
	base.Add("halve", identity)
	base.Add("keep", identity)

	f := &File{Functions: map[string]FuncDef{
		"halve":  {To: "{prop: (. / 2)}", From: ".prop * 2"},
		"broken": {To: "{"},
	}}

	registry, errs := BuildRegistry(f, base)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), `function "broken"`)

	assert.Equal(t, []string{"halve", "keep"}, registry.Names())
	require.NotNil(t, registry.Get("halve").Def)
	assert.Equal(t, ".prop * 2", registry.Get("halve").Def.From)
	assert.Nil(t, base.Get("halve").Def)

	out, err := registry.Get("halve").Func(map[string]any{"prop": 4}, template.Context{Direction: template.DirectionFrom})
	require.NoError(t, err)
	assert.EqualValues(t, 8, out)
}
