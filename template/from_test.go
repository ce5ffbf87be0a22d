package template

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrom_String(t *testing.T) {
	got, err := From(Pattern("{year}-{month}-{day}"), map[string]any{"year": "2019", "month": "10", "day": "01"})
	require.NoError(t, err)

	assert.Equal(t, "2019-10-01", got)
}

func TestFrom_Sequence(t *testing.T) {
	tpl := Sequence{
		Pattern("{first.second}"),
		Pattern("{second}"),
		Pattern("third-{fourth.fifth}"),
		Pattern("{first.first}"),
	}
	child := map[string]any{
		"first": map[string]any{
			"first":  []any{"tom", "dick", "harry"},
			"second": "joe",
		},
		"fourth": map[string]any{"fifth": "jim"},
		"second": "bill",
	}

	got, err := From(tpl, child)
	require.NoError(t, err)

	assert.Equal(t, []any{"joe", "bill", "third-jim", []any{"tom", "dick", "harry"}}, got)
}

func TestFrom_Mapping(t *testing.T) {
	tpl := Mapping{
		"first":  Pattern("{first.second}"),
		"second": Pattern("{second}"),
		"third":  Pattern("{first.childA.0}"),
		"fourth": Sequence{Pattern("{a}"), Pattern("b"), Pattern("{c}")},
	}
	child := map[string]any{
		"a": "jim",
		"c": "fred",
		"first": map[string]any{
			"second": "joe",
			"childA": []any{[]any{"tom", "dick", "harry"}},
		},
		"second": "bill",
	}

	got, err := From(tpl, child)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"first":  "joe",
		"second": "bill",
		"third":  []any{"tom", "dick", "harry"},
		"fourth": []any{"jim", "b", "fred"},
	}, got)
}

func TestFrom_FuncResultIsVerbatim(t *testing.T) {
	fn := Func(func(value any, ctx Context) (any, error) {
		assert.Equal(t, DirectionFrom, ctx.Direction)
		return map[string]any{"not.unflattened": value}, nil
	})

	got, err := From(fn, 1)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"not.unflattened": 1}, got)
}

func TestFrom_FuncErrorPassesThrough(t *testing.T) {
	boom := errors.New("boom")

	_, err := From(Sequence{Pattern("x"), Func(func(any, Context) (any, error) { return nil, boom })}, nil)
	assert.Same(t, boom, err)
}

func TestFrom_CustomMatch(t *testing.T) {
	m := NewMapper(Options{Match: regexp.MustCompile(`\$\{(.+?)\}`)})

	got, err := m.From(Pattern("${year}/{literal}"), map[string]any{"year": 2019})
	require.NoError(t, err)

	assert.Equal(t, "2019/{literal}", got)
}

func TestFrom_MatchWithoutGroup(t *testing.T) {
	m := NewMapper(Options{Match: regexp.MustCompile(`\{.+?\}`)})

	_, err := m.From(Pattern("{year}"), nil)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestFrom_RoundTrip(t *testing.T) {
	templates := []Template{
		Pattern("{year}-{month}-{day}"),
		Sequence{Pattern("{a}"), Pattern("lit"), Pattern("{b}")},
		Mapping{"when": Pattern("{date.year}/{date.month}"), "who": Sequence{Pattern("{name}")}},
	}
	parents := []any{
		"2019-10-01",
		[]any{"x", "lit", "y"},
		map[string]any{"when": "2019/10", "who": []any{"ada"}},
	}

	for i, tpl := range templates {
		child, err := To(tpl, parents[i])
		require.NoError(t, err)

		parent, err := From(tpl, child)
		require.NoError(t, err)
		assert.Equal(t, parents[i], parent)

		again, err := To(tpl, parent)
		require.NoError(t, err)
		assert.Equal(t, child, again)
	}
}

func TestFrom_FalseyValuesAreBlank(t *testing.T) {
	parent, err := From(Pattern("{a}-{b}-{c}"), map[string]any{"a": 0, "b": false, "c": ""})
	require.NoError(t, err)
	assert.Equal(t, "--", parent)
}

func TestFrom_LeavesChildUnchanged(t *testing.T) {
	child := map[string]any{
		"first": map[string]any{"second": "joe"},
		"names": []any{"tom", "dick"},
	}
	tpl := Mapping{
		"first": Pattern("{first}"),
		"names": Sequence{Pattern("{names}"), Pattern("{first.second}")},
	}

	_, err := From(tpl, child)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"first": map[string]any{"second": "joe"},
		"names": []any{"tom", "dick"},
	}, child)
}
