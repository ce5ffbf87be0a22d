package template

// From reconstructs a parent value from child.
//
// Pattern leaves are interpolated against child, Func leaves are called with
// the child value and their result is used verbatim. Sequence and Mapping nodes
// hand the whole child value to each element, since placeholders address the
// child from its root, and reassemble the results in the template's shape.
func (m *Mapper) From(tpl Template, child any) (any, error) {
	ctx, err := m.context(DirectionFrom)
	if err != nil {
		return nil, err
	}

	return m.from(tpl, child, ctx, "$")
}

func (m *Mapper) from(tpl Template, child any, ctx Context, trail string) (any, error) {
	switch t := tpl.(type) {
	case Func:
		if t == nil {
			return nil, at(DirectionFrom, trail, ErrUnsupportedTemplate)
		}

		return t(child, ctx.WithDirection(DirectionFrom))

	case Pattern:
		out, err := interpolate(string(t), child, ctx)
		if err != nil {
			return nil, at(DirectionFrom, trail, err)
		}

		return out, nil

	case Sequence:
		out := make([]any, len(t))

		for i, sub := range t {
			v, err := m.from(sub, child, ctx, indexTrail(trail, i))
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return out, nil

	case Mapping:
		out := make(map[string]any, len(t))

		for _, key := range t.Keys() {
			v, err := m.from(t[key], child, ctx, keyTrail(trail, key))
			if err != nil {
				return nil, err
			}

			out[key] = v
		}

		return out, nil

	default:
		return nil, at(DirectionFrom, trail, ErrUnsupportedTemplate)
	}
}
