package template

import (
	"strconv"

	"github.com/mitchellh/mapstructure"

	"unterpolate/internal/flat"
	"unterpolate/internal/pathexpr"
)

// To extracts a nested child value from parent.
//
// The template is walked alongside parent: Sequence elements pair with parent
// elements by index, Mapping entries with parent entries by key. Every leaf
// produces a flat field map, the maps are merged (later entries win), and the
// merged map is unflattened once into the nested result.
func (m *Mapper) To(tpl Template, parent any) (any, error) {
	ctx, err := m.context(DirectionTo)
	if err != nil {
		return nil, err
	}

	if fn, ok := tpl.(Func); ok && fn != nil {
		out, err := fn(parent, ctx.WithDirection(DirectionTo))
		if err != nil {
			return nil, err
		}

		if out == nil {
			return nil, nil
		}

		// Results that are not field maps pass through.
		fields, err := asFields(out)
		if err != nil {
			return out, nil
		}

		return flat.Unflatten(fields.Map()), nil
	}

	fields, err := m.extract(tpl, Some(parent), ctx, "$")
	if err != nil {
		return nil, err
	}

	return flat.Unflatten(fields.Map()), nil
}

// Extract is To without the final unflatten: it returns the merged flat field
// map, keyed by placeholder path.
func (m *Mapper) Extract(tpl Template, parent any) (*Fields, error) {
	ctx, err := m.context(DirectionTo)
	if err != nil {
		return nil, err
	}

	return m.extract(tpl, Some(parent), ctx, "$")
}

// ToInto runs To and decodes the nested child into out, which must be a
// pointer. Decoding is weakly typed, so an extracted "2019" fills an int field.
func (m *Mapper) ToInto(tpl Template, parent any, out any) error {
	child, err := m.To(tpl, parent)
	if err != nil {
		return err
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}

	return decoder.Decode(child)
}

func (m *Mapper) extract(tpl Template, parent Value, ctx Context, trail string) (*Fields, error) {
	switch t := tpl.(type) {
	case Func:
		if t == nil {
			return nil, at(DirectionTo, trail, ErrUnsupportedTemplate)
		}

		out, err := t(parent.OrNil(), ctx.WithDirection(DirectionTo))
		if err != nil {
			return nil, err
		}

		fields, err := asFields(out)
		if err != nil {
			return nil, at(DirectionTo, trail, err)
		}

		return fields, nil

	case Pattern:
		fields, err := unmatch(string(t), parent, ctx)
		if err != nil {
			return nil, at(DirectionTo, trail, err)
		}

		return fields, nil

	case Sequence:
		merged := NewFields()

		for i, sub := range t {
			item := member(parent, pathexpr.Segment{Key: strconv.Itoa(i), Index: i, IsIndex: true})

			fields, err := m.extract(sub, item, ctx, indexTrail(trail, i))
			if err != nil {
				return nil, err
			}

			merged.Merge(fields)
		}

		return merged, nil

	case Mapping:
		merged := NewFields()

		for _, key := range t.Keys() {
			item := member(parent, pathexpr.Segment{Key: key})

			fields, err := m.extract(t[key], item, ctx, keyTrail(trail, key))
			if err != nil {
				return nil, err
			}

			merged.Merge(fields)
		}

		return merged, nil

	default:
		return nil, at(DirectionTo, trail, ErrUnsupportedTemplate)
	}
}

// member returns the element of parent addressed by seg, absent when parent is
// absent, has another shape, or lacks the element.
func member(parent Value, seg pathexpr.Segment) Value {
	if !parent.present {
		return None()
	}

	v, ok := pathexpr.Path{Segments: []pathexpr.Segment{seg}}.Lookup(parent.v)
	if !ok {
		return None()
	}

	return Some(v)
}
