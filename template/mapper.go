package template

// Mapper runs templates in both directions with a fixed set of Options.
// A Mapper is immutable and safe for concurrent use.
type Mapper struct {
	opts Options
}

// NewMapper creates a Mapper. Unset options take their defaults.
func NewMapper(opts Options) *Mapper {
	return &Mapper{opts: opts.withDefaults()}
}

// Options returns the options the mapper runs with.
func (m *Mapper) Options() Options {
	return m.opts
}

func (m *Mapper) context(d Direction) (Context, error) {
	if err := m.opts.Validate(); err != nil {
		return Context{}, &Error{Op: d.String(), Err: err}
	}

	return Context{
		Direction:     d,
		Match:         m.opts.Match,
		QuoteLiterals: m.opts.QuoteLiterals,
		Logger:        m.opts.Logger,
	}, nil
}

var defaultMapper = NewMapper(DefaultOptions())

// From reconstructs a parent value from child with the default options.
func From(tpl Template, child any) (any, error) {
	return defaultMapper.From(tpl, child)
}

// To extracts a nested child value from parent with the default options.
func To(tpl Template, parent any) (any, error) {
	return defaultMapper.To(tpl, parent)
}

// Extract returns the flat field map To would unflatten, with the default options.
func Extract(tpl Template, parent any) (*Fields, error) {
	return defaultMapper.Extract(tpl, parent)
}

// ToInto extracts a child value from parent with the default options and decodes it into out.
func ToInto(tpl Template, parent any, out any) error {
	return defaultMapper.ToInto(tpl, parent, out)
}
