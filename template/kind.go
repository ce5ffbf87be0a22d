package template

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies which case of the Template sum type a node is.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindFunc
	KindPattern
	KindSequence
	KindMapping

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsLeaf reports whether the kind has no child templates.
func (k Kind) IsLeaf() bool {
	switch k {
	default:
		return false
	case KindFunc, KindPattern:
		return true
	}
}

// IsComposite reports whether the kind holds child templates.
func (k Kind) IsComposite() bool {
	switch k {
	default:
		return false
	case KindSequence, KindMapping:
		return true
	}
}

// KindOf returns the kind of tpl, or the zero Kind for a nil template.
func KindOf(tpl Template) Kind {
	if tpl == nil {
		return 0
	}

	return tpl.Kind()
}
