package mapping

import (
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only template file version understood by this package.
const SupportedVersion = "1"

// FuncTag marks a scalar template node as a function reference.
const FuncTag = "!fn"

// File represents the root of a YAML template file.
type File struct {
	// Version of the file schema.
	Version string `yaml:"version,omitempty"`

	// Options holds the raw options section. Use DecodeOptions to read it.
	Options map[string]any `yaml:"options,omitempty"`

	// Functions declares jq-backed functions by name.
	Functions map[string]FuncDef `yaml:"functions,omitempty"`

	// Template is kept as a node so tags and positions survive until Build.
	Template yaml.Node `yaml:"template"`
}

// FuncDef declares a function as one jq expression per direction.
// Either expression may be left out for a one-way function.
type FuncDef struct {
	To          string `yaml:"to,omitempty"`
	From        string `yaml:"from,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// Options is the decoded options section.
type Options struct {
	// Match is the placeholder regular expression. Empty keeps the default.
	Match string `mapstructure:"match"`

	// QuoteLiterals escapes regexp-special characters in literal pattern text.
	QuoteLiterals bool `mapstructure:"quote_literals"`
}

// HasTemplate reports whether the file declares a template section.
func (f *File) HasTemplate() bool {
	return f.Template.Kind != 0
}
