package mapping

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"gopkg.in/yaml.v3"

	"unterpolate/internal/match"
	"unterpolate/template"
)

// maxSuggestions caps the "did you mean" list of an unknown function.
const maxSuggestions = 3

// NodeError locates a template node that cannot be built.
type NodeError struct {
	// Path is the template position, e.g. "$.fourth[1]".
	Path string
	Line int
	Err  error
}

func (e *NodeError) Error() string {
	return fmt.Sprintf("%s (line %d): %v", e.Path, e.Line, e.Err)
}

func (e *NodeError) Unwrap() error {
	return e.Err
}

// Build turns the file into a template and the options it runs with.
// Functions declared by the file are added on top of registry, which may be nil.
func (f *File) Build(registry *FuncRegistry, logger *slog.Logger) (template.Template, template.Options, error) {
	if f.Version != SupportedVersion {
		return nil, template.Options{}, fmt.Errorf("unsupported template file version %q", f.Version)
	}

	raw, err := f.DecodeOptions()
	if err != nil {
		return nil, template.Options{}, err
	}

	opts, err := raw.TemplateOptions(logger)
	if err != nil {
		return nil, template.Options{}, err
	}

	funcs, errs := BuildRegistry(f, registry)
	if len(errs) > 0 {
		return nil, template.Options{}, errors.Join(errs...)
	}

	if !f.HasTemplate() {
		return nil, template.Options{}, errors.New("template file has no template section")
	}

	tpl, err := BuildTemplate(&f.Template, funcs)
	if err != nil {
		return nil, template.Options{}, err
	}

	return tpl, opts, nil
}

// BuildTemplate converts a YAML node into a template, resolving !fn
// references against registry.
func BuildTemplate(node *yaml.Node, registry *FuncRegistry) (template.Template, error) {
	return buildNode(node, registry, "$")
}

func buildNode(node *yaml.Node, registry *FuncRegistry, trail string) (template.Template, error) {
	fail := func(err error) (template.Template, error) {
		return nil, &NodeError{Path: trail, Line: node.Line, Err: err}
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return fail(errors.New("empty document"))
		}

		return buildNode(node.Content[0], registry, trail)

	case yaml.AliasNode:
		return buildNode(node.Alias, registry, trail)

	case yaml.ScalarNode:
		switch node.Tag {
		case FuncTag:
			fn, err := registry.lookup(node.Value)
			if err != nil {
				if suggestions := match.Suggest(node.Value, registry.Names(), maxSuggestions); len(suggestions) > 0 {
					err = fmt.Errorf("%w (did you mean %s?)", err, joinQuoted(suggestions))
				}

				return fail(err)
			}

			return fn, nil
		case "!!null":
			return fail(errors.New("null is not a template"))
		}

		if isCustomTag(node.Tag) {
			return fail(fmt.Errorf("unknown tag %s", node.Tag))
		}

		return template.Pattern(node.Value), nil

	case yaml.SequenceNode:
		seq := make(template.Sequence, 0, len(node.Content))

		for i, item := range node.Content {
			sub, err := buildNode(item, registry, trail+"["+strconv.Itoa(i)+"]")
			if err != nil {
				return nil, err
			}

			seq = append(seq, sub)
		}

		return seq, nil

	case yaml.MappingNode:
		m := make(template.Mapping, len(node.Content)/2)

		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if _, dup := m[key]; dup {
				return fail(fmt.Errorf("duplicate key %q", key))
			}

			sub, err := buildNode(node.Content[i+1], registry, trail+"."+key)
			if err != nil {
				return nil, err
			}

			m[key] = sub
		}

		return m, nil

	default:
		return fail(fmt.Errorf("unsupported node kind %d", node.Kind))
	}
}

// isCustomTag reports whether tag is a local tag ("!x") other than the
// standard "!!" ones. The non-specific "!" tag forces a plain string.
func isCustomTag(tag string) bool {
	return len(tag) > 1 && tag[0] == '!' && tag[1] != '!'
}

func joinQuoted(names []string) string {
	out := ""

	for i, n := range names {
		if i > 0 {
			out += ", "
		}

		out += strconv.Quote(n)
	}

	return out
}
