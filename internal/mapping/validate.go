package mapping

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"

	"unterpolate/internal/common"
	"unterpolate/internal/diagnostic"
	"unterpolate/internal/jqfunc"
	"unterpolate/internal/match"
	"unterpolate/internal/pathexpr"
	"unterpolate/template"
)

// Validate checks a template file without building it. Functions may come
// from the file or from registry, which may be nil.
func Validate(f *File, registry *FuncRegistry) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("file_is_nil", "template file is nil", "")
		return res
	}

	if f.Version != SupportedVersion {
		res.AddError("unsupported_version",
			fmt.Sprintf("unsupported version %q, expected %q", f.Version, SupportedVersion), "version")
	}

	ctx, ok := validateOptions(res, f)
	known := validateFunctions(res, f, registry)

	if !f.HasTemplate() {
		res.AddError("missing_template", "template file has no template section", "template")
		return res
	}

	v := &nodeValidator{res: res, ctx: ctx, checkPatterns: ok, known: known, seen: map[string]string{}}
	v.walk(&f.Template, "$")

	return res
}

// validateOptions reports option problems and returns the context patterns are
// checked with. The boolean is false when patterns cannot be checked.
func validateOptions(res *diagnostic.Diagnostics, f *File) (template.Context, bool) {
	raw, err := f.DecodeOptions()
	if err != nil {
		res.AddError("invalid_options", err.Error(), "options")
		return template.Context{}, false
	}

	opts, err := raw.TemplateOptions(nil)
	if err != nil {
		res.AddError("invalid_match", err.Error(), "options.match")
		return template.Context{}, false
	}

	return template.Context{Match: opts.Match, QuoteLiterals: opts.QuoteLiterals}, true
}

// validateFunctions reports declaration problems and returns every function
// name a !fn tag may refer to.
func validateFunctions(res *diagnostic.Diagnostics, f *File, registry *FuncRegistry) []string {
	known := registry.Names()

	for _, name := range slices.Sorted(maps.Keys(f.Functions)) {
		def := f.Functions[name]
		path := "functions." + name

		switch {
		case def.To == "" && def.From == "":
			res.AddError("empty_function", fmt.Sprintf("function %q declares neither to nor from", name), path)
			continue
		case def.To == "":
			res.AddWarning("one_way_function", fmt.Sprintf("function %q has no to expression and fails when extracting", name), path)
		case def.From == "":
			res.AddWarning("one_way_function", fmt.Sprintf("function %q has no from expression and fails when rebuilding", name), path)
		}

		if _, err := jqfunc.Compile(jqfunc.Def{Name: name, To: def.To, From: def.From}); err != nil {
			res.AddError("invalid_jq", err.Error(), path)
		}

		if registry.Has(name) {
			res.AddInfo("shadowed_function", fmt.Sprintf("function %q replaces a registered function", name), path)
		} else {
			known = append(known, name)
		}
	}

	slices.Sort(known)

	return known
}

type nodeValidator struct {
	res           *diagnostic.Diagnostics
	ctx           template.Context
	checkPatterns bool
	known         []string

	// seen maps a placeholder path to the first template position writing it.
	seen map[string]string
}

func (v *nodeValidator) walk(node *yaml.Node, trail string) {
	switch node.Kind {
	case yaml.DocumentNode:
		for _, c := range node.Content {
			v.walk(c, trail)
		}

	case yaml.AliasNode:
		v.walk(node.Alias, trail)

	case yaml.ScalarNode:
		v.scalar(node, trail)

	case yaml.SequenceNode:
		for i, item := range node.Content {
			v.walk(item, trail+"["+strconv.Itoa(i)+"]")
		}

	case yaml.MappingNode:
		keys := map[string]bool{}

		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if keys[key] {
				v.res.AddError("duplicate_key", fmt.Sprintf("duplicate key %q on line %d", key, node.Content[i].Line), trail)
				continue
			}

			keys[key] = true
			v.walk(node.Content[i+1], trail+"."+key)
		}
	}
}

func (v *nodeValidator) scalar(node *yaml.Node, trail string) {
	switch {
	case node.Tag == FuncTag:
		if !slices.Contains(v.known, node.Value) {
			v.res.AddError("unknown_function", fmt.Sprintf("unknown function %q", node.Value), trail,
				match.Suggest(node.Value, v.known, maxSuggestions)...)
		}

		return
	case node.Tag == "!!null":
		v.res.AddError("null_template", "null is not a template", trail)
		return
	case isCustomTag(node.Tag):
		v.res.AddError("unknown_tag", fmt.Sprintf("unknown tag %s", node.Tag), trail)
		return
	}

	if v.checkPatterns {
		v.pattern(node.Value, trail)
	}
}

func (v *nodeValidator) pattern(pattern, trail string) {
	paths, err := template.Placeholders(pattern, v.ctx)
	if err != nil {
		v.res.AddError("invalid_pattern", err.Error(), trail)
		return
	}

	if common.IsEmpty(paths) {
		v.res.AddInfo("literal_pattern", fmt.Sprintf("pattern %q has no placeholders and extracts nothing", pattern), trail)
		return
	}

	if common.IsMultiple(paths) {
		v.res.AddInfo("multi_placeholder",
			fmt.Sprintf("pattern %q has %d placeholders and only extracts from strings", pattern, len(paths)), trail)
	}

	source, err := template.Matcher(pattern, v.ctx)
	if err == nil {
		_, err = regexp.Compile(source)
	}

	if err != nil {
		msg := fmt.Sprintf("pattern %q does not compile into a matcher: %v", pattern, err)
		if !v.ctx.QuoteLiterals {
			msg += "; set options.quote_literals to match literal text verbatim"
		}

		v.res.AddError("invalid_matcher", msg, trail)
	}

	for _, p := range paths {
		if _, err := pathexpr.Parse(p); err != nil {
			v.res.AddWarning("invalid_placeholder",
				fmt.Sprintf("placeholder %q is not a valid path and is kept as a literal key: %v", p, err), trail)
		}

		if first, dup := v.seen[p]; dup && first != trail {
			v.res.AddWarning("duplicate_placeholder",
				fmt.Sprintf("placeholder %q is also extracted at %s; only one value survives extraction", p, first), trail)

			continue
		}

		v.seen[p] = trail
	}
}
