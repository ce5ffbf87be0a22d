package mapping

import (
	"fmt"
	"maps"
	"slices"

	"unterpolate/internal/jqfunc"
	"unterpolate/template"
)

// FuncRegistry holds named functions that template nodes tagged !fn refer to.
type FuncRegistry struct {
	funcs map[string]*RegisteredFunc
}

// RegisteredFunc is a function available to templates.
type RegisteredFunc struct {
	Name string
	Func template.Func

	// Def is the file declaration the function was compiled from, nil for
	// functions registered from Go.
	Def *FuncDef
}

// NewFuncRegistry creates a new empty function registry.
func NewFuncRegistry() *FuncRegistry {
	return &FuncRegistry{
		funcs: make(map[string]*RegisteredFunc),
	}
}

// BuildRegistry compiles the functions declared in f on top of the entries of
// base, which may be nil. Declarations that fail to compile are reported and
// left out.
func BuildRegistry(f *File, base *FuncRegistry) (*FuncRegistry, []error) {
	registry := base.Clone()

	var errs []error

	for _, name := range slices.Sorted(maps.Keys(f.Functions)) {
		def := f.Functions[name]

		compiled, err := jqfunc.Compile(jqfunc.Def{Name: name, To: def.To, From: def.From})
		if err != nil {
			errs = append(errs, err)
			continue
		}

		registry.funcs[name] = &RegisteredFunc{
			Name: name,
			Func: compiled.Func(),
			Def:  &def,
		}
	}

	return registry, errs
}

// Add registers fn under name, replacing any previous entry.
func (r *FuncRegistry) Add(name string, fn template.Func) {
	r.funcs[name] = &RegisteredFunc{Name: name, Func: fn}
}

// Get returns a registered function by name, or nil if not found.
func (r *FuncRegistry) Get(name string) *RegisteredFunc {
	if r == nil {
		return nil
	}

	return r.funcs[name]
}

// Has returns true if a function with the given name exists.
func (r *FuncRegistry) Has(name string) bool {
	return r.Get(name) != nil
}

// Names returns all function names, sorted.
func (r *FuncRegistry) Names() []string {
	if r == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(r.funcs))
}

// Clone returns a copy of the registry. Cloning nil gives an empty registry.
func (r *FuncRegistry) Clone() *FuncRegistry {
	out := NewFuncRegistry()
	if r != nil {
		maps.Copy(out.funcs, r.funcs)
	}

	return out
}

// lookup resolves name or explains what is missing.
func (r *FuncRegistry) lookup(name string) (template.Func, error) {
	fn := r.Get(name)
	if fn == nil {
		return nil, fmt.Errorf("unknown function %q", name)
	}

	return fn.Func, nil
}
