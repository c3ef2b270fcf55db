package interpreter

import (
	"golang.org/x/exp/slices"

	"github.com/plorth/interpreter/internal/token"
)

// Input is the value-reading interface consumed from an embedder; see §6.2.
type Input interface {
	Read() (Value, error)
}

// CompileFn compiles source text into a compiled quote, per §4.1-§4.2. It
// is injected by the root embedding package (which owns the scanner,
// parser and compiler) to avoid an import cycle back into this package.
type CompileFn func(source, file string, pos token.Position) (*Quote, error)

// Output is the value-writing interface consumed from an embedder.
type Output interface {
	Write(v Value) error
}

// Runtime holds state shared across contexts: I/O handles, the global
// dictionary, the null/boolean singletons and the nine type prototypes.
type Runtime struct {
	Input  Input
	Output Output
	Compile CompileFn

	Null  Null
	True  Boolean
	False Boolean

	globals map[string]Value

	objectPrototype  *Object
	arrayPrototype   *Object
	booleanPrototype *Object
	errorPrototype   *Object
	numberPrototype  *Object
	stringPrototype  *Object
	symbolPrototype  *Object
	quotePrototype   *Object
	wordPrototype    *Object
}

// NewRuntime constructs a Runtime with input/output optionally nil, and
// installs the standard word library into its nine prototypes and global
// dictionary.
func NewRuntime(input Input, output Output) *Runtime {
	rt := &Runtime{
		Input:   input,
		Output:  output,
		True:    Boolean(true),
		False:   Boolean(false),
		globals: make(map[string]Value),
	}
	installStdlib(rt)
	return rt
}

// Bool returns the runtime's shared boolean singleton for b.
func (rt *Runtime) Bool(b bool) Boolean {
	if b {
		return rt.True
	}
	return rt.False
}

// DefineGlobal binds name to value in the global dictionary. Embedders may
// call this before creating contexts (§3.4); the runtime itself does not
// otherwise enforce when mutation happens (see §5 on sharing it unsafely
// after contexts exist).
func (rt *Runtime) DefineGlobal(name string, value Value) {
	rt.globals[name] = value
}

// Global looks up a binding in the global dictionary.
func (rt *Runtime) Global(name string) (Value, bool) {
	v, ok := rt.globals[name]
	return v, ok
}

// Globals returns the global dictionary itself (not a copy).
func (rt *Runtime) Globals() map[string]Value {
	return rt.globals
}

// makePrototype builds a prototype object out of a static table of native
// word definitions, per §4.3. parent is nil only for the object prototype
// itself, which is terminal (its __proto__ is the null singleton).
func (rt *Runtime) makePrototype(words map[string]NativeFn, parent *Object) *Object {
	names := make([]string, 0, len(words))
	for name := range words {
		names = append(names, name)
	}
	slices.Sort(names)

	props := make([]Property, 0, len(words)+1)
	for _, name := range names {
		props = append(props, Property{Key: name, Value: NewNativeQuote(name, words[name])})
	}
	if parent != nil {
		props = append(props, Property{Key: "__proto__", Value: parent})
	} else {
		props = append(props, Property{Key: "__proto__", Value: rt.Null})
	}
	return NewObject(props)
}

// typeReferenceQuote builds the compiled quote registered in the global
// dictionary under a type name, which when executed pushes an object
// `{ __proto__: object_prototype, prototype: <this-prototype> }` (§4.3).
func (rt *Runtime) typeReferenceQuote(prototype *Object) *Quote {
	obj := NewObject([]Property{
		{Key: "__proto__", Value: rt.objectPrototype},
		{Key: "prototype", Value: prototype},
	})
	return NewCompiledQuote([]Value{obj})
}
