// Package interpreter implements the Plorth value model, runtime, context
// and the eval/exec pair that drives execution, together with the standard
// word library.
package interpreter

import (
	"fmt"
	"strings"
	"sync"

	"github.com/plorth/interpreter/internal/token"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Kind tags the ten value variants.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
	KindError
	KindQuote
	KindSymbol
	KindWord
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindError:
		return "error"
	case KindQuote:
		return "quote"
	case KindSymbol:
		return "symbol"
	case KindWord:
		return "word"
	default:
		return "unknown"
	}
}

// Value is implemented by every Plorth value. Values are immutable after
// construction; array/object contents are fixed at construction time and
// replaced wholesale rather than mutated in place.
type Value interface {
	Kind() Kind
	// Prototype returns the object that supplies inherited words for this
	// value, or nil where the chain ends (an object whose __proto__ is not
	// an object, such as the object prototype itself).
	Prototype(rt *Runtime) *Object
	// Equal reports structural equality with other, per §3.1.
	Equal(other Value) bool
	// String is the human display form.
	String() string
	// Source is the form that round-trips through the parser.
	Source() string
	// JSON returns this value's JSON projection (Go-native: nil, bool,
	// int64, float64, string, []any, map-like via *orderedJSON).
	JSON() any
}

// Null is the singleton null value.
type Null struct{}

func (Null) Kind() Kind                      { return KindNull }
func (Null) Prototype(rt *Runtime) *Object    { return rt.objectPrototype }
func (Null) String() string                   { return "null" }
func (Null) Source() string                   { return "null" }
func (Null) JSON() any                        { return nil }
func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// Boolean wraps a bool. The runtime holds the only two instances.
type Boolean bool

func (Boolean) Kind() Kind                   { return KindBoolean }
func (b Boolean) Prototype(rt *Runtime) *Object { return rt.booleanPrototype }
func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
func (b Boolean) Source() string { return b.String() }
func (b Boolean) JSON() any      { return bool(b) }
func (b Boolean) Equal(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

// String is a UTF-32 text value, represented as a Go string (which is
// already a sequence of Unicode code points once decoded; []rune is used
// wherever code-point indexing matters).
type String string

func (String) Kind() Kind                      { return KindString }
func (s String) Prototype(rt *Runtime) *Object  { return rt.stringPrototype }
func (s String) String() string                 { return string(s) }
func (s String) Source() string                 { return quoteSource(string(s)) }
func (s String) JSON() any                      { return string(s) }
func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && s == o
}

func quoteSource(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// Array is an ordered, immutable sequence of values.
type Array struct {
	Elements []Value
}

// NewArray returns an Array wrapping elements (not copied).
func NewArray(elements []Value) *Array {
	return &Array{Elements: elements}
}

func (*Array) Kind() Kind                     { return KindArray }
func (a *Array) Prototype(rt *Runtime) *Object { return rt.arrayPrototype }

func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func (a *Array) Source() string {
	parts := make([]string, len(a.Elements))
	for i, e := range a.Elements {
		parts[i] = e.Source()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (a *Array) JSON() any {
	out := make([]any, len(a.Elements))
	for i, e := range a.Elements {
		out[i] = e.JSON()
	}
	return out
}

func (a *Array) Equal(other Value) bool {
	o, ok := other.(*Array)
	if !ok || len(a.Elements) != len(o.Elements) {
		return false
	}
	for i := range a.Elements {
		if !a.Elements[i].Equal(o.Elements[i]) {
			return false
		}
	}
	return true
}

// Flatten deep-flattens nested arrays into a single sequence.
func (a *Array) Flatten() []Value {
	var out []Value
	for _, e := range a.Elements {
		if nested, ok := e.(*Array); ok {
			out = append(out, nested.Flatten()...)
		} else {
			out = append(out, e)
		}
	}
	return out
}

// Property is a single insertion-ordered key/value pair.
type Property struct {
	Key   string
	Value Value
}

// Object is an insertion-ordered mapping from string keys to values.
type Object struct {
	Properties []Property
	index      map[string]int
}

// NewObject builds an Object from ordered properties.
func NewObject(props []Property) *Object {
	o := &Object{Properties: props}
	o.reindex()
	return o
}

func (o *Object) reindex() {
	o.index = make(map[string]int, len(o.Properties))
	for i, p := range o.Properties {
		o.index[p.Key] = i
	}
}

func (*Object) Kind() Kind { return KindObject }

func (o *Object) Prototype(rt *Runtime) *Object {
	if proto, ok := o.Own("__proto__"); ok {
		if p, ok := proto.(*Object); ok {
			return p
		}
		return nil
	}
	return rt.objectPrototype
}

// Own looks up a property declared directly on this object (no prototype
// walk).
func (o *Object) Own(key string) (Value, bool) {
	if o.index == nil {
		o.reindex()
	}
	i, ok := o.index[key]
	if !ok {
		return nil, false
	}
	return o.Properties[i].Value, true
}

// With returns a copy of o with key set to value, preserving insertion
// order (existing keys keep their position; new keys append).
func (o *Object) With(key string, value Value) *Object {
	props := make([]Property, len(o.Properties))
	copy(props, o.Properties)
	if o.index == nil {
		o.reindex()
	}
	if i, ok := o.index[key]; ok {
		props[i] = Property{Key: key, Value: value}
	} else {
		props = append(props, Property{Key: key, Value: value})
	}
	return NewObject(props)
}

func (o *Object) String() string { return o.Source() }

func (o *Object) Source() string {
	parts := make([]string, len(o.Properties))
	for i, p := range o.Properties {
		parts[i] = quoteSource(p.Key) + ": " + p.Value.Source()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (o *Object) JSON() any {
	return &orderedJSON{props: o.Properties}
}

func (o *Object) Equal(other Value) bool {
	p, ok := other.(*Object)
	if !ok || len(o.Properties) != len(p.Properties) {
		return false
	}
	for _, prop := range o.Properties {
		v, ok := p.Own(prop.Key)
		if !ok || !prop.Value.Equal(v) {
			return false
		}
	}
	return true
}

// orderedJSON marshals an Object's properties in insertion order.
type orderedJSON struct {
	props []Property
}

func (j *orderedJSON) MarshalJSON() ([]byte, error) {
	var b strings.Builder
	b.WriteByte('{')
	for i, p := range j.props {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := jsonMarshalString(p.Key)
		if err != nil {
			return nil, err
		}
		b.WriteString(key)
		b.WriteByte(':')
		val, err := jsonMarshal(p.Value.JSON())
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return []byte(b.String()), nil
}

// ErrorKind enumerates the fixed error kind set.
type ErrorKind int

const (
	ErrSyntax ErrorKind = iota
	ErrReference
	ErrType
	ErrValue
	ErrRange
	ErrImport
	ErrIO
	ErrUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case ErrSyntax:
		return "syntax-error"
	case ErrReference:
		return "reference-error"
	case ErrType:
		return "type-error"
	case ErrValue:
		return "value-error"
	case ErrRange:
		return "range-error"
	case ErrImport:
		return "import-error"
	case ErrIO:
		return "io-error"
	default:
		return "unknown-error"
	}
}

// Code returns the integer code word value for the kind, matching the
// fixed ordering of ErrorKind.
func (k ErrorKind) Code() int64 { return int64(k) }

// Error is a first-class diagnostic value.
type Error struct {
	ErrKind ErrorKind
	Message string
	Pos     token.Position
}

// NewError constructs an error with an optional position (zero Position if
// none).
func NewError(kind ErrorKind, message string, pos token.Position) *Error {
	return &Error{ErrKind: kind, Message: message, Pos: pos}
}

func (*Error) Kind() Kind                     { return KindError }
func (e *Error) Prototype(rt *Runtime) *Object { return rt.errorPrototype }

func (e *Error) String() string {
	if e.Message == "" {
		return e.ErrKind.String()
	}
	return fmt.Sprintf("%s: %s", e.ErrKind, e.Message)
}

func (e *Error) Source() string { return "<" + e.String() + ">" }

func (e *Error) JSON() any {
	props := []Property{
		{Key: "code", Value: Number{isInt: true, i: e.ErrKind.Code()}},
		{Key: "message", Value: String(e.Message)},
	}
	if !e.Pos.IsZero() {
		props = append(props, Property{Key: "position", Value: positionObject(e.Pos)})
	}
	return &orderedJSON{props: props}
}

func positionObject(pos token.Position) *Object {
	return NewObject([]Property{
		{Key: "file", Value: String(pos.File)},
		{Key: "line", Value: Number{isInt: true, i: int64(pos.Line)}},
		{Key: "column", Value: Number{isInt: true, i: int64(pos.Column)}},
	})
}

func (e *Error) Equal(other Value) bool {
	o, ok := other.(*Error)
	return ok && e.ErrKind == o.ErrKind && e.Message == o.Message
}

// NativeFn is a callback backing a native quote. It mutates ctx directly,
// pushing, popping, binding, or setting an error as needed.
type NativeFn func(ctx *Context) error

// Quote is either a native callback or a compiled sequence of values.
type Quote struct {
	Native   NativeFn
	Name     string
	Children []Value
}

// NewNativeQuote wraps a Go callback as a native quote.
func NewNativeQuote(name string, fn NativeFn) *Quote {
	return &Quote{Native: fn, Name: name}
}

// NewCompiledQuote wraps a sequence of values as a compiled quote.
func NewCompiledQuote(children []Value) *Quote {
	return &Quote{Children: children}
}

func (*Quote) Kind() Kind                     { return KindQuote }
func (q *Quote) Prototype(rt *Runtime) *Object { return rt.quotePrototype }

func (q *Quote) IsNative() bool { return q.Native != nil }

func (q *Quote) String() string {
	if q.IsNative() {
		if q.Name != "" {
			return fmt.Sprintf("<native:%s>", q.Name)
		}
		return "<native quote>"
	}
	return q.Source()
}

func (q *Quote) Source() string {
	if q.IsNative() {
		return "<native quote>"
	}
	parts := make([]string, len(q.Children))
	for i, c := range q.Children {
		parts[i] = c.Source()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func (q *Quote) JSON() any {
	if q.IsNative() {
		return "native quote"
	}
	out := make([]any, len(q.Children))
	for i, c := range q.Children {
		out[i] = c.JSON()
	}
	return out
}

func (q *Quote) Equal(other Value) bool {
	o, ok := other.(*Quote)
	if !ok {
		return false
	}
	if q.IsNative() || o.IsNative() {
		return q == o
	}
	if len(q.Children) != len(o.Children) {
		return false
	}
	for i := range q.Children {
		if !q.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Call executes the quote against ctx. For a native quote it invokes the
// callback and reports success iff the error slot is still empty
// afterwards. For a compiled quote it runs exec over each child in order,
// stopping at the first failure.
func (q *Quote) Call(ctx *Context) bool {
	if q.IsNative() {
		if err := q.Native(ctx); err != nil {
			ctx.SetErr(err)
		}
		return !ctx.HasError()
	}
	for _, child := range q.Children {
		if !Exec(ctx, child) {
			return false
		}
	}
	return true
}

// Symbol is an identifier as a first-class value.
type Symbol struct {
	ID  string
	Pos token.Position

	mu       sync.Mutex
	hashed   bool
	hash     uint64
}

// NewSymbol builds a Symbol.
func NewSymbol(id string, pos token.Position) *Symbol {
	return &Symbol{ID: id, Pos: pos}
}

func (*Symbol) Kind() Kind                     { return KindSymbol }
func (s *Symbol) Prototype(rt *Runtime) *Object { return rt.symbolPrototype }
func (s *Symbol) String() string                { return s.ID }
func (s *Symbol) Source() string                { return s.ID }
func (s *Symbol) JSON() any {
	props := []Property{{Key: "id", Value: String(s.ID)}}
	if !s.Pos.IsZero() {
		props = append(props, Property{Key: "position", Value: positionObject(s.Pos)})
	}
	return &orderedJSON{props: props}
}

func (s *Symbol) Equal(other Value) bool {
	o, ok := other.(*Symbol)
	return ok && s.ID == o.ID
}

// Hash returns the memoized hash of the identifier text, computing it on
// first access under a mutex since symbols may be shared across contexts.
func (s *Symbol) Hash() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.hashed {
		s.hash = fnv64a(s.ID)
		s.hashed = true
	}
	return s.hash
}

func fnv64a(s string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}

// Word denotes a dictionary binding in source: `: name body ;` compiles to
// a Word wrapping its symbol and compiled body quote.
type Word struct {
	Symbol *Symbol
	Body   *Quote
}

// NewWord builds a Word.
func NewWord(sym *Symbol, body *Quote) *Word {
	return &Word{Symbol: sym, Body: body}
}

func (*Word) Kind() Kind                     { return KindWord }
func (w *Word) Prototype(rt *Runtime) *Object { return rt.wordPrototype }
func (w *Word) String() string                { return w.Symbol.ID }
func (w *Word) Source() string                { return ": " + w.Symbol.ID + " " + joinSources(w.Body.Children) + " ;" }
func (w *Word) JSON() any                      { return w.Symbol.JSON() }

func joinSources(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.Source()
	}
	return strings.Join(parts, " ")
}

func (w *Word) Equal(other Value) bool {
	o, ok := other.(*Word)
	return ok && w.Symbol.Equal(o.Symbol)
}

// sortedKeys is a small helper used by dictionary-projection words to
// produce deterministic ordering when the underlying map has none.
func sortedKeys(m map[string]Value) []string {
	keys := maps.Keys(m)
	slices.Sort(keys)
	return keys
}

var (
	_ Value = Null{}
	_ Value = Boolean(false)
	_ Value = String("")
	_ Value = (*Array)(nil)
	_ Value = (*Object)(nil)
	_ Value = (*Error)(nil)
	_ Value = (*Quote)(nil)
	_ Value = (*Symbol)(nil)
	_ Value = (*Word)(nil)
)
