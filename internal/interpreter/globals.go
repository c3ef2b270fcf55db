package interpreter

import (
	"math"
	"time"
)

// Version is the interpreter's self-reported version string, returned by
// the `version` word.
const Version = "0.1.0"

// mergeWords combines several word tables into one, for prototypes that
// are assembled from more than one source file's word group (§4.3).
func mergeWords(tables ...map[string]NativeFn) map[string]NativeFn {
	merged := make(map[string]NativeFn)
	for _, table := range tables {
		for name, fn := range table {
			merged[name] = fn
		}
	}
	return merged
}

// installStdlib wires the nine type prototypes and the global dictionary,
// per §4.3.
func installStdlib(rt *Runtime) {
	rt.objectPrototype = rt.makePrototype(objectWords(), nil)
	rt.arrayPrototype = rt.makePrototype(mergeWords(arrayWords(), arrayCombinatorWords()), rt.objectPrototype)
	rt.booleanPrototype = rt.makePrototype(map[string]NativeFn{}, rt.objectPrototype)
	rt.errorPrototype = rt.makePrototype(errorPrototypeWords(), rt.objectPrototype)
	rt.numberPrototype = rt.makePrototype(mergeWords(arithmeticWords(), bitwiseWords()), rt.objectPrototype)
	rt.stringPrototype = rt.makePrototype(stringWords(), rt.objectPrototype)
	rt.symbolPrototype = rt.makePrototype(map[string]NativeFn{}, rt.objectPrototype)
	rt.quotePrototype = rt.makePrototype(map[string]NativeFn{
		"call": func(ctx *Context) error {
			q, ok := ctx.PopQuote()
			if !ok {
				return nil
			}
			q.Call(ctx)
			return nil
		},
	}, rt.objectPrototype)
	rt.wordPrototype = rt.makePrototype(wordWords(), rt.objectPrototype)

	for name, words := range map[string]map[string]NativeFn{
		"stack":             stackWords(),
		"type":              typeWords(),
		"control":           controlWords(),
		"error":             errorWords(),
		"io":                ioWords(),
		"dict":              dictWords(),
		"misc":              miscGlobalWords(rt),
		"array-combinators": arrayCombinatorWords(),
	} {
		_ = name
		for word, fn := range words {
			rt.DefineGlobal(word, NewNativeQuote(word, fn))
		}
	}

	rt.DefineGlobal("null", NewNativeQuote("null", func(ctx *Context) error {
		ctx.Push(ctx.Runtime.Null)
		return nil
	}))
	rt.DefineGlobal("true", NewNativeQuote("true", func(ctx *Context) error {
		ctx.Push(ctx.Runtime.True)
		return nil
	}))
	rt.DefineGlobal("false", NewNativeQuote("false", func(ctx *Context) error {
		ctx.Push(ctx.Runtime.False)
		return nil
	}))
	rt.DefineGlobal("e", NewNativeQuote("e", func(ctx *Context) error {
		ctx.PushReal(math.E)
		return nil
	}))
	rt.DefineGlobal("pi", NewNativeQuote("pi", func(ctx *Context) error {
		ctx.PushReal(math.Pi)
		return nil
	}))
	rt.DefineGlobal("inf", NewNativeQuote("inf", func(ctx *Context) error {
		ctx.PushReal(math.Inf(1))
		return nil
	}))
	rt.DefineGlobal("-inf", NewNativeQuote("-inf", func(ctx *Context) error {
		ctx.PushReal(math.Inf(-1))
		return nil
	}))
	rt.DefineGlobal("nan", NewNativeQuote("nan", func(ctx *Context) error {
		ctx.PushReal(math.NaN())
		return nil
	}))

	rt.DefineGlobal("array", rt.typeReferenceQuote(rt.arrayPrototype))
	rt.DefineGlobal("boolean", rt.typeReferenceQuote(rt.booleanPrototype))
	rt.DefineGlobal("error", rt.typeReferenceQuote(rt.errorPrototype))
	rt.DefineGlobal("number", rt.typeReferenceQuote(rt.numberPrototype))
	rt.DefineGlobal("object", rt.typeReferenceQuote(rt.objectPrototype))
	rt.DefineGlobal("quote", rt.typeReferenceQuote(rt.quotePrototype))
	rt.DefineGlobal("string", rt.typeReferenceQuote(rt.stringPrototype))
	rt.DefineGlobal("symbol", rt.typeReferenceQuote(rt.symbolPrototype))
	rt.DefineGlobal("word", rt.typeReferenceQuote(rt.wordPrototype))
}

// wordWords implements the word prototype's §4.7.k accessors.
func wordWords() map[string]NativeFn {
	return map[string]NativeFn{
		"symbol": func(ctx *Context) error {
			w, ok := ctx.PopWord()
			if !ok {
				return nil
			}
			ctx.Push(w)
			ctx.Push(w.Symbol)
			return nil
		},
		"define": func(ctx *Context) error {
			w, ok := ctx.PopWord()
			if !ok {
				return nil
			}
			v, ok := ctx.Pop()
			if !ok {
				ctx.Push(w)
				return nil
			}
			ctx.DefineLocal(w.Symbol.ID, v)
			return nil
		},
		"delete": func(ctx *Context) error {
			w, ok := ctx.PopWord()
			if !ok {
				return nil
			}
			if !ctx.DeleteLocal(w.Symbol.ID) {
				return ctx.errf(ErrReference, "Unrecognized word: `%s'", w.Symbol.ID)
			}
			return nil
		},
	}
}

// dictWords implements §4.7.k's dictionary projections plus `const`.
func dictWords() map[string]NativeFn {
	return map[string]NativeFn{
		"globals": func(ctx *Context) error {
			ctx.Push(dictionaryToObject(ctx.Runtime.Globals()))
			return nil
		},
		"locals": func(ctx *Context) error {
			ctx.Push(dictionaryToObject(ctx.Locals()))
			return nil
		},
		"const": func(ctx *Context) error {
			id, ok := ctx.PopString()
			if !ok {
				return nil
			}
			v, ok := ctx.Pop()
			if !ok {
				ctx.Push(id)
				return nil
			}
			ctx.DefineLocal(string(id), v)
			return nil
		},
	}
}

func dictionaryToObject(dict map[string]Value) *Object {
	keys := sortedKeys(dict)
	props := make([]Property, len(keys))
	for i, k := range keys {
		props[i] = Property{Key: k, Value: dict[k]}
	}
	return NewObject(props)
}

// miscGlobalWords implements the remaining supplemental words carried
// over from the reference implementation's globals.cpp: typeof,
// instance-of?, proto, conversions, array construction, compile, version
// and now.
func miscGlobalWords(rt *Runtime) map[string]NativeFn {
	return map[string]NativeFn{
		"typeof": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.Push(v)
			ctx.PushString(v.Kind().String())
			return nil
		},
		"instance-of?": func(ctx *Context) error {
			obj, ok := ctx.PopObject()
			if !ok {
				return nil
			}
			v, ok := ctx.Pop()
			if !ok {
				ctx.Push(obj)
				return nil
			}
			ctx.Push(v)
			want, ok := obj.Own("prototype")
			wantObj, isObj := want.(*Object)
			if !ok || !isObj {
				ctx.PushBool(false)
				return nil
			}
			// Executing a type name pushes an evaluated copy of its
			// prototype, so prototypes also match by structural equality.
			cur := v.Prototype(ctx.Runtime)
			found := false
			for cur != nil {
				if cur == wantObj || cur.Equal(wantObj) {
					found = true
					break
				}
				next := cur.Prototype(ctx.Runtime)
				if next == cur {
					break
				}
				cur = next
			}
			ctx.PushBool(found)
			return nil
		},
		"proto": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.Push(v)
			if proto := v.Prototype(ctx.Runtime); proto != nil {
				ctx.Push(proto)
			} else {
				ctx.Push(ctx.Runtime.Null)
			}
			return nil
		},
		">boolean": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			if b, ok := v.(Boolean); ok {
				ctx.Push(b)
				return nil
			}
			_, isNull := v.(Null)
			ctx.PushBool(!isNull)
			return nil
		},
		">string": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.PushString(v.String())
			return nil
		},
		">source": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.PushString(v.Source())
			return nil
		},
		"1array": func(ctx *Context) error {
			v, ok := ctx.Pop()
			if !ok {
				return nil
			}
			ctx.PushArray([]Value{v})
			return nil
		},
		"2array": func(ctx *Context) error {
			b, ok := ctx.Pop()
			if !ok {
				return nil
			}
			a, ok := ctx.Pop()
			if !ok {
				ctx.Push(b)
				return nil
			}
			ctx.PushArray([]Value{a, b})
			return nil
		},
		"narray": func(ctx *Context) error {
			n, ok := ctx.PopNumber()
			if !ok {
				return nil
			}
			size := n.IntValue()
			if size < 0 {
				return ctx.errf(ErrRange, "Negative array size.")
			}
			values := make([]Value, size)
			for i := size - 1; i >= 0; i-- {
				v, ok := ctx.Pop()
				if !ok {
					return nil
				}
				values[i] = v
			}
			ctx.PushArray(values)
			return nil
		},
		"compile": func(ctx *Context) error {
			s, ok := ctx.PopString()
			if !ok {
				return nil
			}
			if ctx.Runtime.Compile == nil {
				return ctx.errf(ErrIO, "No compiler installed.")
			}
			q, err := ctx.Runtime.Compile(string(s), ctx.Position().File, ctx.Position())
			if err != nil {
				return ctx.errf(ErrSyntax, "%s", err.Error())
			}
			ctx.Push(q)
			return nil
		},
		"version": func(ctx *Context) error {
			ctx.PushString(Version)
			return nil
		},
		"now": func(ctx *Context) error {
			ctx.PushReal(float64(time.Now().UnixMilli()))
			return nil
		},
	}
}
