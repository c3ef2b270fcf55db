package interpreter

// objectWords implements §4.7.g: generic property access (get/set/delete/
// has?/keys) and `new`, on top of the prototype-chain mechanism already
// wired into Exec for inherited words. To-source formatting is the global
// `>source` word.
func objectWords() map[string]NativeFn {
	return map[string]NativeFn{
		"keys": func(ctx *Context) error {
			o, ok := ctx.PopObject()
			if !ok {
				return nil
			}
			ctx.Push(o)
			keys := make([]Value, len(o.Properties))
			for i, p := range o.Properties {
				keys[i] = String(p.Key)
			}
			ctx.PushArray(keys)
			return nil
		},
		"has?": func(ctx *Context) error {
			key, ok := ctx.PopString()
			if !ok {
				return nil
			}
			o, ok := ctx.PopObject()
			if !ok {
				ctx.Push(key)
				return nil
			}
			ctx.Push(o)
			_, has := o.Own(string(key))
			ctx.PushBool(has)
			return nil
		},
		"get": func(ctx *Context) error {
			key, ok := ctx.PopString()
			if !ok {
				return nil
			}
			o, ok := ctx.PopObject()
			if !ok {
				ctx.Push(key)
				return nil
			}
			ctx.Push(o)
			v, has := o.Own(string(key))
			if !has {
				ctx.SetError(NewError(ErrValue, "No such property: `"+string(key)+"'", ctx.Position()))
				return nil
			}
			ctx.Push(v)
			return nil
		},
		"set": func(ctx *Context) error {
			value, ok := ctx.Pop()
			if !ok {
				return nil
			}
			key, ok := ctx.PopString()
			if !ok {
				ctx.Push(value)
				return nil
			}
			o, ok := ctx.PopObject()
			if !ok {
				ctx.Push(key)
				ctx.Push(value)
				return nil
			}
			ctx.Push(o.With(string(key), value))
			return nil
		},
		"delete": func(ctx *Context) error {
			key, ok := ctx.PopString()
			if !ok {
				return nil
			}
			o, ok := ctx.PopObject()
			if !ok {
				ctx.Push(key)
				return nil
			}
			props := make([]Property, 0, len(o.Properties))
			for _, p := range o.Properties {
				if p.Key != string(key) {
					props = append(props, p)
				}
			}
			ctx.Push(NewObject(props))
			return nil
		},
		"new": func(ctx *Context) error {
			pairs, ok := ctx.PopArray()
			if !ok {
				return nil
			}
			props := make([]Property, 0, len(pairs.Elements))
			for _, e := range pairs.Elements {
				pair, ok := e.(*Array)
				if !ok || len(pair.Elements) != 2 {
					ctx.SetError(NewError(ErrType, "Expected array of [key, value] pairs.", ctx.Position()))
					return nil
				}
				key, ok := pair.Elements[0].(String)
				if !ok {
					ctx.SetError(NewError(ErrType, "Expected string key.", ctx.Position()))
					return nil
				}
				props = append(props, Property{Key: string(key), Value: pair.Elements[1]})
			}
			ctx.Push(NewObject(props))
			return nil
		},
	}
}
