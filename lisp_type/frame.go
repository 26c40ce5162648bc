package lisptype

// a frame contains bindings that associate
// certain strings (the value of symbol Values)
// with other values
type Frame struct {
	Parent   *Frame            // the frame above this one, never owned
	names    []string          // binding names in the order they were made
	bindings map[string]*Value // its bindings, each one a private copy
}

func NewFrame(parent *Frame) *Frame {
	return &Frame{
		Parent:   parent,
		bindings: make(map[string]*Value),
	}
}

// looks up the nearest binding for name without copying it
func (f *Frame) Lookup(name string) (*Value, bool) {
	for ; f != nil; f = f.Parent {
		if v, ok := f.bindings[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// returns a copy of the nearest binding for name,
// or an error value if it is bound nowhere in the chain
func (f *Frame) Get(name string) *Value {
	v, ok := f.Lookup(name)
	if !ok {
		return NewError("Unbound symbol '%s'", name)
	}
	return v.Copy()
}

// binds name in this frame to a copy of v
func (f *Frame) Put(name string, v *Value) {
	if _, ok := f.bindings[name]; !ok {
		f.names = append(f.names, name)
	}
	f.bindings[name] = v.Copy()
}

// binds name in the outermost frame
func (f *Frame) Def(name string, v *Value) {
	f.Global().Put(name, v)
}

func (f *Frame) Global() *Frame {
	for f.Parent != nil {
		f = f.Parent
	}
	return f
}

// the names bound directly in this frame, oldest first
func (f *Frame) Names() []string {
	return f.names
}

// returns an independent frame with copies of every binding
// and the same parent
func (f *Frame) Copy() *Frame {
	x := &Frame{
		Parent:   f.Parent,
		names:    make([]string, len(f.names)),
		bindings: make(map[string]*Value, len(f.bindings)),
	}
	copy(x.names, f.names)
	for k, v := range f.bindings {
		x.bindings[k] = v.Copy()
	}
	return x
}

// drops every binding of this frame, the parent is left alone
func (f *Frame) Clear() {
	f.names = nil
	f.bindings = make(map[string]*Value)
}
