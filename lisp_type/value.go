package lisptype

import "fmt"

// this is the type enum for values
type ValueType int

// these are all the valid types for a value
const (
	Number   ValueType = iota // an int64
	Error                     // a propagating failure, holds its message
	Symbol                    // an identifier waiting to be looked up
	Function                  // a *Builtin or a *Lambda
	SExpr                     // an expression to evaluate, lives in Cells
	QExpr                     // a quoted list, lives in Cells
	None                      // returned by definitions and output builtins
)

// BuiltinFunc is the native side of a builtin.
// it owns args and may reuse or discard it.
type BuiltinFunc func(frame *Frame, args *Value) *Value

// a native operation, identified by its name
type Builtin struct {
	Name    string
	Fn      BuiltinFunc
	Nullary bool // takes no operands, so (name) calls it
}

// a user defined function
type Lambda struct {
	Formals Formals // what is still left to bind
	Body    *Value  // a QExpr, evaluated as an SExpr
	Env     *Frame  // bindings made so far, parent is the defining scope
}

// this is a value struct.
// lists keep their elements in Cells, everything
// else keeps its payload in Value
type Value struct {
	Type  ValueType // the type of this value
	Value any       // the payload (if any)
	Cells []*Value  // elements of an SExpr or QExpr
}

func NewNumber(n int64) *Value {
	return &Value{Type: Number, Value: n}
}

func NewError(format string, args ...any) *Value {
	return &Value{Type: Error, Value: fmt.Sprintf(format, args...)}
}

func NewSymbol(s string) *Value {
	return &Value{Type: Symbol, Value: s}
}

func NewBuiltin(b *Builtin) *Value {
	return &Value{Type: Function, Value: b}
}

// creates a lambda whose private scope hangs off parent
func NewLambda(formals Formals, body *Value, parent *Frame) *Value {
	return &Value{Type: Function, Value: &Lambda{
		Formals: formals,
		Body:    body,
		Env:     NewFrame(parent),
	}}
}

func NewSExpr(cells ...*Value) *Value {
	return &Value{Type: SExpr, Cells: cells}
}

func NewQExpr(cells ...*Value) *Value {
	return &Value{Type: QExpr, Cells: cells}
}

func NewNone() *Value {
	return &Value{Type: None}
}

func (v *Value) Num() int64 {
	return v.Value.(int64)
}

// the name of a symbol or builtin, or the message of an error
func (v *Value) Str() string {
	if b, ok := v.Value.(*Builtin); ok {
		return b.Name
	}
	return v.Value.(string)
}

// returns nil when v is not a builtin
func (v *Value) Builtin() *Builtin {
	b, _ := v.Value.(*Builtin)
	return b
}

// returns nil when v is not a lambda
func (v *Value) Lambda() *Lambda {
	l, _ := v.Value.(*Lambda)
	return l
}

func (v *Value) IsList() bool {
	return v.Type == SExpr || v.Type == QExpr
}

func (v *Value) Len() int {
	return len(v.Cells)
}

// appends x, v takes ownership of it
func (v *Value) Add(x *Value) *Value {
	v.Cells = append(v.Cells, x)
	return v
}

// removes the i'th element and hands it to the caller
func (v *Value) Pop(i int) *Value {
	x := v.Cells[i]
	v.Cells = append(v.Cells[:i:i], v.Cells[i+1:]...)
	return x
}

// pops the i'th element and drops the rest of v
func (v *Value) Take(i int) *Value {
	x := v.Pop(i)
	v.Cells = nil
	return x
}

// moves every element of y onto the end of v
func (v *Value) Join(y *Value) *Value {
	v.Cells = append(v.Cells, y.Cells...)
	y.Cells = nil
	return v
}

// returns a deep copy of v, sharing nothing mutable with it
func (v *Value) Copy() *Value {
	x := &Value{Type: v.Type, Value: v.Value}
	switch v.Type {
	case Function:
		if l := v.Lambda(); l != nil {
			x.Value = &Lambda{
				Formals: l.Formals.Copy(),
				Body:    l.Body.Copy(),
				Env:     l.Env.Copy(),
			}
		}
	case SExpr, QExpr:
		x.Cells = make([]*Value, len(v.Cells))
		for i, c := range v.Cells {
			x.Cells[i] = c.Copy()
		}
	}
	return x
}

// returns true if 2 values are equal, checks recursively
func (v *Value) Equal(y *Value) bool {
	if v.Type != y.Type {
		return false
	}
	switch v.Type {
	case Number:
		return v.Num() == y.Num()
	case Error, Symbol:
		return v.Str() == y.Str()
	case Function:
		vb, yb := v.Builtin(), y.Builtin()
		if vb != nil || yb != nil {
			return vb != nil && yb != nil && vb.Name == yb.Name
		}
		vl, yl := v.Lambda(), y.Lambda()
		return vl.Formals.Equal(yl.Formals) && vl.Body.Equal(yl.Body)
	case SExpr, QExpr:
		if len(v.Cells) != len(y.Cells) {
			return false
		}
		for i := range v.Cells {
			if !v.Cells[i].Equal(y.Cells[i]) {
				return false
			}
		}
		return true
	case None:
		return true
	}
	return false
}

// the name used in error messages
func (t ValueType) String() string {
	switch t {
	case Number:
		return "Number"
	case Error:
		return "Error"
	case Symbol:
		return "Symbol"
	case Function:
		return "Function"
	case SExpr:
		return "S-Expression"
	case QExpr:
		return "Q-Expression"
	case None:
		return "None"
	default:
		return "Unknown"
	}
}
