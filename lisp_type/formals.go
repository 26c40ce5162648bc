package lisptype

import (
	"slices"

	"github.com/ahrtr/gocontainer/set"
)

// VariadicMarker separates the fixed formals from the one
// that collects every remaining argument.
const VariadicMarker = "&"

// the parameter list of a lambda, resolved once when it is built
type Formals struct {
	Fixed       []string // bound one argument each, in order
	Variadic    string   // collects the rest as a QExpr
	HasVariadic bool
}

// ParseFormals checks a QExpr of symbols like {a b & rest}.
// on failure the returned value is an Error.
func ParseFormals(q *Value) (Formals, *Value) {
	var f Formals
	seen := set.New()
	for i := 0; i < len(q.Cells); i++ {
		c := q.Cells[i]
		if c.Type != Symbol {
			return Formals{}, NewError("Cannot define non-symbol. Got %v, Expected %v.", c.Type, Symbol)
		}
		name := c.Str()
		if name == VariadicMarker {
			if i != len(q.Cells)-2 || q.Cells[i+1].Type != Symbol || q.Cells[i+1].Str() == VariadicMarker {
				return Formals{}, NewError("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			name = q.Cells[i+1].Str()
			if seen.Contains(name) {
				return Formals{}, NewError("Duplicate formal '%s'.", name)
			}
			f.Variadic = name
			f.HasVariadic = true
			break
		}
		if seen.Contains(name) {
			return Formals{}, NewError("Duplicate formal '%s'.", name)
		}
		seen.Add(name)
		f.Fixed = append(f.Fixed, name)
	}
	return f, nil
}

// the number of arguments still needed before the body can run
func (f Formals) Remaining() int {
	return len(f.Fixed)
}

func (f Formals) Copy() Formals {
	return Formals{
		Fixed:       slices.Clone(f.Fixed),
		Variadic:    f.Variadic,
		HasVariadic: f.HasVariadic,
	}
}

func (f Formals) Equal(g Formals) bool {
	return slices.Equal(f.Fixed, g.Fixed) &&
		f.HasVariadic == g.HasVariadic &&
		f.Variadic == g.Variadic
}

// turns the formals back into the QExpr they were written as
func (f Formals) QExpr() *Value {
	q := NewQExpr()
	for _, name := range f.Fixed {
		q.Add(NewSymbol(name))
	}
	if f.HasVariadic {
		q.Add(NewSymbol(VariadicMarker))
		q.Add(NewSymbol(f.Variadic))
	}
	return q
}
