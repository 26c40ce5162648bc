package lisptype

import (
	"slices"
	"testing"
)

func symbols(names ...string) *Value {
	q := NewQExpr()
	for _, n := range names {
		q.Add(NewSymbol(n))
	}
	return q
}

func TestParseFormals(t *testing.T) {
	tests := []struct {
		in       []string
		fixed    []string
		variadic string
	}{
		{nil, nil, ""},
		{[]string{"a"}, []string{"a"}, ""},
		{[]string{"a", "b"}, []string{"a", "b"}, ""},
		{[]string{"&", "xs"}, nil, "xs"},
		{[]string{"x", "&", "xs"}, []string{"x"}, "xs"},
	}
	for _, tt := range tests {
		f, err := ParseFormals(symbols(tt.in...))
		if err != nil {
			t.Errorf("%v: unexpected error %s", tt.in, err.Str())
			continue
		}
		if !slices.Equal(f.Fixed, tt.fixed) || f.Variadic != tt.variadic || f.HasVariadic != (tt.variadic != "") {
			t.Errorf("%v: got %+v", tt.in, f)
		}
		if !f.QExpr().Equal(symbols(tt.in...)) {
			t.Errorf("%v: QExpr() does not round trip", tt.in)
		}
	}
}

func TestParseFormalsErrors(t *testing.T) {
	tests := []struct {
		in   *Value
		want string
	}{
		{symbols("&"), "Function format invalid. Symbol '&' not followed by single symbol."},
		{symbols("x", "&"), "Function format invalid. Symbol '&' not followed by single symbol."},
		{symbols("&", "a", "b"), "Function format invalid. Symbol '&' not followed by single symbol."},
		{symbols("&", "&"), "Function format invalid. Symbol '&' not followed by single symbol."},
		{symbols("a", "a"), "Duplicate formal 'a'."},
		{symbols("a", "&", "a"), "Duplicate formal 'a'."},
		{NewQExpr(NewNumber(1)), "Cannot define non-symbol. Got Number, Expected Symbol."},
	}
	for _, tt := range tests {
		_, err := ParseFormals(tt.in)
		if err == nil {
			t.Errorf("%v: expected an error", tt.in.Cells)
			continue
		}
		if err.Type != Error || err.Str() != tt.want {
			t.Errorf("got %q, want %q", err.Str(), tt.want)
		}
	}
}
