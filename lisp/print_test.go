package lisp

import (
	"testing"

	lisptype "lispy/lisp_type"
)

func TestPrint(t *testing.T) {
	formals, _ := lisptype.ParseFormals(lisptype.NewQExpr(
		lisptype.NewSymbol("x"), lisptype.NewSymbol("&"), lisptype.NewSymbol("xs")))
	lambda := lisptype.NewLambda(formals, lisptype.NewQExpr(lisptype.NewSymbol("xs")), nil)

	tests := []struct {
		v    *lisptype.Value
		want string
	}{
		{lisptype.NewNumber(-42), "-42"},
		{lisptype.NewError("Division by zero!"), "Error: Division by zero!"},
		{lisptype.NewSymbol("foo"), "foo"},
		{lisptype.NewBuiltin(&lisptype.Builtin{Name: "head"}), "head"},
		{lambda, `(\ {x & xs} {xs})`},
		{lisptype.NewSExpr(), "()"},
		{lisptype.NewQExpr(), "{}"},
		{lisptype.NewSExpr(lisptype.NewNumber(1), lisptype.NewQExpr(lisptype.NewNumber(2), lisptype.NewNumber(3))), "(1 {2 3})"},
		{lisptype.NewNone(), CursorUp},
	}
	for _, tt := range tests {
		if got := Print(tt.v); got != tt.want {
			t.Errorf("Print = %q, want %q", got, tt.want)
		}
	}
}
