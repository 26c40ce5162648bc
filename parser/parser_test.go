package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParseTags(t *testing.T) {
	root, err := Parse("<test>", "+ 1 (- 2) {x -3}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `>
  regex
  expr|symbol|regex '+'
  expr|number|regex '1'
  expr|sexpr|>
    char '('
    expr|symbol|regex '-'
    expr|number|regex '2'
    char ')'
  expr|qexpr|>
    char '{'
    expr|symbol|regex 'x'
    expr|number|regex '-3'
    char '}'
  regex
`
	if got := Dump(root); got != want {
		t.Errorf("Dump mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestParseSymbols(t *testing.T) {
	tests := map[string]string{
		"-":      "expr|symbol|regex",
		"\\":     "expr|symbol|regex",
		"<=":     "expr|symbol|regex",
		"&":      "expr|symbol|regex",
		"-12":    "expr|number|regex",
		"007":    "expr|number|regex",
		"1a":     "expr|symbol|regex",
		"x-1":    "expr|symbol|regex",
		"head":   "expr|symbol|regex",
		"a_b!":   "expr|symbol|regex",
		"--1":    "expr|symbol|regex",
		"%":      "expr|symbol|regex",
		"^":      "expr|symbol|regex",
		"!=":     "expr|symbol|regex",
		"len":    "expr|symbol|regex",
		"999999": "expr|number|regex",
	}
	for src, tag := range tests {
		root, err := Parse("<test>", src)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", src, err)
			continue
		}
		kids := root.Children()
		if len(kids) != 3 {
			t.Errorf("%q: got %d root children, want 3", src, len(kids))
			continue
		}
		if kids[1].Tag() != tag || kids[1].Contents() != src {
			t.Errorf("%q: got %s %q, want %s", src, kids[1].Tag(), kids[1].Contents(), tag)
		}
	}
}

func TestParseComments(t *testing.T) {
	root, err := Parse("<test>", "; a comment\n1 ; trailing\n2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(root.Children()); n != 4 {
		t.Fatalf("got %d children, want 4:\n%s", n, Dump(root))
	}
}

func TestParseEmpty(t *testing.T) {
	root, err := Parse("<test>", "   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := len(root.Children()); n != 2 {
		t.Fatalf("got %d children, want only the two markers", n)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		line int
		col  int
		msg  string
	}{
		{"(+ 1 2", 1, 7, "expected ')' but got end of input"},
		{"{1 2)", 1, 5, "expected '}' but got ')'"},
		{")", 1, 1, "unexpected ')'"},
		{"(+ 1\n  $)", 2, 3, "unexpected character '$'"},
		{"(len {λ})", 1, 7, "unexpected character 'λ'"},
	}
	for _, tt := range tests {
		_, err := Parse("<stdin>", tt.src)
		var perr *Error
		if !errors.As(err, &perr) {
			t.Errorf("%q: got %v, want *Error", tt.src, err)
			continue
		}
		if perr.Line != tt.line || perr.Col != tt.col || perr.Msg != tt.msg {
			t.Errorf("%q: got %d:%d %q, want %d:%d %q", tt.src, perr.Line, perr.Col, perr.Msg, tt.line, tt.col, tt.msg)
		}
		if !strings.HasPrefix(perr.Error(), "<stdin>:") {
			t.Errorf("%q: error %q lacks filename", tt.src, perr.Error())
		}
	}
}
