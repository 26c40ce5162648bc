// Package parser turns source text into a tagged syntax tree.
//
// The grammar is
//
//	number : /-?[0-9]+/ ;
//	symbol : /[a-zA-Z0-9_+\-*\/\\=<>!&%^]+/ ;
//	sexpr  : '(' <expr>* ')' ;
//	qexpr  : '{' <expr>* '}' ;
//	expr   : <number> | <symbol> | <sexpr> | <qexpr> ;
//	lispy  : /^/ <expr>* /$/ ;
//
// Tags are '|' separated rule names ending in the kind of leaf that
// matched, e.g. "expr|number|regex", and the root is tagged ">".
package parser

import (
	"fmt"
	"strings"
)

// Node is the read side of the tree, all the reader needs.
type Node interface {
	Tag() string
	Contents() string
	Children() []Node
}

// AST is the concrete node produced by Parse.
type AST struct {
	tag      string
	contents string
	children []Node
	Line     int
	Col      int
}

func (a *AST) Tag() string      { return a.tag }
func (a *AST) Contents() string { return a.contents }
func (a *AST) Children() []Node { return a.children }

const (
	RootTag  = ">"
	regexTag = "regex"
	charTag  = "char"
)

// Error is a syntax error at a position in the input.
type Error struct {
	Filename string
	Line     int
	Col      int
	Msg      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: error: %s", e.Filename, e.Line, e.Col, e.Msg)
}

type parser struct {
	lex      *lexer
	tok      token
	filename string
}

// Parse reads the whole input as a sequence of expressions.
func Parse(filename, input string) (*AST, error) {
	p := &parser{lex: newLexer(input), filename: filename}
	if err := p.next(); err != nil {
		return nil, err
	}
	root := &AST{tag: RootTag, Line: 1, Col: 1}
	root.children = append(root.children, &AST{tag: regexTag, Line: 1, Col: 1})
	for p.tok.kind != tokEOF {
		n, err := p.expr()
		if err != nil {
			return nil, err
		}
		root.children = append(root.children, n)
	}
	root.children = append(root.children, &AST{tag: regexTag, Line: p.tok.line, Col: p.tok.col})
	return root, nil
}

func (p *parser) next() error {
	tok, err := p.lex.next()
	if err != nil {
		return p.errorf(tok, "%v", err)
	}
	p.tok = tok
	return nil
}

func (p *parser) errorf(tok token, format string, args ...any) error {
	return &Error{Filename: p.filename, Line: tok.line, Col: tok.col, Msg: fmt.Sprintf(format, args...)}
}

func (p *parser) expr() (*AST, error) {
	tok := p.tok
	switch tok.kind {
	case tokNumber:
		return p.leaf("expr|number|regex")
	case tokSymbol:
		return p.leaf("expr|symbol|regex")
	case tokOpen:
		switch tok.text {
		case "(":
			return p.list("expr|sexpr|>", ")")
		case "{":
			return p.list("expr|qexpr|>", "}")
		}
	case tokEOF:
		return nil, p.errorf(tok, "unexpected end of input")
	}
	return nil, p.errorf(tok, "unexpected '%s'", tok.text)
}

func (p *parser) leaf(tag string) (*AST, error) {
	n := &AST{tag: tag, contents: p.tok.text, Line: p.tok.line, Col: p.tok.col}
	return n, p.next()
}

// reads a bracketed list including its punctuation children
func (p *parser) list(tag, closing string) (*AST, error) {
	n := &AST{tag: tag, Line: p.tok.line, Col: p.tok.col}
	n.children = append(n.children, &AST{tag: charTag, contents: p.tok.text, Line: p.tok.line, Col: p.tok.col})
	if err := p.next(); err != nil {
		return nil, err
	}
	for {
		switch {
		case p.tok.kind == tokClose && p.tok.text == closing:
			n.children = append(n.children, &AST{tag: charTag, contents: p.tok.text, Line: p.tok.line, Col: p.tok.col})
			return n, p.next()
		case p.tok.kind == tokClose:
			return nil, p.errorf(p.tok, "expected '%s' but got '%s'", closing, p.tok.text)
		case p.tok.kind == tokEOF:
			return nil, p.errorf(p.tok, "expected '%s' but got end of input", closing)
		}
		child, err := p.expr()
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
}

// Dump renders the tree one node per line, for debugging.
func Dump(n Node) string {
	var b strings.Builder
	dump(&b, n, 0)
	return b.String()
}

func dump(b *strings.Builder, n Node, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
	b.WriteString(n.Tag())
	if c := n.Contents(); c != "" {
		fmt.Fprintf(b, " '%s'", c)
	}
	b.WriteByte('\n')
	for _, c := range n.Children() {
		dump(b, c, depth+1)
	}
}
