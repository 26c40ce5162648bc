package parser

import (
	"fmt"
	"unicode/utf8"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNumber
	tokSymbol
	tokOpen  // ( or {
	tokClose // ) or }
)

type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func isSymbolChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '_', '+', '-', '*', '/', '\\', '=', '<', '>', '!', '&', '%', '^':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func (l *lexer) advance() {
	if l.src[l.pos] == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	l.pos++
}

// skips white space and ; comments
func (l *lexer) skip() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			l.advance()
		case c == ';':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

func (l *lexer) next() (token, error) {
	l.skip()
	tok := token{line: l.line, col: l.col}
	if l.pos >= len(l.src) {
		tok.kind = tokEOF
		return tok, nil
	}
	c := l.src[l.pos]
	switch c {
	case '(', '{':
		tok.kind, tok.text = tokOpen, string(c)
		l.advance()
		return tok, nil
	case ')', '}':
		tok.kind, tok.text = tokClose, string(c)
		l.advance()
		return tok, nil
	}
	if !isSymbolChar(c) {
		r, _ := utf8.DecodeRuneInString(l.src[l.pos:])
		tok.text = string(r)
		return tok, fmt.Errorf("unexpected character '%c'", r)
	}
	start := l.pos
	for l.pos < len(l.src) && isSymbolChar(l.src[l.pos]) {
		l.advance()
	}
	tok.text = l.src[start:l.pos]
	tok.kind = tokSymbol
	if isNumber(tok.text) {
		tok.kind = tokNumber
	}
	return tok, nil
}

// matches -?[0-9]+ over the whole word
func isNumber(s string) bool {
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}
	return true
}
