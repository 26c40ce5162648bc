package lisp

import (
	"strconv"
	"strings"

	"fortio.org/log"

	lisptype "lispy/lisp_type"
	"lispy/parser"
)

// reads a number in, anything out of int64 range is an error value
func readNumber(n parser.Node) *lisptype.Value {
	x, err := strconv.ParseInt(n.Contents(), 10, 64)
	if err != nil {
		log.Debugf("read: bad number %q: %v", n.Contents(), err)
		return lisptype.NewError("invalid number")
	}
	return lisptype.NewNumber(x)
}

// brackets and the start/end markers carry no value
func isPunctuation(n parser.Node) bool {
	switch n.Contents() {
	case "(", ")", "{", "}":
		return true
	}
	return n.Tag() == "regex"
}

// Read converts a syntax tree into a value.
// the root and every sexpr become SExprs, qexprs become QExprs.
func Read(n parser.Node) *lisptype.Value {
	tag := n.Tag()
	if strings.Contains(tag, "number") {
		return readNumber(n)
	}
	if strings.Contains(tag, "symbol") {
		return lisptype.NewSymbol(n.Contents())
	}

	var x *lisptype.Value
	switch {
	case tag == parser.RootTag, strings.Contains(tag, "sexpr"):
		x = lisptype.NewSExpr()
	case strings.Contains(tag, "qexpr"):
		x = lisptype.NewQExpr()
	default:
		return lisptype.NewError("unknown syntax node '%s'", tag)
	}
	for _, child := range n.Children() {
		if isPunctuation(child) {
			continue
		}
		x.Add(Read(child))
	}
	return x
}

// ReadString parses and reads src as one SExpr
func ReadString(filename, src string) (*lisptype.Value, error) {
	root, err := parser.Parse(filename, src)
	if err != nil {
		return nil, err
	}
	return Read(root), nil
}
