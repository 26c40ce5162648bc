package lisp

import (
	"strconv"
	"strings"

	lisptype "lispy/lisp_type"
)

// CursorUp is what None prints as. It moves the terminal cursor back
// over the line the input was echoed on, so definitions print nothing.
const CursorUp = "\x1b[A"

// print out each element in the list between open and close
func printList(b *strings.Builder, v *lisptype.Value, open, close byte) {
	b.WriteByte(open)
	for i, c := range v.Cells {
		if i > 0 {
			b.WriteByte(' ')
		}
		printValue(b, c)
	}
	b.WriteByte(close)
}

// converts a value to a string recursively
func printValue(b *strings.Builder, v *lisptype.Value) {
	switch v.Type {
	case lisptype.Number:
		b.WriteString(strconv.FormatInt(v.Num(), 10))
	case lisptype.Error:
		b.WriteString("Error: ")
		b.WriteString(v.Str())
	case lisptype.Symbol:
		b.WriteString(v.Str())
	case lisptype.Function:
		if bi := v.Builtin(); bi != nil {
			b.WriteString(bi.Name)
			return
		}
		l := v.Lambda()
		b.WriteString("(\\ ")
		printValue(b, l.Formals.QExpr())
		b.WriteByte(' ')
		printValue(b, l.Body)
		b.WriteByte(')')
	case lisptype.SExpr:
		printList(b, v, '(', ')')
	case lisptype.QExpr:
		printList(b, v, '{', '}')
	case lisptype.None:
		b.WriteString(CursorUp)
	}
}

func Print(v *lisptype.Value) string {
	var b strings.Builder
	printValue(&b, v)
	return b.String()
}
