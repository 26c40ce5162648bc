package lisp

import (
	lisptype "lispy/lisp_type"
)

func boolNumber(b bool) *lisptype.Value {
	if b {
		return lisptype.NewNumber(1)
	}
	return lisptype.NewNumber(0)
}

// integer power, negative exponents truncate toward zero
func ipow(base, exp int64) int64 {
	if exp < 0 {
		switch base {
		case 1:
			return 1
		case -1:
			if exp%2 == 0 {
				return 1
			}
			return -1
		default:
			return 0
		}
	}
	result := int64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result *= base
		}
		base *= base
		exp >>= 1
	}
	return result
}

// folds op left to right over number arguments.
// a lone argument to - is negated.
func builtinOp(op string) nativeFunc {
	return func(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
		if err := checkAtLeast(op, args, 1); err != nil {
			return err
		}
		for i := range args.Cells {
			if err := checkType(op, args, i, lisptype.Number); err != nil {
				return err
			}
		}

		x := args.Pop(0).Num()
		if op == "-" && args.Len() == 0 {
			return lisptype.NewNumber(-x)
		}

		for args.Len() > 0 {
			y := args.Pop(0).Num()
			switch op {
			case "+":
				x += y
			case "-":
				x -= y
			case "*":
				x *= y
			case "/":
				if y == 0 {
					return lisptype.NewError("Division by zero!")
				}
				x /= y
			case "%":
				if y == 0 {
					return lisptype.NewError("Division by zero!")
				}
				x %= y
			case "^":
				if x == 0 && y < 0 {
					return lisptype.NewError("Division by zero!")
				}
				x = ipow(x, y)
			case "min":
				x = min(x, y)
			case "max":
				x = max(x, y)
			}
		}
		return lisptype.NewNumber(x)
	}
}

// compares exactly two numbers
func builtinOrd(op string) nativeFunc {
	return func(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
		if err := check(
			func() *lisptype.Value { return checkCount(op, args, 2) },
			func() *lisptype.Value { return checkType(op, args, 0, lisptype.Number) },
			func() *lisptype.Value { return checkType(op, args, 1, lisptype.Number) },
		); err != nil {
			return err
		}
		x, y := args.Cells[0].Num(), args.Cells[1].Num()
		switch op {
		case "<":
			return boolNumber(x < y)
		case ">":
			return boolNumber(x > y)
		case "<=":
			return boolNumber(x <= y)
		default:
			return boolNumber(x >= y)
		}
	}
}

// structural equality between any two values
func builtinCmp(op string) nativeFunc {
	return func(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
		if err := checkCount(op, args, 2); err != nil {
			return err
		}
		eq := args.Cells[0].Equal(args.Cells[1])
		if op == "!=" {
			eq = !eq
		}
		return boolNumber(eq)
	}
}
