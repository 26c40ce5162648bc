package lisp

import (
	"fmt"
	"strings"

	"fortio.org/log"

	lisptype "lispy/lisp_type"
)

// the native side of a builtin, with access to the interpreter
type nativeFunc func(in *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value

type builtinDef struct {
	name    string
	nullary bool
	fn      nativeFunc
}

// every builtin, bound into each new top level frame
var builtinDefs = []builtinDef{
	// list functions
	{name: "list", fn: builtinList},
	{name: "head", fn: builtinHead},
	{name: "tail", fn: builtinTail},
	{name: "init", fn: builtinInit},
	{name: "eval", fn: builtinEval},
	{name: "join", fn: builtinJoin},
	{name: "cons", fn: builtinCons},
	{name: "len", fn: builtinLen},

	// definitions
	{name: "def", fn: builtinDefine},
	{name: "=", fn: builtinPut},
	{name: "\\", fn: builtinLambda},
	{name: "func", fn: builtinFunc},

	// arithmetic
	{name: "+", fn: builtinOp("+")},
	{name: "-", fn: builtinOp("-")},
	{name: "*", fn: builtinOp("*")},
	{name: "/", fn: builtinOp("/")},
	{name: "^", fn: builtinOp("^")},
	{name: "%", fn: builtinOp("%")},
	{name: "min", fn: builtinOp("min")},
	{name: "max", fn: builtinOp("max")},

	// comparison
	{name: "<", fn: builtinOrd("<")},
	{name: ">", fn: builtinOrd(">")},
	{name: "<=", fn: builtinOrd("<=")},
	{name: ">=", fn: builtinOrd(">=")},
	{name: "==", fn: builtinCmp("==")},
	{name: "!=", fn: builtinCmp("!=")},
	{name: "if", fn: builtinIf},

	// environment and host
	{name: "show", nullary: true, fn: builtinShow},
	{name: "print", fn: builtinPrint},
	{name: "exit", nullary: true, fn: builtinExit},
}

// creates a new top level frame with a binding for each builtin
func (in *Interpreter) NewTopLevelFrame() *lisptype.Frame {
	frame := lisptype.NewFrame(nil)
	for _, def := range builtinDefs {
		fn := def.fn
		frame.Put(def.name, lisptype.NewBuiltin(&lisptype.Builtin{
			Name:    def.name,
			Nullary: def.nullary,
			Fn: func(frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
				return fn(in, frame, args)
			},
		}))
	}
	return frame
}

func checkCount(name string, args *lisptype.Value, n int) *lisptype.Value {
	if args.Len() != n {
		return lisptype.NewError("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.",
			name, args.Len(), n)
	}
	return nil
}

func checkAtLeast(name string, args *lisptype.Value, n int) *lisptype.Value {
	if args.Len() < n {
		return lisptype.NewError("Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.",
			name, args.Len(), n)
	}
	return nil
}

func checkType(name string, args *lisptype.Value, i int, t lisptype.ValueType) *lisptype.Value {
	if got := args.Cells[i].Type; got != t {
		return lisptype.NewError("Function '%s' passed incorrect type for argument %d. Got %v, Expected %v.",
			name, i, got, t)
	}
	return nil
}

func checkNotEmpty(name string, args *lisptype.Value, i int) *lisptype.Value {
	if args.Cells[i].Len() == 0 {
		return lisptype.NewError("Function '%s' passed {} for argument %d.", name, i)
	}
	return nil
}

// runs the checks in order and returns the first failure
func check(errs ...func() *lisptype.Value) *lisptype.Value {
	for _, f := range errs {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

// checks for exactly one non-empty QExpr argument
func checkOneList(name string, args *lisptype.Value, nonEmpty bool) *lisptype.Value {
	return check(
		func() *lisptype.Value { return checkCount(name, args, 1) },
		func() *lisptype.Value { return checkType(name, args, 0, lisptype.QExpr) },
		func() *lisptype.Value {
			if nonEmpty {
				return checkNotEmpty(name, args, 0)
			}
			return nil
		},
	)
}

func builtinList(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	args.Type = lisptype.QExpr
	return args
}

func builtinHead(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkOneList("head", args, true); err != nil {
		return err
	}
	q := args.Take(0)
	q.Cells = q.Cells[:1:1]
	return q
}

func builtinTail(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkOneList("tail", args, true); err != nil {
		return err
	}
	q := args.Take(0)
	q.Pop(0)
	return q
}

func builtinInit(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkOneList("init", args, true); err != nil {
		return err
	}
	q := args.Take(0)
	q.Pop(q.Len() - 1)
	return q
}

func builtinEval(in *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkOneList("eval", args, false); err != nil {
		return err
	}
	x := args.Take(0)
	x.Type = lisptype.SExpr
	return in.Eval(frame, x)
}

func builtinJoin(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkAtLeast("join", args, 2); err != nil {
		return err
	}
	for i := range args.Cells {
		if err := checkType("join", args, i, lisptype.QExpr); err != nil {
			return err
		}
		if err := checkNotEmpty("join", args, i); err != nil {
			return err
		}
	}
	x := args.Pop(0)
	for args.Len() > 0 {
		x.Join(args.Pop(0))
	}
	return x
}

// the first argument may be any value
func builtinCons(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := check(
		func() *lisptype.Value { return checkCount("cons", args, 2) },
		func() *lisptype.Value { return checkType("cons", args, 1, lisptype.QExpr) },
	); err != nil {
		return err
	}
	x := args.Pop(0)
	q := args.Take(0)
	q.Cells = append([]*lisptype.Value{x}, q.Cells...)
	return q
}

func builtinLen(_ *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkOneList("len", args, false); err != nil {
		return err
	}
	return lisptype.NewNumber(int64(args.Cells[0].Len()))
}

func builtinDefine(_ *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	return builtinVar(frame, args, "def")
}

func builtinPut(_ *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	return builtinVar(frame, args, "=")
}

// binds each symbol of the first argument to the matching value,
// globally for def and in the current frame for =
func builtinVar(frame *lisptype.Frame, args *lisptype.Value, name string) *lisptype.Value {
	if err := check(
		func() *lisptype.Value { return checkAtLeast(name, args, 1) },
		func() *lisptype.Value { return checkType(name, args, 0, lisptype.QExpr) },
	); err != nil {
		return err
	}

	syms := args.Cells[0]
	for _, s := range syms.Cells {
		if s.Type != lisptype.Symbol {
			return lisptype.NewError("Function '%s' cannot define non-symbol. Got %v, Expected %v.",
				name, s.Type, lisptype.Symbol)
		}
	}
	if syms.Len() != args.Len()-1 {
		return lisptype.NewError("Function '%s' passed too many arguments for symbols. Got %d, Expected %d.",
			name, syms.Len(), args.Len()-1)
	}

	for i, s := range syms.Cells {
		log.LogVf("%s: binding %s", name, s.Str())
		if name == "def" {
			frame.Def(s.Str(), args.Cells[i+1])
		} else {
			frame.Put(s.Str(), args.Cells[i+1])
		}
	}
	return lisptype.NewNone()
}

func builtinLambda(_ *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := check(
		func() *lisptype.Value { return checkCount("\\", args, 2) },
		func() *lisptype.Value { return checkType("\\", args, 0, lisptype.QExpr) },
		func() *lisptype.Value { return checkType("\\", args, 1, lisptype.QExpr) },
	); err != nil {
		return err
	}
	formals, err := lisptype.ParseFormals(args.Cells[0])
	if err != nil {
		return err
	}
	return lisptype.NewLambda(formals, args.Take(1), frame)
}

// func {name formals...} {body} is def plus \
func builtinFunc(_ *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := check(
		func() *lisptype.Value { return checkCount("func", args, 2) },
		func() *lisptype.Value { return checkType("func", args, 0, lisptype.QExpr) },
		func() *lisptype.Value { return checkType("func", args, 1, lisptype.QExpr) },
		func() *lisptype.Value { return checkNotEmpty("func", args, 0) },
	); err != nil {
		return err
	}
	header := args.Cells[0]
	name := header.Pop(0)
	if name.Type != lisptype.Symbol {
		return lisptype.NewError("Function 'func' cannot define non-symbol. Got %v, Expected %v.",
			name.Type, lisptype.Symbol)
	}
	formals, err := lisptype.ParseFormals(header)
	if err != nil {
		return err
	}
	log.LogVf("func: defining %s", name.Str())
	frame.Def(name.Str(), lisptype.NewLambda(formals, args.Take(1), frame))
	return lisptype.NewNone()
}

func builtinIf(in *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := check(
		func() *lisptype.Value { return checkCount("if", args, 3) },
		func() *lisptype.Value { return checkType("if", args, 0, lisptype.Number) },
		func() *lisptype.Value { return checkType("if", args, 1, lisptype.QExpr) },
		func() *lisptype.Value { return checkType("if", args, 2, lisptype.QExpr) },
	); err != nil {
		return err
	}
	var branch *lisptype.Value
	if args.Cells[0].Num() != 0 {
		branch = args.Take(1)
	} else {
		branch = args.Take(2)
	}
	branch.Type = lisptype.SExpr
	return in.Eval(frame, branch)
}

// prints the names of the numbers bound in the current frame
func builtinShow(in *Interpreter, frame *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkCount("show", args, 0); err != nil {
		return err
	}
	for _, name := range frame.Names() {
		if v, ok := frame.Lookup(name); ok && v.Type == lisptype.Number {
			fmt.Fprintln(in.Out, name)
		}
	}
	return lisptype.NewNone()
}

func builtinPrint(in *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	parts := make([]string, 0, args.Len())
	for _, c := range args.Cells {
		parts = append(parts, Print(c))
	}
	fmt.Fprintln(in.Out, strings.Join(parts, " "))
	return lisptype.NewNone()
}

// tears down the global frame and leaves the process
func builtinExit(in *Interpreter, _ *lisptype.Frame, args *lisptype.Value) *lisptype.Value {
	if err := checkCount("exit", args, 0); err != nil {
		return err
	}
	log.Infof("exit requested")
	in.Global.Clear()
	in.Exit(0)
	return lisptype.NewNone()
}
