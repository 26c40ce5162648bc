package lisp

import (
	"io"
	"os"

	"fortio.org/log"
	"github.com/edwingeng/deque"
	"github.com/tevino/abool/v2"

	lisptype "lispy/lisp_type"
)

// DefaultMaxDepth bounds how many lambda calls may be active at once.
const DefaultMaxDepth = 10000

// Interpreter holds the global frame and the host side of evaluation.
type Interpreter struct {
	Global   *lisptype.Frame
	Out      io.Writer      // where show and print write
	MaxDepth int            // 0 means unbounded
	Exit     func(code int) // called by the exit builtin

	interrupted *abool.AtomicBool
	depth       int
}

// NewInterpreter returns an interpreter whose global frame
// holds every builtin.
func NewInterpreter(out io.Writer) *Interpreter {
	in := &Interpreter{
		Out:         out,
		MaxDepth:    DefaultMaxDepth,
		Exit:        os.Exit,
		interrupted: abool.NewBool(false),
	}
	in.Global = in.NewTopLevelFrame()
	return in
}

// Interrupt makes the running evaluation unwind with an error.
// it is safe to call from a signal handler goroutine.
func (in *Interpreter) Interrupt() {
	in.interrupted.Set()
}

func (in *Interpreter) ClearInterrupt() {
	in.interrupted.UnSet()
}

// Eval reduces v in frame. v is consumed.
func (in *Interpreter) Eval(frame *lisptype.Frame, v *lisptype.Value) *lisptype.Value {
	switch v.Type {
	// symbols evaluate to a copy of their binding
	case lisptype.Symbol:
		return frame.Get(v.Str())
	case lisptype.SExpr:
		return in.evalSExpr(frame, v)
	// everything else is already reduced
	default:
		return v
	}
}

func (in *Interpreter) evalSExpr(frame *lisptype.Frame, v *lisptype.Value) *lisptype.Value {
	if in.interrupted.IsSet() {
		return lisptype.NewError("interrupted")
	}

	// evaluate the elements in order, stopping at the first error
	for i, c := range v.Cells {
		v.Cells[i] = in.Eval(frame, c)
		if v.Cells[i].Type == lisptype.Error {
			return v.Take(i)
		}
	}

	switch v.Len() {
	case 0:
		return v
	case 1:
		if b := v.Cells[0].Builtin(); b != nil && b.Nullary {
			fn := v.Pop(0)
			return in.Apply(frame, fn, v)
		}
		return v.Take(0)
	}

	fn := v.Pop(0)
	if fn.Type != lisptype.Function {
		return lisptype.NewError("S-Expression starts with incorrect type. Got %v, Expected %v.",
			fn.Type, lisptype.Function)
	}
	return in.Apply(frame, fn, v)
}

// Apply calls fn with args, an SExpr of evaluated arguments.
// both are consumed.
func (in *Interpreter) Apply(frame *lisptype.Frame, fn, args *lisptype.Value) *lisptype.Value {
	if b := fn.Builtin(); b != nil {
		return b.Fn(frame, args)
	}

	l := fn.Lambda()
	given, total := args.Len(), l.Formals.Remaining()

	pending := deque.NewDeque()
	for _, a := range args.Cells {
		pending.PushBack(a)
	}
	args.Cells = nil

	for !pending.Empty() {
		if l.Formals.Remaining() == 0 {
			if !l.Formals.HasVariadic {
				return lisptype.NewError("Function passed too many arguments. Got %d, Expected %d.", given, total)
			}
			rest := lisptype.NewQExpr()
			for !pending.Empty() {
				rest.Add(pending.PopFront().(*lisptype.Value))
			}
			in.bindVariadic(l, rest)
			break
		}
		name := l.Formals.Fixed[0]
		l.Formals.Fixed = l.Formals.Fixed[1:]
		l.Env.Put(name, pending.PopFront().(*lisptype.Value))
	}

	// no arguments were left for the variadic formal
	if l.Formals.Remaining() == 0 && l.Formals.HasVariadic {
		in.bindVariadic(l, lisptype.NewQExpr())
	}

	if l.Formals.Remaining() > 0 {
		log.LogVf("apply: partial application, %d of %d formals left", l.Formals.Remaining(), total)
		return fn
	}

	if in.MaxDepth > 0 && in.depth >= in.MaxDepth {
		return lisptype.NewError("maximum call depth exceeded")
	}
	in.depth++
	defer func() { in.depth-- }()

	l.Env.Parent = frame
	body := l.Body.Copy()
	body.Type = lisptype.SExpr
	log.LogVf("apply: lambda with %d args at depth %d", given, in.depth)
	return in.Eval(l.Env, body)
}

func (in *Interpreter) bindVariadic(l *lisptype.Lambda, rest *lisptype.Value) {
	l.Env.Put(l.Formals.Variadic, rest)
	l.Formals.Variadic = ""
	l.Formals.HasVariadic = false
}

// EvalString reads src as a single expression and evaluates it
// in the global frame. only syntax errors are returned as errors.
func (in *Interpreter) EvalString(filename, src string) (*lisptype.Value, error) {
	v, err := ReadString(filename, src)
	if err != nil {
		return nil, err
	}
	return in.Eval(in.Global, v), nil
}
