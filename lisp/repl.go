package lisp

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"fortio.org/log"
	"github.com/fatih/color"
	"github.com/peterh/liner"

	lisptype "lispy/lisp_type"
	"lispy/parser"
)

var errText = color.New(color.FgRed).SprintFunc()

// LoadFile evaluates each top level expression of the file in order,
// printing the ones that fail and carrying on.
func (in *Interpreter) LoadFile(fileName string) error {
	bytes, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("load %s: %w", fileName, err)
	}
	root, err := parser.Parse(fileName, string(bytes))
	if err != nil {
		return err
	}
	exprs := Read(root)
	log.LogVf("load %s: %d expressions", fileName, exprs.Len())
	for exprs.Len() > 0 {
		in.ClearInterrupt()
		if x := in.Eval(in.Global, exprs.Pop(0)); x.Type == lisptype.Error {
			fmt.Fprintln(in.Out, errText(Print(x)))
		}
	}
	return nil
}

// EvalPrint evaluates one line of input and writes the result to Out.
// None only moves the cursor, so it is dropped when Out is not a terminal.
func (in *Interpreter) EvalPrint(filename, line string) {
	in.ClearInterrupt()
	v, err := in.EvalString(filename, line)
	if err != nil {
		fmt.Fprintln(in.Out, errText(err.Error()))
		return
	}
	switch v.Type {
	case lisptype.Error:
		fmt.Fprintln(in.Out, errText(Print(v)))
	case lisptype.None:
		if !color.NoColor {
			fmt.Fprintln(in.Out, Print(v))
		}
	default:
		fmt.Fprintln(in.Out, Print(v))
	}
}

// ReplOptions controls the interactive session.
type ReplOptions struct {
	Prompt      string
	Banner      string
	HistoryFile string // empty disables history
}

func (in *Interpreter) saveHistory(ln *liner.State, path string) {
	if path == "" {
		return
	}
	f, err := os.Create(path)
	if err != nil {
		log.Warnf("history: %v", err)
		return
	}
	defer f.Close()
	if _, err := ln.WriteHistory(f); err != nil {
		log.Warnf("history: %v", err)
	}
}

// Repl reads lines until end of input or exit, printing each result.
func (in *Interpreter) Repl(opts ReplOptions) error {
	if opts.Banner != "" {
		fmt.Fprintln(in.Out, opts.Banner)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if opts.HistoryFile != "" {
		if f, err := os.Open(opts.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer in.saveHistory(ln, opts.HistoryFile)

	// exit leaves the process from inside a builtin, so the
	// terminal and history have to be dealt with first
	exit := in.Exit
	in.Exit = func(code int) {
		in.saveHistory(ln, opts.HistoryFile)
		ln.Close()
		exit(code)
	}
	defer func() { in.Exit = exit }()

	// ctrl+c while evaluating stops the evaluation, not the session
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt)
	defer func() {
		signal.Stop(sigc)
		close(sigc)
	}()
	go func() {
		for range sigc {
			in.Interrupt()
		}
	}()

	for {
		line, err := ln.Prompt(opts.Prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			continue
		case errors.Is(err, io.EOF):
			fmt.Fprintln(in.Out)
			return nil
		case err != nil:
			return fmt.Errorf("repl: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		in.EvalPrint("<stdin>", line)
	}
}
