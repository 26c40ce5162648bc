package lisp

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func plainOutput(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestLoadFile(t *testing.T) {
	plainOutput(t)
	path := filepath.Join(t.TempDir(), "prelude.lspy")
	src := `; helpers
(def {nil} {})
(func {second l}
  {head (tail l)})
(head {})
(def {answer} (second {1 42 3}))
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	in, out := newTestInterpreter(t)
	if err := in.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if got := out.String(); got != "Error: Function 'head' passed {} for argument 0.\n" {
		t.Errorf("LoadFile printed %q", got)
	}
	if got := run(t, in, "answer"); got != "{42}" {
		t.Errorf("answer = %s", got)
	}
	if got := run(t, in, "nil"); got != "{}" {
		t.Errorf("nil = %s", got)
	}
}

func TestLoadFileErrors(t *testing.T) {
	in, _ := newTestInterpreter(t)
	if err := in.LoadFile(filepath.Join(t.TempDir(), "missing.lspy")); err == nil {
		t.Errorf("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.lspy")
	if err := os.WriteFile(path, []byte("(+ 1"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := in.LoadFile(path)
	if err == nil || !strings.Contains(err.Error(), "bad.lspy:1:5") {
		t.Errorf("got %v, want a syntax error with position", err)
	}
}

func TestEvalPrint(t *testing.T) {
	plainOutput(t)
	in, out := newTestInterpreter(t)
	lines := []string{
		"def {x} 2",
		"* x 21",
		"head {}",
		"(+ 1",
	}
	for _, l := range lines {
		in.EvalPrint("<stdin>", l)
	}
	want := "42\n" +
		"Error: Function 'head' passed {} for argument 0.\n" +
		"<stdin>:1:5: error: expected ')' but got end of input\n"
	if got := out.String(); got != want {
		t.Errorf("output\n got: %q\nwant: %q", got, want)
	}
}
