package main

import (
	"fmt"
	"os"
	"strconv"

	"fortio.org/log"
	"git.sr.ht/~sircmpwn/getopt"

	"lispy/lisp"
	lisptype "lispy/lisp_type"
)

const usage = `usage: lispy [-hqv] [-c config] [-d depth] [-e expr] [file...]

  -c config  read settings from config instead of ~/.lispy.yaml
  -d depth   limit active function calls, 0 for no limit
  -e expr    evaluate expr, print the result and exit
  -h         show this help
  -q         only log warnings and errors, no banner
  -v         verbose logging

With files, each one is loaded in order and lispy exits.
Without, an interactive session is started.
`

type options struct {
	configPath string
	required   bool
	depth      int
	hasDepth   bool
	expr       string
	hasExpr    bool
	help       bool
	quiet      bool
	verbose    bool
	files      []string
}

func parseArgs(args []string) (options, error) {
	o := options{configPath: defaultConfigPath()}
	opts, optind, err := getopt.Getopts(args, "c:d:e:hqv")
	if err != nil {
		return o, err
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			o.configPath = opt.Value
			o.required = true
		case 'd':
			n, err := strconv.Atoi(opt.Value)
			if err != nil || n < 0 {
				return o, fmt.Errorf("invalid -d parameter %q", opt.Value)
			}
			o.depth, o.hasDepth = n, true
		case 'e':
			o.expr, o.hasExpr = opt.Value, true
		case 'h':
			o.help = true
		case 'q':
			o.quiet = true
		case 'v':
			o.verbose = true
		}
	}
	o.files = args[optind:]
	return o, nil
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	o, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lispy: %v\n%s", err, usage)
		return 2
	}
	if o.help {
		fmt.Print(usage)
		return 0
	}

	cfg, err := LoadConfig(o.configPath, o.required)
	if err != nil {
		log.Errf("%v", err)
		return 1
	}
	level, _ := parseLevel(cfg.LogLevel)
	switch {
	case o.verbose:
		level = log.Verbose
	case o.quiet:
		level = log.Warning
		cfg.Banner = ""
	}
	log.SetLogLevel(level)
	if o.hasDepth {
		cfg.MaxDepth = o.depth
	}

	in := lisp.NewInterpreter(os.Stdout)
	in.MaxDepth = cfg.MaxDepth

	for _, f := range cfg.Prelude {
		if err := in.LoadFile(f); err != nil {
			log.Errf("prelude: %v", err)
			return 1
		}
	}

	if o.hasExpr {
		v, err := in.EvalString("<expr>", o.expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		if v.Type != lisptype.None {
			fmt.Println(lisp.Print(v))
		}
		if v.Type == lisptype.Error {
			return 1
		}
		return 0
	}

	if len(o.files) > 0 {
		for _, f := range o.files {
			if err := in.LoadFile(f); err != nil {
				log.Errf("%v", err)
				return 1
			}
		}
		return 0
	}

	if err := in.Repl(lisp.ReplOptions{
		Prompt:      cfg.Prompt,
		Banner:      cfg.Banner,
		HistoryFile: cfg.HistoryFile,
	}); err != nil {
		log.Errf("%v", err)
		return 1
	}
	return 0
}
