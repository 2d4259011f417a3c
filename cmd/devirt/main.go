package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/funvibe/devirt/internal/cases"
	"github.com/funvibe/devirt/internal/config"
	"github.com/funvibe/devirt/internal/logging"
	"github.com/funvibe/devirt/pkg/dispatch"
	"github.com/funvibe/devirt/pkg/shape"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const usage = `Usage:
  devirt run [-j N] [-v] [-watch] [file]   run a case file
  devirt classify <literal>...             print the shape of each literal
  devirt methods                           list dispatch slots
  devirt help                              show this message

Without a file, run uses the nearest devirt.yaml or devirt.yml found
walking up from the current directory.
`

// runOptions are the flags accepted by the run command.
type runOptions struct {
	path    string
	workers int
	verbose bool
	watch   bool
}

func parseRunArgs(args []string) (runOptions, error) {
	opts := runOptions{workers: config.DefaultWorkers}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-v", "--verbose":
			opts.verbose = true
		case "-watch", "--watch":
			opts.watch = true
		case "-j":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("-j needs a value")
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n <= 0 {
				return opts, fmt.Errorf("-j must be a positive integer, got %q", args[i])
			}
			opts.workers = n
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %s", arg)
			}
			if opts.path != "" {
				return opts, fmt.Errorf("only one case file may be given")
			}
			opts.path = arg
		}
	}
	return opts, nil
}

func handleHelp() bool {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}
	switch os.Args[1] {
	case "help", "-h", "-help", "--help":
		fmt.Print(usage)
		return true
	}
	return false
}

func handleMethods() bool {
	if os.Args[1] != "methods" {
		return false
	}
	for _, name := range dispatch.Slots() {
		fmt.Println(name)
	}
	return true
}

func handleClassify() bool {
	if os.Args[1] != "classify" {
		return false
	}
	if len(os.Args) == 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s classify <literal>...\n", os.Args[0])
		os.Exit(1)
	}
	for _, lit := range os.Args[2:] {
		s, err := classifyLiteral(lit)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %s\n", lit, err)
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\n", lit, s)
	}
	return true
}

// classifyLiteral reads lit as a YAML value, decodes it the way case files
// are decoded, and classifies the result.
func classifyLiteral(lit string) (shape.Shape, error) {
	var raw any
	if err := yaml.Unmarshal([]byte(lit), &raw); err != nil {
		return shape.Object, err
	}
	v, err := cases.DecodeValue(raw)
	if err != nil {
		return shape.Object, err
	}
	return shape.Classify(v), nil
}

func handleRun() bool {
	if os.Args[1] != "run" {
		return false
	}

	opts, err := parseRunArgs(os.Args[2:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		fmt.Fprint(os.Stderr, usage)
		os.Exit(1)
	}

	if opts.verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: creating logger: %s\n", err)
			os.Exit(1)
		}
		defer func() { _ = logger.Sync() }()
		logging.SetLogger(logger)
	}

	if opts.path == "" {
		found, err := cases.FindConfig(".")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
			os.Exit(1)
		}
		if found == "" {
			fmt.Fprintf(os.Stderr, "Error: no case file given and none of %s found\n",
				strings.Join(config.CaseFileNames, ", "))
			os.Exit(1)
		}
		opts.path = found
	} else if !cases.IsCaseFile(opts.path) {
		fmt.Fprintf(os.Stderr, "Error: %s: expected one of %s\n",
			opts.path, strings.Join(config.CaseFileExtensions, ", "))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p := newPrinter(os.Stdout)
	passed, err := runFile(ctx, p, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}

	if !opts.watch {
		if err != nil || !passed {
			os.Exit(1)
		}
		return true
	}

	fmt.Fprintf(os.Stderr, "watching %s\n", opts.path)
	err = cases.Watch(ctx, opts.path, func() {
		fmt.Fprintln(os.Stdout)
		if _, err := runFile(ctx, p, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		}
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
	return true
}

// runFile loads and runs one case file, printing a line per case and a
// summary. It reports whether every case passed.
func runFile(ctx context.Context, p *printer, opts runOptions) (bool, error) {
	f, err := cases.LoadConfig(opts.path)
	if err != nil {
		return false, err
	}
	results, err := cases.Run(ctx, f.Cases, opts.workers)
	if err != nil {
		return false, err
	}

	failed := 0
	for _, r := range results {
		if r.Passed() {
			p.pass(r.Case.Name, cases.Format(r.Value))
			continue
		}
		failed++
		p.fail(r.Case.Name, r.Err)
	}
	p.summary(len(results), failed)
	return failed == 0, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			if os.Getenv(config.DebugEnv) == "1" {
				panic(r)
			}
			fmt.Fprintf(os.Stderr, "Internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	if handleHelp() || handleMethods() || handleClassify() || handleRun() {
		return
	}

	fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
	fmt.Fprint(os.Stderr, usage)
	os.Exit(1)
}
