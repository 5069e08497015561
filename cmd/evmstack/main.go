// Command evmstack replays a sequence of operand stack operations against a
// fresh stack and prints the resulting contents, top first.
//
// Usage:
//
//	evmstack [flags] OP...
//
// Operations:
//
//	push:<hex>          push a word
//	pushsize:<decimal>  push an unsigned integer
//	pushaddr:<hex>      push a 20-byte address
//	pop                 pop the top word
//	swap:<distance>     swap the top with the word distance below it
//	peek:<index>        print the word at index (0 = bottom)
//
// Flags:
//
//	--verbosity  Log level 0-5 (default: 3)
//	--trace      Log every push at debug level
//	--metrics    Log push count and peak depth on exit
//	--version    Print version and exit
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/eth2030/evmstack/core/vm"
	"github.com/eth2030/evmstack/log"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the testable entry point. It returns the process exit code: 0 on
// success, 1 on a stack fault, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, exit, code := parseFlags(args, stdout, stderr)
	if exit {
		return code
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "Invalid configuration: %v\n", err)
		return 2
	}

	logger := log.NewWriter(stderr, log.VerbosityToLevel(cfg.Verbosity)).Module("evmstack")

	ops, err := parseScript(cfg.Ops)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	var tracers []vm.StackTracer
	if cfg.Trace {
		tracers = append(tracers, vm.NewLogTracer(logger.Module("stack")))
	}
	var mt *vm.MetricsTracer
	if cfg.Metrics {
		mt = vm.NewMetricsTracer()
		tracers = append(tracers, mt)
	}

	st := vm.NewStack(vm.WithTracer(vm.MultiTracer(tracers...)))
	runErr := execute(st, ops, stdout)

	if mt != nil {
		logger.Info("stack metrics", "pushes", mt.Pushes.Value(), "peak_depth", mt.PeakDepth.Value())
	}

	if runErr != nil {
		var se *vm.StackError
		if errors.As(runErr, &se) {
			fmt.Fprintf(stderr, "Execution halted: %v\n", runErr)
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", runErr)
		return 2
	}
	for _, w := range st.SnapshotTopToBottom() {
		fmt.Fprintln(stdout, w.Hex())
	}
	return 0
}
