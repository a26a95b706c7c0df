// Command asttreectl exercises the asttree core (Diff, Pattern/Patch,
// Transform) against real Go source files, rendering unified diffs and
// DOT graphs of the results.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/oxhq/asttree/internal/config"
	"github.com/oxhq/asttree/internal/diagnostics"
)

func main() {
	if len(os.Args) < 2 {
		printTopUsage()
		os.Exit(2)
	}

	sub := os.Args[1]
	args := os.Args[2:]

	cfg := config.Load(".env")

	var err error
	switch sub {
	case "diff":
		err = runDiff(args, cfg)
	case "pattern":
		err = runPattern(args, cfg)
	case "transform":
		err = runTransform(args, cfg)
	case "-h", "--help", "help":
		printTopUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "asttreectl: unknown subcommand %q\n", sub)
		printTopUsage()
		os.Exit(2)
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printTopUsage() {
	fmt.Fprintln(os.Stderr, "Usage: asttreectl <diff|pattern|transform> [flags] <args>")
	fmt.Fprintln(os.Stderr, "  diff      <before-file> <after-file>")
	fmt.Fprintln(os.Stderr, "  pattern   <target-file> <pattern-before-file> <pattern-after-file>")
	fmt.Fprintln(os.Stderr, "  transform <target-file>")
}

func newLogger(cfg *config.Config) *diagnostics.Logger {
	return diagnostics.New(os.Stderr, cfg.Verbose)
}

func newFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "\nUsage: asttreectl %s [flags] <args>\n\nFlags:\n", name)
		fs.PrintDefaults()
	}
	return fs
}
