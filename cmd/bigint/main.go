// Command bigint parses a decimal integer and prints it alongside the bits of
// its canonical two's complement representation:
//
//	$ bigint -- -128
//	-128=10000000
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calebcase/oops"
	"github.com/davecgh/go-spew/spew"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"

	"github.com/shabbyrobe/go-bigint"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

type config struct {
	DebugLevel string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	Dump       bool   `long:"dump" description:"Dump the canonical little-endian bytes to stderr"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func usage(parser *flags.Parser, w io.Writer) int {
	parser.WriteHelp(w)
	return exitUsage
}

func run(argv []string, stdout, stderr io.Writer) int {
	cfg := config{
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "bigint"
	parser.Usage = "[OPTIONS] <integer>"

	opts, nums := splitNegatives(argv)
	args, err := parser.ParseArgs(opts)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, e.Message)
			return exitOK
		}
		fmt.Fprintln(stderr, err)
		return usage(parser, stderr)
	}
	args = append(args, nums...)

	if len(args) != 1 {
		return usage(parser, stderr)
	}

	level, ok := slog.LevelFromString(cfg.DebugLevel)
	if !ok {
		fmt.Fprintf(stderr, "unknown debug level %q\n", cfg.DebugLevel)
		return usage(parser, stderr)
	}
	log := slog.NewBackend(stderr).Logger("BINT")
	log.SetLevel(level)

	v, err := parse(log, args[0])
	if err != nil {
		log.Errorf("%v", err)
		return exitFail
	}

	if cfg.Dump {
		spew.Fdump(stderr, v.Bytes())
	}
	fmt.Fprintf(stdout, "%s=%s\n", v, v.BinaryString())
	return exitOK
}

func parse(log slog.Logger, s string) (bigint.Int, error) {
	log.Debugf("parsing %q", s)
	v, err := bigint.IntFromString(s)
	if err != nil {
		return v, oops.Trace(err)
	}
	log.Debugf("parsed %q into %d bytes", s, v.Size())
	return v, nil
}

// splitNegatives separates negative integer literals from the rest of argv
// so they are not mistaken for short options. Everything after "--" is left
// for the parser.
func splitNegatives(argv []string) (opts, nums []string) {
	for i, a := range argv {
		if a == "--" {
			return append(opts, argv[i:]...), nums
		}
		if len(a) > 1 && a[0] == '-' && a[1] >= '0' && a[1] <= '9' {
			nums = append(nums, a)
			continue
		}
		opts = append(opts, a)
	}
	return opts, nums
}
