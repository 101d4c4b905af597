package main

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/desertwitch/odcat/internal/configuration"
)

// ErrUsage occurs when the program is called with unknown flags or not with
// exactly one path.
var ErrUsage = errors.New("invalid usage")

type options struct {
	configFile string
	checksum   bool
	debug      bool
	cpuprofile string
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("odcat", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.configFile, "config", "", "read settings from this file (default "+configuration.DefaultConfigFile+" if present)")
	fs.BoolVar(&opts.checksum, "checksum", false, "log the BLAKE3 checksum of the copied bytes")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	fs.StringVar(&opts.cpuprofile, "cpuprofile", "", "write cpu profile to file")

	return fs
}

// parseFlags parses args (without the program name). Parse failures are never
// printed or exited upon here; they are returned wrapping [ErrUsage], except
// for a help request, which returns [flag.ErrHelp].
func parseFlags(args []string) (*options, []string, error) {
	opts := &options{}
	fs := newFlagSet(opts)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}

		return nil, nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}

	return opts, fs.Args(), nil
}

func printUsage(w io.Writer, program string) {
	fs := newFlagSet(&options{})
	fs.SetOutput(w)

	fmt.Fprintf(w, "Usage: %s [flags] [--] <path>\n", program)
	fs.PrintDefaults()
}
