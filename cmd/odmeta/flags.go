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
	timesFrom  string
	xattrsFrom string
	debug      bool
}

func newFlagSet(opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet("odmeta", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&opts.configFile, "config", "", "read settings from this file (default "+configuration.DefaultConfigFile+" if present)")
	fs.StringVar(&opts.timesFrom, "times-from", "", "copy access and modification times from this entry")
	fs.StringVar(&opts.xattrsFrom, "xattrs-from", "", "copy extended attributes from this entry")
	fs.BoolVar(&opts.debug, "debug", false, "enable debug logging")

	return fs
}

// parseFlags parses args (without the program name) and requires exactly one
// path. Failures wrap [ErrUsage], a help request returns [flag.ErrHelp].
func parseFlags(args []string) (*options, string, error) {
	opts := &options{}
	fs := newFlagSet(opts)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, "", err
		}

		return nil, "", fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if fs.NArg() != 1 {
		return nil, "", fmt.Errorf("%w: exactly one path argument is required, got %d", ErrUsage, fs.NArg())
	}

	return opts, fs.Arg(0), nil
}

func printUsage(w io.Writer, program string) {
	fs := newFlagSet(&options{})
	fs.SetOutput(w)

	fmt.Fprintf(w, "Usage: %s [flags] [--] <path>\n", program)
	fs.PrintDefaults()
}
