// Odcat writes the contents of a file to stdout while keeping it out of the
// page cache where the filesystem allows it.
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/desertwitch/odcat/internal/configuration"
	"github.com/desertwitch/odcat/internal/directio"
	"github.com/desertwitch/odcat/internal/filesystem"
	"github.com/desertwitch/odcat/internal/schema"
	"github.com/dustin/go-humanize"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string
)

func setupSignalHandlers() {
	// A closed reader on stdout must surface as EPIPE on write.
	signal.Ignore(syscall.SIGPIPE)
}

func newHandlers(settings *configuration.Settings, withChecksum bool) *directio.Handler {
	unixHandler := &schema.Unix{}

	fsHandler := filesystem.NewHandler(unixHandler, filesystem.Settings{
		TimePrecision:    settings.TimePrecision,
		XattrInitialSize: settings.XattrInitialSize,
		XattrSizeStep:    settings.XattrSizeStep,
		XattrMaxSize:     settings.XattrMaxSize,
	})

	return directio.NewHandler(unixHandler, fsHandler, directio.Settings{
		BufferMultiplier:   settings.BufferMultiplier,
		DefaultAlignment:   settings.DefaultAlignment,
		FallbackBufferSize: settings.FallbackBufferSize,
		DropCache:          settings.DropCache,
		Checksum:           withChecksum,
	})
}

func run(opts *options, args []string, sinkFD int) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: exactly one path argument is required, got %d", ErrUsage, len(args))
	}
	path := args[0]

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{}, &configuration.OSEnv{})

	settings, err := configHandler.LoadSettings(configuration.ConfigFiles(opts.configFile)...)
	if err != nil {
		return fmt.Errorf("(odcat) %w", err)
	}

	handler := newHandlers(settings, opts.checksum)

	res, err := handler.Copy(path, sinkFD)
	if err != nil {
		return err
	}

	slog.Debug("Copy complete.",
		"path", path,
		"mode", res.Mode,
		"alignment", res.Alignment,
		"buffer", humanize.IBytes(uint64(res.BufferSize)),
		"restarted", res.Restarted,
		"bytes", res.Bytes,
		"size", humanize.IBytes(res.Bytes),
	)

	if res.Checksum != nil {
		slog.Info("Checksum of the copied bytes.",
			"path", path,
			"blake3", hex.EncodeToString(res.Checksum),
		)
	}

	return nil
}

// reportError logs err as a single diagnostic line.
func reportError(err error) {
	if errors.Is(err, ErrUsage) {
		slog.Error("Invalid invocation.",
			"err", err,
		)

		return
	}

	var opErr *directio.OpError
	if !errors.As(err, &opErr) {
		slog.Error("Failed to copy.",
			"err", err,
		)

		return
	}

	attrs := []any{
		"path", opErr.Path,
		"op", opErr.Op,
	}
	if errno, ok := opErr.Errno(); ok {
		attrs = append(attrs, "errno", int(errno))
	}
	attrs = append(attrs, "err", opErr.Err)

	slog.Error("Failed to copy.", attrs...)
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	setupLogging(os.Stderr, false)
	setupSignalHandlers()

	opts, args, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage(os.Stderr, os.Args[0])

		return
	}
	if err != nil {
		reportError(err)
		ExitCode = 1

		return
	}

	if opts.debug {
		setupLogging(os.Stderr, true)
	}

	if Version != "" {
		slog.Debug("Starting odcat.", "version", Version)
	}

	cpuProfiler := NewCPUProfiler(opts.cpuprofile)
	defer cpuProfiler.Stop()

	if err := run(opts, args, int(os.Stdout.Fd())); err != nil {
		reportError(err)
		ExitCode = 1
	}
}
