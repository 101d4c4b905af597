package main

import (
	"log/slog"
	"os"
	"runtime/pprof"
)

// CPUProfiler writes a CPU profile of the program to a file.
type CPUProfiler struct {
	file *os.File
}

// NewCPUProfiler starts profiling into the file at path. An empty path returns
// a [CPUProfiler] that does nothing. Failures to start are logged, but never
// fatal.
func NewCPUProfiler(path string) *CPUProfiler {
	cprof := &CPUProfiler{}

	if path == "" {
		return cprof
	}

	f, err := os.Create(path)
	if err != nil {
		slog.Error("Could not create cpu profile", "err", err)

		return cprof
	}

	if err := pprof.StartCPUProfile(f); err != nil {
		slog.Error("Could not start cpu profile", "err", err)
		f.Close()

		return cprof
	}

	cprof.file = f

	return cprof
}

// Stop ends the profiling and closes the profile file.
func (cprof *CPUProfiler) Stop() {
	if cprof.file == nil {
		return
	}

	pprof.StopCPUProfile()

	if err := cprof.file.Close(); err != nil {
		slog.Error("Could not close cpu profile", "err", err)
	}
	cprof.file = nil
}
