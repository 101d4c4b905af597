// Odmeta shows and copies the metadata of a filesystem entry without following
// symbolic links: its lstat fields, timestamps and extended attributes.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/odcat/internal/configuration"
	"github.com/desertwitch/odcat/internal/filesystem"
	"github.com/desertwitch/odcat/internal/schema"
	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

//nolint:gochecknoglobals
var ExitCode = 0

// ErrTimesMismatch occurs when copied timestamps do not read back equal.
var ErrTimesMismatch = errors.New("timestamps differ after setting them")

func run(w io.Writer, fsHandler *filesystem.Handler, path string, opts *options) error {
	if opts.timesFrom != "" {
		if err := copyTimes(fsHandler, opts.timesFrom, path); err != nil {
			return err
		}
	}

	if opts.xattrsFrom != "" {
		if err := copyXattrs(fsHandler, opts.xattrsFrom, path); err != nil {
			return err
		}
	}

	return printMetadata(w, fsHandler, path)
}

func copyTimes(fsHandler *filesystem.Handler, from string, to string) error {
	ref, err := fsHandler.LstatInfo(from)
	if err != nil {
		return fmt.Errorf("(odmeta-times) %w", err)
	}

	if err := fsHandler.SetLinkTimes(to, ref.Atime, ref.Mtime); err != nil {
		return fmt.Errorf("(odmeta-times) %w", err)
	}

	got, err := fsHandler.LstatInfo(to)
	if err != nil {
		return fmt.Errorf("(odmeta-times) %w", err)
	}

	if !fsHandler.TimesEqual(ref.Atime, got.Atime) || !fsHandler.TimesEqual(ref.Mtime, got.Mtime) {
		return fmt.Errorf("(odmeta-times) %w: %s", ErrTimesMismatch, to)
	}

	slog.Debug("Timestamps copied.",
		"from", from,
		"to", to,
	)

	return nil
}

func copyXattrs(fsHandler *filesystem.Handler, from string, to string) error {
	blob, err := fsHandler.ReadXattrBlob(from)
	if err != nil {
		return fmt.Errorf("(odmeta-xattrs) %w", err)
	}

	if blob == nil {
		slog.Debug("No extended attributes to copy.",
			"from", from,
		)

		return nil
	}

	if err := fsHandler.WriteXattrBlob(to, blob); err != nil {
		return fmt.Errorf("(odmeta-xattrs) %w", err)
	}

	slog.Debug("Extended attributes copied.",
		"from", from,
		"to", to,
		"blob", humanize.IBytes(uint64(len(blob))),
	)

	return nil
}

func formatTime(ts unix.Timespec) string {
	return time.Unix(ts.Unix()).UTC().Format(time.RFC3339Nano)
}

func entryType(info *filesystem.LinkInfo) string {
	switch info.Mode & unix.S_IFMT {
	case unix.S_IFREG:
		return "file"
	case unix.S_IFDIR:
		return "directory"
	case unix.S_IFLNK:
		return "symlink"
	case unix.S_IFIFO:
		return "fifo"
	case unix.S_IFSOCK:
		return "socket"
	case unix.S_IFCHR:
		return "character device"
	case unix.S_IFBLK:
		return "block device"
	default:
		return "unknown"
	}
}

func printMetadata(w io.Writer, fsHandler *filesystem.Handler, path string) error {
	info, err := fsHandler.LstatInfo(path)
	if err != nil {
		return fmt.Errorf("(odmeta-print) %w", err)
	}

	names, err := fsHandler.ListXattrNames(path)
	if err != nil && !errors.Is(err, unix.ENOTSUP) && !errors.Is(err, unix.EOPNOTSUPP) {
		return fmt.Errorf("(odmeta-print) %w", err)
	}

	fmt.Fprintf(w, "path: %s\n", path)
	fmt.Fprintf(w, "type: %s\n", entryType(info))
	fmt.Fprintf(w, "device: %d\n", info.Device)
	fmt.Fprintf(w, "inode: %d\n", info.Inode)
	fmt.Fprintf(w, "mode: %#o\n", info.Perms())
	fmt.Fprintf(w, "links: %d\n", info.Nlink)
	fmt.Fprintf(w, "uid: %d\n", info.UID)
	fmt.Fprintf(w, "gid: %d\n", info.GID)
	fmt.Fprintf(w, "rdev: %d\n", info.Rdev)
	fmt.Fprintf(w, "size: %d (%s)\n", info.Size, humanize.IBytes(uint64(max(info.Size, 0))))
	fmt.Fprintf(w, "blocksize: %d\n", info.BlockSize)
	fmt.Fprintf(w, "blocks: %d\n", info.Blocks)
	fmt.Fprintf(w, "atime: %s\n", formatTime(info.Atime))
	fmt.Fprintf(w, "mtime: %s\n", formatTime(info.Mtime))
	fmt.Fprintf(w, "ctime: %s\n", formatTime(info.Ctime))

	for _, name := range names {
		value, err := fsHandler.GetXattrValue(path, name)
		if err != nil {
			slog.Warn("Failure reading extended attribute (was skipped).",
				"path", path,
				"name", name,
				"err", err,
			)

			continue
		}
		fmt.Fprintf(w, "xattr.%s: %q\n", name, value)
	}

	return nil
}

func reportUsage(err error) {
	slog.Error("Invalid invocation.", "err", err)
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	setupLogging(os.Stderr, false)

	opts, path, err := parseFlags(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		printUsage(os.Stderr, os.Args[0])

		return
	}
	if err != nil {
		reportUsage(err)
		ExitCode = 1

		return
	}

	if opts.debug {
		setupLogging(os.Stderr, true)
	}

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{}, &configuration.OSEnv{})

	settings, err := configHandler.LoadSettings(configuration.ConfigFiles(opts.configFile)...)
	if err != nil {
		slog.Error("Failed to load settings.", "err", err)
		ExitCode = 1

		return
	}

	fsHandler := filesystem.NewHandler(&schema.Unix{}, filesystem.Settings{
		TimePrecision:    settings.TimePrecision,
		XattrInitialSize: settings.XattrInitialSize,
		XattrSizeStep:    settings.XattrSizeStep,
		XattrMaxSize:     settings.XattrMaxSize,
	})

	if err := run(os.Stdout, fsHandler, path, opts); err != nil {
		slog.Error("Failed to process metadata.",
			"path", path,
			"err", err,
		)
		ExitCode = 1
	}
}
