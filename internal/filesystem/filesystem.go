// Package filesystem provides the syscall-binding collaborator layer that is
// used next to the copier: page cache eviction hints, timestamps and metadata
// of filesystem entries without following symbolic links, and extended
// attributes (including their serialization into a single blob).
//
// All time values returned or compared by the [Handler] are truncated to its
// configured precision, so that timestamps set on one platform compare equal
// when read back on another platform with a coarser primitive.
package filesystem

import (
	"time"

	"golang.org/x/sys/unix"
)

type unixProvider interface {
	FadviseDontNeed(fd int, offset int64, length int64) error
	Lgetxattr(path string, attr string, dest []byte) (int, error)
	Llistxattr(path string, dest []byte) (int, error)
	Lsetxattr(path string, attr string, data []byte, flags int) error
	Lstat(path string, stat *unix.Stat_t) error
	Lutimes(path string, tv []unix.Timeval) error
	UtimesNanoAt(dirfd int, path string, ts []unix.Timespec, flags int) error
}

// Settings are the tunables of a [Handler].
type Settings struct {
	// TimePrecision is the unit all timestamps are truncated to.
	// A zero or negative value disables the truncation.
	TimePrecision time.Duration

	// XattrInitialSize is the first buffer size used for retrievals.
	XattrInitialSize int

	// XattrSizeStep is the amount a retrieval buffer grows by whenever it
	// was reported as too small.
	XattrSizeStep int

	// XattrMaxSize is the buffer size after which retrievals give up.
	XattrMaxSize int
}

// DefaultSettings returns the [Settings] used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		TimePrecision:    time.Microsecond,
		XattrInitialSize: 1024,
		XattrSizeStep:    1024,
		XattrMaxSize:     64 * 1024,
	}
}

// Handler is the principal implementation for the filesystem services.
type Handler struct {
	UnixHandler unixProvider
	Settings    Settings
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(unixHandler unixProvider, settings Settings) *Handler {
	return &Handler{
		UnixHandler: unixHandler,
		Settings:    settings,
	}
}
