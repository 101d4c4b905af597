// Package directio copies a single file to an output descriptor while
// bypassing the page cache. It opens the source with the platform's uncached
// read mode where available and degrades to buffered reads, once and
// transparently, where the mode is rejected at open time or on the first read.
//
// The copy is strictly sequential and single-threaded: one aligned transfer
// buffer is in flight at any time and bytes reach the sink in source order.
package directio

import (
	"golang.org/x/sys/unix"
)

type unixProvider interface {
	Close(fd int) error
	FcntlInt(fd uintptr, cmd, arg int) (int, error)
	Fstatfs(fd int, buf *unix.Statfs_t) error
	Open(path string, mode int, perm uint32) (int, error)
	Read(fd int, p []byte) (int, error)
	Write(fd int, p []byte) (int, error)
}

type cacheProvider interface {
	AdviseDropCache(fd int, offset int64, length int64) error
}

// Mode is the read mode of a [Source].
type Mode int

const (
	// ModeBuffered reads through the page cache.
	ModeBuffered Mode = iota

	// ModeDirect reads bypassing the page cache.
	ModeDirect
)

// String returns a human-readable representation of the [Mode].
func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeBuffered:
		return "buffered"
	default:
		return "unknown"
	}
}

// Settings are the tunables of a [Handler].
type Settings struct {
	// BufferMultiplier is the number of alignment units per transfer.
	BufferMultiplier int

	// DefaultAlignment is used when the block size cannot be established or
	// the source is read buffered.
	DefaultAlignment int

	// FallbackBufferSize accompanies DefaultAlignment.
	FallbackBufferSize int

	// DropCache evicts every transferred range of a buffered source from the
	// page cache after it was written to the sink.
	DropCache bool

	// Checksum computes a BLAKE3 checksum over all emitted bytes.
	Checksum bool
}

// Result describes a completed copy.
type Result struct {
	Bytes      uint64
	Mode       Mode
	Alignment  int
	BufferSize int
	Restarted  bool
	Checksum   []byte
}

// Handler is the principal implementation for the direct I/O copier.
type Handler struct {
	UnixHandler  unixProvider
	CacheHandler cacheProvider
	Settings     Settings
}

// NewHandler returns a pointer to a new direct I/O [Handler]. The cacheHandler
// may be nil, in which case no page cache eviction is attempted.
func NewHandler(unixHandler unixProvider, cacheHandler cacheProvider, settings Settings) *Handler {
	return &Handler{
		UnixHandler:  unixHandler,
		CacheHandler: cacheHandler,
		Settings:     settings,
	}
}
