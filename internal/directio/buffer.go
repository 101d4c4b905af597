package directio

import (
	"errors"
	"fmt"
	"log/slog"
	"unsafe"

	"golang.org/x/sys/unix"
)

// maxBufferSize is the largest transfer buffer that will be allocated.
const maxBufferSize = 1 << 30

// Buffer is a transfer buffer whose first byte sits on an address that is a
// multiple of its alignment and whose length is a multiple of it as well.
type Buffer struct {
	data      []byte
	alignment int
}

// NewAlignedBuffer allocates a [Buffer] of size bytes aligned to alignment.
// The alignment need not be a power of two. A request that cannot be met
// exactly is an error; it is never relaxed to a smaller size or alignment.
func NewAlignedBuffer(alignment int, size int) (*Buffer, error) {
	if alignment <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAlignment, alignment)
	}
	if size <= 0 || size > maxBufferSize {
		return nil, fmt.Errorf("%w: %d (must be within (0, %d])", ErrInvalidBufferSize, size, maxBufferSize)
	}
	if size%alignment != 0 {
		return nil, fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidBufferSize, size, alignment)
	}

	raw := make([]byte, size+alignment)
	offset := alignmentOffset(raw, alignment)

	return &Buffer{
		data:      raw[offset : offset+size : offset+size],
		alignment: alignment,
	}, nil
}

// alignmentOffset returns the number of leading bytes of b to skip so that
// the remainder starts on an address that is a multiple of alignment.
func alignmentOffset(b []byte, alignment int) int {
	rem := int(uintptr(unsafe.Pointer(&b[0])) % uintptr(alignment))
	if rem == 0 {
		return 0
	}

	return alignment - rem
}

// Bytes returns the aligned memory of the [Buffer].
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Len returns the size of the [Buffer].
func (b *Buffer) Len() int {
	return len(b.data)
}

// Alignment returns the alignment the [Buffer] was allocated with.
func (b *Buffer) Alignment() int {
	return b.alignment
}

// IsAligned reports whether the [Buffer] satisfies its alignment invariant.
func (b *Buffer) IsAligned() bool {
	if len(b.data) == 0 {
		return false
	}

	return alignmentOffset(b.data, b.alignment) == 0 && len(b.data)%b.alignment == 0
}

// layoutFor establishes the alignment and transfer size for src. Direct
// sources are aligned to the block size of their filesystem, buffered sources
// and filesystems not reporting a block size use the configured defaults.
func (h *Handler) layoutFor(src *Source) (int, int, error) {
	fallbackAlign, fallbackSize := h.Settings.DefaultAlignment, h.Settings.FallbackBufferSize

	if src.Mode != ModeDirect {
		return fallbackAlign, fallbackSize, nil
	}

	var stat unix.Statfs_t

	for {
		err := h.UnixHandler.Fstatfs(src.FD, &stat)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if isUnsupported(err) {
			slog.Debug("Filesystem does not report a block size, using default alignment.",
				"path", src.Path,
				"err", err,
			)

			return fallbackAlign, fallbackSize, nil
		}
		if err != nil {
			return 0, 0, &OpError{Op: "fstatfs", Path: src.Path, Err: err}
		}

		break
	}

	bsize := int64(stat.Bsize) //nolint:unconvert
	if bsize <= 0 {
		return fallbackAlign, fallbackSize, nil
	}

	size := bsize * int64(h.Settings.BufferMultiplier)
	if bsize > maxBufferSize || size > maxBufferSize {
		return 0, 0, &OpError{
			Op:   "alloc",
			Path: src.Path,
			Err:  fmt.Errorf("%w: block size %d x %d", ErrInvalidBufferSize, bsize, h.Settings.BufferMultiplier),
		}
	}

	return int(bsize), int(size), nil
}

func isUnsupported(err error) bool {
	return errors.Is(err, unix.ENOSYS) ||
		errors.Is(err, unix.EOPNOTSUPP) ||
		errors.Is(err, unix.ENOTSUP)
}
