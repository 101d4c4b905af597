package directio

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

var (
	// ErrUncachedUnsupported occurs when the platform offers no uncached read
	// mode at all.
	ErrUncachedUnsupported = errors.New("uncached reads not supported on this platform")

	// ErrInvalidAlignment occurs when a transfer buffer is requested with a
	// non-positive alignment.
	ErrInvalidAlignment = errors.New("invalid buffer alignment")

	// ErrInvalidBufferSize occurs when a transfer buffer is requested with a
	// size that is non-positive, too large or not a multiple of the alignment.
	ErrInvalidBufferSize = errors.New("invalid buffer size")
)

// OpError records a failed operation on a source path.
type OpError struct {
	Op   string
	Path string
	Err  error
}

func (e *OpError) Error() string {
	if errno, ok := e.Errno(); ok {
		return fmt.Sprintf("(directio) %s %s: errno %d: %s", e.Op, e.Path, int(errno), errno.Error())
	}

	return fmt.Sprintf("(directio) %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// Errno returns the platform error number of the failed operation, if any.
func (e *OpError) Errno() (unix.Errno, bool) {
	var errno unix.Errno
	if errors.As(e.Err, &errno) {
		return errno, true
	}

	return 0, false
}
