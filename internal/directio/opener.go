package directio

import (
	"errors"
	"log/slog"

	"golang.org/x/sys/unix"
)

const readFlags = unix.O_RDONLY | unix.O_CLOEXEC | largeFileFlag

// Source is an open descriptor to the file being copied.
type Source struct {
	Path string
	FD   int
	Mode Mode
}

// openSource opens path for reading. With allowUncached, the uncached mode is
// attempted first and any failure of that attempt falls back to a buffered
// open. Errors of the buffered open are returned as [OpError].
func (h *Handler) openSource(path string, allowUncached bool) (*Source, error) {
	if allowUncached {
		fd, err := h.openUncached(path)
		if err == nil {
			return &Source{Path: path, FD: fd, Mode: ModeDirect}, nil
		}
		slog.Debug("Uncached open was rejected, reopening buffered.",
			"path", path,
			"err", err,
		)
	}

	fd, err := h.openRetry(path, readFlags)
	if err != nil {
		return nil, &OpError{Op: "open", Path: path, Err: err}
	}

	return &Source{Path: path, FD: fd, Mode: ModeBuffered}, nil
}

func (h *Handler) openRetry(path string, flags int) (int, error) {
	for {
		fd, err := h.UnixHandler.Open(path, flags, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return -1, err
		}

		return fd, nil
	}
}
