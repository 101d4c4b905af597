//go:build darwin

package directio

import (
	"fmt"

	"golang.org/x/sys/unix"
)

const largeFileFlag = 0

// openUncached opens path normally and then disables caching on the
// descriptor with F_NOCACHE, as Darwin has no O_DIRECT.
func (h *Handler) openUncached(path string) (int, error) {
	fd, err := h.openRetry(path, readFlags)
	if err != nil {
		return -1, err
	}

	if _, err := h.UnixHandler.FcntlInt(uintptr(fd), unix.F_NOCACHE, 1); err != nil {
		h.UnixHandler.Close(fd) //nolint:errcheck

		return -1, fmt.Errorf("(directio-open) failed to set F_NOCACHE: %w", err)
	}

	return fd, nil
}
