//go:build linux

package directio

import "golang.org/x/sys/unix"

const largeFileFlag = unix.O_LARGEFILE

func (h *Handler) openUncached(path string) (int, error) {
	return h.openRetry(path, readFlags|unix.O_DIRECT)
}
