//go:build linux

package schema

import "golang.org/x/sys/unix"

// FadviseDontNeed wraps around [unix.Fadvise] with [unix.FADV_DONTNEED].
func (*Unix) FadviseDontNeed(fd int, offset int64, length int64) error {
	return unix.Fadvise(fd, offset, length, unix.FADV_DONTNEED)
}

// Llistxattr wraps around [unix.Llistxattr].
func (*Unix) Llistxattr(path string, dest []byte) (int, error) {
	return unix.Llistxattr(path, dest)
}

// Lgetxattr wraps around [unix.Lgetxattr].
func (*Unix) Lgetxattr(path string, attr string, dest []byte) (int, error) {
	return unix.Lgetxattr(path, attr, dest)
}

// Lsetxattr wraps around [unix.Lsetxattr].
func (*Unix) Lsetxattr(path string, attr string, data []byte, flags int) error {
	return unix.Lsetxattr(path, attr, data, flags)
}
