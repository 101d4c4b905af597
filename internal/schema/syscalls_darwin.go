//go:build darwin

package schema

import "golang.org/x/sys/unix"

// FadviseDontNeed is a no-op, darwin has no posix_fadvise. Uncached handles
// are requested through F_NOCACHE when opening instead.
func (*Unix) FadviseDontNeed(_ int, _ int64, _ int64) error {
	return nil
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
