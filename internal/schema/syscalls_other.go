//go:build !linux && !darwin

package schema

import "golang.org/x/sys/unix"

// FadviseDontNeed is a no-op on platforms without posix_fadvise.
func (*Unix) FadviseDontNeed(_ int, _ int64, _ int64) error {
	return nil
}

// Llistxattr is not supported on this platform and returns [unix.ENOTSUP].
func (*Unix) Llistxattr(_ string, _ []byte) (int, error) {
	return 0, unix.ENOTSUP
}

// Lgetxattr is not supported on this platform and returns [unix.ENOTSUP].
func (*Unix) Lgetxattr(_ string, _ string, _ []byte) (int, error) {
	return 0, unix.ENOTSUP
}

// Lsetxattr is not supported on this platform and returns [unix.ENOTSUP].
func (*Unix) Lsetxattr(_ string, _ string, _ []byte, _ int) error {
	return unix.ENOTSUP
}
