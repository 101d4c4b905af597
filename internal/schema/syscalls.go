package schema

import (
	"golang.org/x/sys/unix"
)

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Open wraps around [unix.Open].
func (*Unix) Open(path string, mode int, perm uint32) (int, error) {
	return unix.Open(path, mode, perm)
}

// Read wraps around [unix.Read].
func (*Unix) Read(fd int, p []byte) (int, error) {
	return unix.Read(fd, p)
}

// Write wraps around [unix.Write].
func (*Unix) Write(fd int, p []byte) (int, error) {
	return unix.Write(fd, p)
}

// Close wraps around [unix.Close].
func (*Unix) Close(fd int) error {
	return unix.Close(fd)
}

// Fstatfs wraps around [unix.Fstatfs].
func (*Unix) Fstatfs(fd int, buf *unix.Statfs_t) error {
	return unix.Fstatfs(fd, buf)
}

// FcntlInt wraps around [unix.FcntlInt].
func (*Unix) FcntlInt(fd uintptr, cmd, arg int) (int, error) {
	return unix.FcntlInt(fd, cmd, arg)
}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// UtimesNanoAt wraps around [unix.UtimesNanoAt].
func (*Unix) UtimesNanoAt(dirfd int, path string, ts []unix.Timespec, flags int) error {
	return unix.UtimesNanoAt(dirfd, path, ts, flags)
}

// Lutimes wraps around [unix.Lutimes].
func (*Unix) Lutimes(path string, tv []unix.Timeval) error {
	return unix.Lutimes(path, tv)
}
