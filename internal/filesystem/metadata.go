package filesystem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// LinkInfo is the metadata of a filesystem entry as returned by lstat. The
// field widths are the widest any supported platform uses, so that no value
// is narrowed on the way out.
type LinkInfo struct {
	Device    uint64
	Inode     uint64
	Mode      uint64
	Nlink     uint64
	UID       uint64
	GID       uint64
	Rdev      uint64
	Size      int64
	BlockSize int64
	Blocks    int64
	Atime     unix.Timespec
	Mtime     unix.Timespec
	Ctime     unix.Timespec
}

// IsSymlink reports whether the entry is a symbolic link.
func (i *LinkInfo) IsSymlink() bool {
	return i.Mode&unix.S_IFMT == unix.S_IFLNK
}

// IsDir reports whether the entry is a directory.
func (i *LinkInfo) IsDir() bool {
	return i.Mode&unix.S_IFMT == unix.S_IFDIR
}

// Perms returns the permission bits of the entry.
func (i *LinkInfo) Perms() uint32 {
	return uint32(i.Mode & 0o7777)
}

// LstatInfo returns the [LinkInfo] of path without following a symbolic link.
// The timestamps are truncated to the configured precision.
func (f *Handler) LstatInfo(path string) (*LinkInfo, error) {
	var stat unix.Stat_t

	if err := f.UnixHandler.Lstat(path, &stat); err != nil {
		return nil, fmt.Errorf("(fs-lstat) failed to lstat: %w", err)
	}

	return &LinkInfo{
		Device:    uint64(stat.Dev),    //nolint:gosec,unconvert
		Inode:     uint64(stat.Ino),    //nolint:unconvert
		Mode:      uint64(stat.Mode),   //nolint:unconvert
		Nlink:     uint64(stat.Nlink),  //nolint:unconvert
		UID:       uint64(stat.Uid),    //nolint:unconvert
		GID:       uint64(stat.Gid),    //nolint:unconvert
		Rdev:      uint64(stat.Rdev),   //nolint:gosec,unconvert
		Size:      int64(stat.Size),    //nolint:unconvert
		BlockSize: int64(stat.Blksize), //nolint:unconvert
		Blocks:    int64(stat.Blocks),  //nolint:unconvert
		Atime:     f.TruncateTimespec(stat.Atim),
		Mtime:     f.TruncateTimespec(stat.Mtim),
		Ctime:     f.TruncateTimespec(stat.Ctim),
	}, nil
}
