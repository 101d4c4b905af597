package filesystem

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// TruncateTimespec reduces ts to the configured precision. Times before the
// epoch are truncated towards the earlier instant, so that the fractional part
// always stays within [0, 1s).
func (f *Handler) TruncateTimespec(ts unix.Timespec) unix.Timespec {
	precision := f.Settings.TimePrecision.Nanoseconds()
	if precision <= 1 {
		return ts
	}

	nsec := ts.Nano()

	rem := nsec % precision
	if rem < 0 {
		rem += precision
	}

	return unix.NsecToTimespec(nsec - rem)
}

// TimesEqual reports whether a and b denote the same instant at the configured
// precision.
func (f *Handler) TimesEqual(a unix.Timespec, b unix.Timespec) bool {
	ta, tb := f.TruncateTimespec(a), f.TruncateTimespec(b)

	return ta.Nano() == tb.Nano()
}

// SetLinkTimes sets the access and modification times of path without
// following a symbolic link. Both times are truncated to the configured
// precision before they are set. Systems without utimensat are served through
// lutimes, which is limited to microseconds.
func (f *Handler) SetLinkTimes(path string, atime unix.Timespec, mtime unix.Timespec) error {
	ts := []unix.Timespec{f.TruncateTimespec(atime), f.TruncateTimespec(mtime)}

	err := f.UnixHandler.UtimesNanoAt(unix.AT_FDCWD, path, ts, unix.AT_SYMLINK_NOFOLLOW)
	if errors.Is(err, unix.ENOSYS) {
		tv := []unix.Timeval{
			unix.NsecToTimeval(ts[0].Nano()),
			unix.NsecToTimeval(ts[1].Nano()),
		}
		if err := f.UnixHandler.Lutimes(path, tv); err != nil {
			return fmt.Errorf("(fs-times) failed to lutimes: %w", err)
		}

		return nil
	}
	if err != nil {
		return fmt.Errorf("(fs-times) failed to utimensat: %w", err)
	}

	return nil
}
