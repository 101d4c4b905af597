package filesystem

import (
	"bytes"
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ListXattrNames returns the names of all extended attributes of path,
// without following a symbolic link.
func (f *Handler) ListXattrNames(path string) ([]string, error) {
	data, err := f.readGrowing(func(dest []byte) (int, error) {
		return f.UnixHandler.Llistxattr(path, dest)
	})
	if err != nil {
		return nil, fmt.Errorf("(fs-xattr) failed to llistxattr: %w", err)
	}

	return parseXattrNames(data), nil
}

// GetXattrValue returns the value of the extended attribute name of path,
// without following a symbolic link.
func (f *Handler) GetXattrValue(path string, name string) ([]byte, error) {
	value, err := f.readGrowing(func(dest []byte) (int, error) {
		return f.UnixHandler.Lgetxattr(path, name, dest)
	})
	if err != nil {
		return nil, fmt.Errorf("(fs-xattr) failed to lgetxattr %q: %w", name, err)
	}

	return value, nil
}

// SetXattrValue creates or replaces the extended attribute name of path,
// without following a symbolic link.
func (f *Handler) SetXattrValue(path string, name string, value []byte) error {
	if err := f.UnixHandler.Lsetxattr(path, name, value, 0); err != nil {
		return fmt.Errorf("(fs-xattr) failed to lsetxattr %q: %w", name, err)
	}

	return nil
}

// readGrowing calls read with a buffer starting at the configured initial
// size, growing it by the configured step for as long as read reports ERANGE.
// Any other error ends the loop, as does reaching the configured maximum.
func (f *Handler) readGrowing(read func(dest []byte) (int, error)) ([]byte, error) {
	size := max(f.Settings.XattrInitialSize, 1)
	step := max(f.Settings.XattrSizeStep, 1)

	for {
		buf := make([]byte, size)

		n, err := read(buf)
		if err == nil {
			return buf[:n], nil
		}
		if !errors.Is(err, unix.ERANGE) {
			return nil, err
		}
		if size >= f.Settings.XattrMaxSize {
			return nil, fmt.Errorf("%w: %d bytes", ErrXattrTooLarge, size)
		}

		size = min(size+step, f.Settings.XattrMaxSize)
	}
}

func parseXattrNames(data []byte) []string {
	var names []string

	for _, name := range bytes.Split(data, []byte{0}) {
		if len(name) == 0 {
			continue
		}
		names = append(names, string(name))
	}

	return names
}
