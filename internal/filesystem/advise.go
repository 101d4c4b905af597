package filesystem

import "fmt"

// AdviseDropCache hints the operating system to evict the given byte range of
// the open descriptor fd from the page cache. On platforms without such a
// primitive it does nothing and succeeds.
func (f *Handler) AdviseDropCache(fd int, offset int64, length int64) error {
	if err := f.UnixHandler.FadviseDontNeed(fd, offset, length); err != nil {
		return fmt.Errorf("(fs-advise) failed to fadvise: %w", err)
	}

	return nil
}
