package directio

import (
	"errors"
	"io"
	"log/slog"

	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// Copy copies the file at path to the already open sinkFD, which is neither
// created nor closed. The source is opened uncached where possible; if the
// uncached handle fails its very first read with EINVAL, the source is closed
// and the whole copy restarts once in buffered mode. Failed operations are
// returned as [OpError], and bytes already written to the sink stay written.
func (h *Handler) Copy(path string, sinkFD int) (*Result, error) {
	res, retry, err := h.copyAttempt(path, sinkFD, true)
	if err != nil {
		return nil, err
	}

	if retry {
		slog.Debug("Uncached read was rejected, restarting buffered.",
			"path", path,
		)

		res, _, err = h.copyAttempt(path, sinkFD, false)
		if err != nil {
			return nil, err
		}
		res.Restarted = true
	}

	return res, nil
}

// copyAttempt runs one open-allocate-transfer cycle. It reports retry instead
// of an error when a restart without the uncached mode is warranted, in which
// case the source was already closed and nothing was written to the sink.
func (h *Handler) copyAttempt(path string, sinkFD int, uncached bool) (*Result, bool, error) {
	src, err := h.openSource(path, uncached)
	if err != nil {
		return nil, false, err
	}

	closed := false
	defer func() {
		if !closed {
			h.UnixHandler.Close(src.FD) //nolint:errcheck
		}
	}()

	alignment, size, err := h.layoutFor(src)
	if err != nil {
		return nil, false, err
	}

	buf, err := NewAlignedBuffer(alignment, size)
	if err != nil {
		return nil, false, &OpError{Op: "alloc", Path: path, Err: err}
	}

	slog.Debug("Transfer buffer allocated.",
		"path", path,
		"mode", src.Mode,
		"alignment", alignment,
		"size", size,
	)

	res := &Result{
		Mode:       src.Mode,
		Alignment:  alignment,
		BufferSize: size,
	}

	var hasher *blake3.Hasher
	if h.Settings.Checksum {
		hasher = blake3.New()
	}

	var offset int64

	firstRead := true

	for {
		n, err := h.readChunk(src.FD, buf.Bytes())
		if err != nil {
			if firstRead && uncached && src.Mode == ModeDirect && errors.Is(err, unix.EINVAL) {
				closed = true
				h.UnixHandler.Close(src.FD) //nolint:errcheck

				return nil, true, nil
			}

			return nil, false, &OpError{Op: "read", Path: path, Err: err}
		}
		firstRead = false

		if n == 0 {
			break
		}

		chunk := buf.Bytes()[:n]

		if err := h.writeAll(sinkFD, chunk); err != nil {
			return nil, false, &OpError{Op: "write", Path: path, Err: err}
		}

		if hasher != nil {
			hasher.Write(chunk) //nolint:errcheck
		}

		if src.Mode == ModeBuffered {
			h.dropCache(src, offset, int64(n))
		}

		offset += int64(n)
		res.Bytes += uint64(n)
	}

	closed = true
	if err := h.UnixHandler.Close(src.FD); err != nil {
		return nil, false, &OpError{Op: "close", Path: path, Err: err}
	}

	if hasher != nil {
		res.Checksum = hasher.Sum(nil)
	}

	return res, false, nil
}

// readChunk reads once into p, reissuing reads interrupted before any
// transfer took place.
func (h *Handler) readChunk(fd int, p []byte) (int, error) {
	for {
		n, err := h.UnixHandler.Read(fd, p)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return 0, err
		}

		return n, nil
	}
}

// writeAll writes all of p to fd. Only the written prefix is consumed on
// partial writes, and interrupted writes continue with the remaining tail.
func (h *Handler) writeAll(fd int, p []byte) error {
	for len(p) > 0 {
		n, err := h.UnixHandler.Write(fd, p)
		if n > 0 {
			p = p[n:]
		}
		if errors.Is(err, unix.EINTR) {
			continue
		}
		if err != nil {
			return err
		}
		if n <= 0 {
			return io.ErrShortWrite
		}
	}

	return nil
}

func (h *Handler) dropCache(src *Source, offset int64, length int64) {
	if !h.Settings.DropCache || h.CacheHandler == nil {
		return
	}

	if err := h.CacheHandler.AdviseDropCache(src.FD, offset, length); err != nil {
		slog.Debug("Failure evicting a transferred range from the page cache (was skipped).",
			"path", src.Path,
			"offset", offset,
			"length", length,
			"err", err,
		)
	}
}
