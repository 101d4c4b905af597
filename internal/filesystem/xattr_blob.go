package filesystem

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// Xattr is a single extended attribute.
type Xattr struct {
	Name  string
	Value []byte
}

// ReadXattrBlob returns all extended attributes of path encoded as a blob
// (see [EncodeXattrBlob]). It returns nil when the filesystem does not support
// or permit extended attributes, or when path has none. Names that vanish
// between listing and retrieval are skipped.
func (f *Handler) ReadXattrBlob(path string) ([]byte, error) {
	names, err := f.ListXattrNames(path)
	if err != nil {
		if errors.Is(err, unix.ENOTSUP) || errors.Is(err, unix.EOPNOTSUPP) || errors.Is(err, unix.EACCES) {
			return nil, nil
		}

		return nil, err
	}

	attrs := make([]Xattr, 0, len(names))

	for _, name := range names {
		value, err := f.GetXattrValue(path, name)
		if errors.Is(err, errNoAttr) {
			slog.Warn("Extended attribute without value (was skipped).",
				"path", path,
				"name", name,
			)

			continue
		}
		if err != nil {
			return nil, err
		}

		attrs = append(attrs, Xattr{Name: name, Value: value})
	}

	if len(attrs) == 0 {
		return nil, nil
	}

	return EncodeXattrBlob(attrs), nil
}

// WriteXattrBlob sets every extended attribute contained in blob on path.
// It stops at the first attribute that cannot be set.
func (f *Handler) WriteXattrBlob(path string, blob []byte) error {
	attrs, err := DecodeXattrBlob(blob)
	if err != nil {
		return err
	}

	for _, attr := range attrs {
		if err := f.SetXattrValue(path, attr.Name, attr.Value); err != nil {
			return err
		}
	}

	return nil
}

// EncodeXattrBlob serializes attrs into a blob: a big-endian uint64 holding
// the length of the name section, the NUL-terminated names, one big-endian
// uint64 length per value, and finally all values concatenated.
func EncodeXattrBlob(attrs []Xattr) []byte {
	var names []byte
	for _, attr := range attrs {
		names = append(names, attr.Name...)
		names = append(names, 0)
	}

	blob := binary.BigEndian.AppendUint64(nil, uint64(len(names)))
	blob = append(blob, names...)

	for _, attr := range attrs {
		blob = binary.BigEndian.AppendUint64(blob, uint64(len(attr.Value)))
	}
	for _, attr := range attrs {
		blob = append(blob, attr.Value...)
	}

	return blob
}

// DecodeXattrBlob is the inverse of [EncodeXattrBlob]. An empty blob decodes
// to no attributes.
func DecodeXattrBlob(blob []byte) ([]Xattr, error) {
	if len(blob) == 0 {
		return nil, nil
	}

	if len(blob) < 8 {
		return nil, fmt.Errorf("%w: truncated header", ErrMalformedBlob)
	}

	nameLen := binary.BigEndian.Uint64(blob)
	blob = blob[8:]

	if nameLen > uint64(len(blob)) {
		return nil, fmt.Errorf("%w: name section of %d bytes exceeds blob", ErrMalformedBlob, nameLen)
	}

	nameSection := blob[:nameLen]
	blob = blob[nameLen:]

	if len(nameSection) > 0 && nameSection[len(nameSection)-1] != 0 {
		return nil, fmt.Errorf("%w: unterminated name", ErrMalformedBlob)
	}

	var names []string
	for _, name := range bytes.SplitAfter(nameSection, []byte{0}) {
		if len(name) == 0 {
			continue
		}
		if len(name) == 1 {
			return nil, fmt.Errorf("%w: empty name", ErrMalformedBlob)
		}
		names = append(names, string(name[:len(name)-1]))
	}

	if uint64(len(blob)) < uint64(len(names))*8 {
		return nil, fmt.Errorf("%w: truncated value lengths", ErrMalformedBlob)
	}

	attrs := make([]Xattr, len(names))
	lengths := blob[:len(names)*8]
	values := blob[len(names)*8:]

	for i, name := range names {
		valueLen := binary.BigEndian.Uint64(lengths[i*8:])
		if valueLen > uint64(len(values)) {
			return nil, fmt.Errorf("%w: value of %q exceeds blob", ErrMalformedBlob, name)
		}

		attrs[i] = Xattr{Name: name, Value: values[:valueLen:valueLen]}
		values = values[valueLen:]
	}

	if len(values) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedBlob, len(values))
	}

	return attrs, nil
}
