package varrec

import (
	"io"

	"github.com/pkg/errors"
)

// Stream is the seekable byte-oriented sink/source both the codec and the
// version-info model use. It is intentionally narrower than io.ReadWriteSeeker:
// "read exactly N bytes or fail" and "write exactly N bytes or fail" are the
// only operations the record format ever needs, so the interface says that
// directly instead of leaving partial reads/writes to callers.
//
// Grounded on pelican.ReadSeekerAt (io.ReadSeeker + io.ReaderAt) for the
// read half; nothing in the retrieved pack reads AND writes the same
// seekable stream, so the write half follows the same narrow-exact shape.
type Stream interface {
	// ReadExact reads len(buf) bytes starting at the current position,
	// advancing the position by that many bytes.
	ReadExact(buf []byte) error
	// WriteExact writes all of buf starting at the current position,
	// advancing the position by len(buf) and growing the stream if needed.
	WriteExact(buf []byte) error
	// Pos reports the current position.
	Pos() (int64, error)
	// SeekAbs moves the current position to an absolute offset.
	SeekAbs(offset int64) error
	// Size reports the total size of the stream's contents.
	Size() (int64, error)
}

// MemoryStream is an in-memory Stream backed by a growable byte slice. It is
// the concrete stream used by tests and by hosts that already hold the raw
// VS_VERSIONINFO blob in memory (the common case: it was extracted from a
// .res/PE resource elsewhere, which is out of scope here per spec.md §1).
//
// Grounded on itchio-butler's vendored
// github.com/itchio/savior/checker.Writer: an io.WriteSeeker over a byte
// buffer with explicit offset tracking and errors.WithStack-wrapped bounds
// failures. That writer checks writes against a fixed reference buffer;
// MemoryStream instead grows its buffer on out-of-range writes, since it's
// a real sink, not a verifier.
type MemoryStream struct {
	buf []byte
	pos int64
}

var _ Stream = (*MemoryStream)(nil)

// NewMemoryStream wraps an existing byte slice for reading and writing.
// The slice is used directly, not copied; writes may reallocate it.
func NewMemoryStream(data []byte) *MemoryStream {
	return &MemoryStream{buf: data}
}

// Bytes returns the stream's current backing slice.
func (m *MemoryStream) Bytes() []byte {
	return m.buf
}

func (m *MemoryStream) ReadExact(buf []byte) error {
	if m.pos < 0 || m.pos > int64(len(m.buf)) {
		return errors.WithStack(io.ErrUnexpectedEOF)
	}
	n := copy(buf, m.buf[m.pos:])
	if n < len(buf) {
		m.pos += int64(n)
		return errors.WithStack(io.ErrUnexpectedEOF)
	}
	m.pos += int64(n)
	return nil
}

func (m *MemoryStream) WriteExact(buf []byte) error {
	end := m.pos + int64(len(buf))
	if end > int64(len(m.buf)) {
		grown := make([]byte, end)
		copy(grown, m.buf)
		m.buf = grown
	}
	copy(m.buf[m.pos:end], buf)
	m.pos = end
	return nil
}

func (m *MemoryStream) Pos() (int64, error) {
	return m.pos, nil
}

func (m *MemoryStream) SeekAbs(offset int64) error {
	if offset < 0 {
		return errors.Errorf("negative seek offset %d", offset)
	}
	m.pos = offset
	return nil
}

func (m *MemoryStream) Size() (int64, error) {
	return int64(len(m.buf)), nil
}
