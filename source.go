package csv2tsv

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// DefaultBufferSize is the read buffer size used when none is requested.
const DefaultBufferSize = 16 << 10 // 16 KiB

// ChunkSource splits an input into chunks that share one caller-supplied
// buffer. Every chunk fills the buffer except possibly the last one.
//
// A chunk is only valid until the next call to Next; the converter rewrites
// chunk bytes in place.
type ChunkSource struct {
	src  io.Reader
	buf  []byte
	done bool
}

// NewChunkSource creates a ChunkSource reading from r into buf, panicking if r
// is nil or buf is empty.
func NewChunkSource(r io.Reader, buf []byte) *ChunkSource {
	if r == nil {
		panic("csv2tsv: chunk source cannot be nil")
	}
	if len(buf) == 0 {
		panic("csv2tsv: chunk buffer cannot be empty")
	}
	return &ChunkSource{src: r, buf: buf}
}

// NewBytesSource creates a ChunkSource over an in-memory input. Chunks are
// copied into buf, so data itself is never modified.
func NewBytesSource(data []byte, buf []byte) *ChunkSource {
	return NewChunkSource(bytes.NewReader(data), buf)
}

// Next returns the next chunk. It returns io.EOF once the input is exhausted;
// any other read error is returned unchanged.
func (s *ChunkSource) Next() ([]byte, error) {
	if s.done {
		return nil, io.EOF
	}

	n, err := io.ReadFull(s.src, s.buf)
	switch {
	case err == nil:
		return s.buf[:n], nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		s.done = true
		return s.buf[:n], nil
	case errors.Is(err, io.EOF):
		s.done = true
		return nil, io.EOF
	default:
		return nil, err
	}
}
