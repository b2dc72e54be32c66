package csv2tsv

import (
	"bufio"
	"io"

	"github.com/pkg/errors"
)

var (
	errNilSink      = errors.New("csv2tsv: sink is nil")
	errSinkNoTarget = errors.New("csv2tsv: sink destination cannot be nil")
)

// Sink is the buffered, append-only output of a conversion. The first write
// error is kept and returned by every later call.
type Sink struct {
	dst *bufio.Writer

	written int64
	calls   int
	err     error
}

// NewSink creates a Sink writing to w through a buffer of size bytes.
// A size below one selects DefaultBufferSize.
func NewSink(w io.Writer, size int) *Sink {
	if w == nil {
		panic(errSinkNoTarget.Error())
	}
	if size < 1 {
		size = DefaultBufferSize
	}
	return &Sink{dst: bufio.NewWriterSize(w, size)}
}

// Reset points the Sink at dst, discarding buffered data, counters and any stored error.
func (s *Sink) Reset(dst io.Writer) {
	if s == nil {
		panic(errNilSink.Error())
	}
	if dst == nil {
		panic(errSinkNoTarget.Error())
	}
	if s.dst == nil {
		s.dst = bufio.NewWriterSize(dst, DefaultBufferSize)
	} else {
		s.dst.Reset(dst)
	}
	s.written = 0
	s.calls = 0
	s.err = nil
}

// Write appends p.
func (s *Sink) Write(p []byte) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	n, err := s.dst.Write(p)
	s.record(n, err)
	return n, err
}

// WriteString appends str.
func (s *Sink) WriteString(str string) (int, error) {
	if err := s.check(); err != nil {
		return 0, err
	}
	n, err := s.dst.WriteString(str)
	s.record(n, err)
	return n, err
}

// WriteByte appends a single byte.
func (s *Sink) WriteByte(b byte) error {
	if err := s.check(); err != nil {
		return err
	}
	err := s.dst.WriteByte(b)
	if err != nil {
		s.record(0, err)
	} else {
		s.record(1, nil)
	}
	return err
}

// Flush flushes pending buffered data to the underlying writer.
func (s *Sink) Flush() error {
	if err := s.check(); err != nil {
		return err
	}
	if err := s.dst.Flush(); err != nil {
		s.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the sink.
func (s *Sink) Error() error {
	if s == nil {
		return errNilSink
	}
	return s.err
}

// Written returns the number of bytes accepted since creation or the last Reset.
func (s *Sink) Written() int64 { return s.written }

// Calls returns the number of write calls since creation or the last Reset.
func (s *Sink) Calls() int { return s.calls }

func (s *Sink) check() error {
	if s == nil {
		return errNilSink
	}
	if s.dst == nil {
		return errSinkNoTarget
	}
	return s.err
}

func (s *Sink) record(n int, err error) {
	s.written += int64(n)
	s.calls++
	if err != nil {
		s.err = err
	}
}
