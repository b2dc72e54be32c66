package csv2tsv

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type flushFailWriter struct {
	fail error
}

func (f *flushFailWriter) Write([]byte) (int, error) {
	return 0, f.fail
}

func TestSinkWrite(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := NewSink(&buf, 0)

	if _, err := s.Write([]byte("alpha")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if _, err := s.WriteString("\tbeta"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := s.WriteByte('\n'); err != nil {
		t.Fatalf("WriteByte() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected output to stay buffered until Flush, got %q", buf.String())
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	if got := buf.String(); got != "alpha\tbeta\n" {
		t.Fatalf("unexpected output got %q", got)
	}
	if s.Written() != 11 || s.Calls() != 3 {
		t.Fatalf("counters = %d bytes %d calls, want 11 bytes 3 calls", s.Written(), s.Calls())
	}
}

func TestSinkReset(t *testing.T) {
	t.Parallel()

	var buf1 bytes.Buffer
	var buf2 bytes.Buffer

	var s Sink
	s.Reset(&buf1)

	if _, err := s.WriteString("a"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := buf1.String(); got != "a" {
		t.Fatalf("unexpected buf1 contents %q", got)
	}

	s.Reset(&buf2)
	if s.Written() != 0 || s.Calls() != 0 {
		t.Fatalf("Reset() should clear counters")
	}
	if _, err := s.WriteString("x\ty"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if got := buf2.String(); got != "x\ty" {
		t.Fatalf("unexpected buf2 contents %q", got)
	}
}

func TestSinkFlushError(t *testing.T) {
	t.Parallel()

	exp := errors.New("flush failed")
	s := NewSink(&flushFailWriter{fail: exp}, 0)

	if _, err := s.WriteString("a"); err != nil {
		t.Fatalf("WriteString() error = %v", err)
	}
	if err := s.Flush(); !errors.Is(err, exp) {
		t.Fatalf("expected flush error %v, got %v", exp, err)
	}
	if _, err := s.WriteString("b"); !errors.Is(err, exp) {
		t.Fatalf("WriteString() should return stored error %v, got %v", exp, err)
	}
	if err := s.WriteByte('c'); !errors.Is(err, exp) {
		t.Fatalf("WriteByte() should return stored error %v, got %v", exp, err)
	}
}

func TestSinkErrorMethod(t *testing.T) {
	t.Parallel()

	s := NewSink(&strings.Builder{}, 0)
	if err := s.Error(); err != nil {
		t.Fatalf("expected nil error from fresh sink, got %v", err)
	}

	exp := errors.New("write failed")
	s.Reset(&flushFailWriter{fail: exp})
	if _, err := s.Write(make([]byte, 2*DefaultBufferSize)); !errors.Is(err, exp) {
		t.Fatalf("Write() larger than the buffer should fail with %v, got %v", exp, err)
	}
	if err := s.Error(); !errors.Is(err, exp) {
		t.Fatalf("Error() should return %v, got %v", exp, err)
	}

	var nilSink *Sink
	if err := nilSink.Error(); !errors.Is(err, errNilSink) {
		t.Fatalf("nil Sink Error() = %v, want errNilSink", err)
	}
}

func TestNewSinkNilPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("NewSink should panic on nil writer")
		}
	}()
	NewSink(nil, 0)
}
