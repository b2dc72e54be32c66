package csv2tsv

import (
	"io"

	"github.com/pkg/errors"
)

// state is the position of the converter within the CSV grammar.
type state uint8

const (
	// start of input, or just after a field or record terminator.
	fieldEnd state = iota
	// in a field that did not start with a quote.
	nonQuotedField
	// in a field that started with a quote.
	quotedField
	// just after a quote in a quoted field: an escaped quote or the field end.
	quoteInQuotedField
	// just after a record terminating CR, a following LF is swallowed.
	crAtFieldEnd
	// just after a CR in a quoted field, a following LF is swallowed.
	crInQuotedField
)

// Stats describes the work done by a Converter.
type Stats struct {
	// Inputs is the number of inputs converted successfully.
	Inputs int
	// Records is the number of records parsed, including suppressed ones.
	Records int
	// Emitted is the number of records written to the output.
	Emitted int
	// Bytes is the number of bytes written to the output.
	Bytes int64
	// Writes is the number of write calls made on the output.
	Writes int
}

// Converter converts CSV inputs to TSV, one after another, into a single output.
// It owns one read buffer that is reused for every input. A Converter is not
// safe for concurrent use.
type Converter struct {
	sink  *Sink
	buf   []byte
	stats Stats
}

// NewConverter creates a Converter writing to w, panicking if w is nil. Input is
// read in chunks of bufSize bytes; a bufSize below one selects DefaultBufferSize.
func NewConverter(w io.Writer, bufSize int) *Converter {
	if w == nil {
		panic("csv2tsv: converter destination cannot be nil")
	}
	if bufSize < 1 {
		bufSize = DefaultBufferSize
	}
	return &Converter{
		sink: NewSink(w, bufSize),
		buf:  make([]byte, bufSize),
	}
}

// Convert reads the CSV input src to its end and appends the TSV form to the
// output. name identifies src in errors; an empty name or "-" stands for
// standard input. On error, output produced before the failure is kept.
func (c *Converter) Convert(src io.Reader, name string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	cv := newConversion(c.sink, name, cfg)
	chunks := NewChunkSource(src, c.buf)
	for first := true; ; first = false {
		chunk, err := chunks.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrapf(err, "csv2tsv: reading %s", sourceName(name))
		}
		if first && cfg.DiscardBOM {
			chunk = StripBOM(chunk)
		}
		if err := cv.processChunk(chunk); err != nil {
			return err
		}
		if err := c.sink.Error(); err != nil {
			return errors.Wrapf(err, "csv2tsv: writing output of %s", sourceName(name))
		}
	}

	if err := cv.finish(); err != nil {
		return err
	}
	if err := c.sink.Error(); err != nil {
		return errors.Wrapf(err, "csv2tsv: writing output of %s", sourceName(name))
	}

	parsed := cv.records()
	c.stats.Inputs++
	c.stats.Records += parsed
	if parsed > cfg.SkipRecords {
		c.stats.Emitted += parsed - cfg.SkipRecords
	}
	return nil
}

// Flush writes any buffered output to the underlying writer.
func (c *Converter) Flush() error {
	return c.sink.Flush()
}

// Stats returns the totals over every input converted so far.
func (c *Converter) Stats() Stats {
	s := c.stats
	s.Bytes = c.sink.Written()
	s.Writes = c.sink.Calls()
	return s
}

// Convert converts a single CSV input to TSV on w using cfg.
func Convert(w io.Writer, src io.Reader, name string, cfg Config) error {
	c := NewConverter(w, DefaultBufferSize)
	err := c.Convert(src, name, cfg)
	if ferr := c.Flush(); err == nil {
		err = ferr
	}
	return err
}

// conversion is the state carried across the chunks of one input.
type conversion struct {
	sink *Sink
	name string
	cfg  Config

	// bytes that end a run of plain data in each field state.
	plainStops  byteSet
	quotedStops byteSet

	st     state
	record int
	field  int

	chunk       []byte
	regionStart int
}

func newConversion(sink *Sink, name string, cfg Config) *conversion {
	return &conversion{
		sink:        sink,
		name:        name,
		cfg:         cfg,
		plainStops:  newByteSet(cfg.CSVDelim, cfg.TSVDelim, '\n', '\r'),
		quotedStops: newByteSet(cfg.Quote, cfg.TSVDelim, '\n', '\r'),
		st:          fieldEnd,
		record:      1,
	}
}

// processChunk runs the state machine over chunk, rewriting it in place, and
// writes the unflushed tail once the chunk is consumed.
func (cv *conversion) processChunk(chunk []byte) error {
	cv.chunk = chunk
	cv.regionStart = 0

	for i := 0; i < len(chunk); i++ {
		switch cv.st {
		case nonQuotedField:
			i = cv.plainStops.skip(chunk, i)
		case quotedField:
			i = cv.quotedStops.skip(chunk, i)
		}
		if i == len(chunk) {
			break
		}
		if err := cv.step(i); err != nil {
			return err
		}
	}

	cv.flush(len(chunk), "")
	cv.chunk = nil
	return nil
}

// step consumes chunk[i]. States that hand the byte to another state loop
// without advancing.
func (cv *conversion) step(i int) error {
	cfg := &cv.cfg
	b := cv.chunk[i]

	for {
		switch cv.st {
		case fieldEnd:
			cv.field++
			if b == cfg.Quote {
				cv.flush(i, "")
				cv.st = quotedField
				return nil
			}
			cv.st = nonQuotedField

		case nonQuotedField:
			switch b {
			case cfg.CSVDelim:
				cv.chunk[i] = cfg.TSVDelim
				cv.st = fieldEnd
			case '\n':
				cv.endRecord(i)
				cv.st = fieldEnd
			case '\r':
				cv.chunk[i] = '\n'
				cv.endRecord(i)
				cv.st = crAtFieldEnd
			case cfg.TSVDelim:
				cv.replace(i, cfg.TSVDelimReplacement)
			}
			return nil

		case quotedField:
			switch b {
			case cfg.Quote:
				cv.flush(i, "")
				cv.st = quoteInQuotedField
			case cfg.TSVDelim:
				cv.replace(i, cfg.TSVDelimReplacement)
			case '\n':
				cv.replace(i, cfg.NewlineReplacement)
			case '\r':
				cv.replace(i, cfg.NewlineReplacement)
				cv.st = crInQuotedField
			}
			return nil

		case quoteInQuotedField:
			switch b {
			case cfg.Quote:
				cv.st = quotedField
			case cfg.CSVDelim:
				cv.chunk[i] = cfg.TSVDelim
				cv.st = fieldEnd
			case '\n':
				cv.endRecord(i)
				cv.st = fieldEnd
			case '\r':
				cv.chunk[i] = '\n'
				cv.endRecord(i)
				cv.st = crAtFieldEnd
			default:
				return &ParseError{Source: cv.name, Record: cv.record, Err: ErrUnterminatedQuote}
			}
			return nil

		case crInQuotedField:
			if b == '\n' {
				cv.flush(i, "")
				cv.st = quotedField
				return nil
			}
			cv.st = quotedField

		case crAtFieldEnd:
			if b == '\n' {
				cv.flush(i, "")
				cv.st = fieldEnd
				return nil
			}
			cv.st = fieldEnd
		}
	}
}

// replace substitutes repl for chunk[i], in place when repl is a single byte.
func (cv *conversion) replace(i int, repl string) {
	if len(repl) == 1 {
		cv.chunk[i] = repl[0]
		return
	}
	cv.flush(i, repl)
}

// endRecord closes the current record at the terminator chunk[i]. The last
// suppressed record is flushed so that its bytes, terminator included, are
// dropped before output resumes.
func (cv *conversion) endRecord(i int) {
	if cv.record == cv.cfg.SkipRecords {
		cv.flush(i, "")
	}
	cv.record++
	cv.field = 0
}

// flush writes chunk[regionStart:end] followed by appendText, unless the
// current record is suppressed, and starts the next region after end.
// Write errors are sticky on the sink and checked once per chunk.
func (cv *conversion) flush(end int, appendText string) {
	if cv.record > cv.cfg.SkipRecords {
		if end > cv.regionStart {
			cv.sink.Write(cv.chunk[cv.regionStart:end])
		}
		if appendText != "" {
			cv.sink.WriteString(appendText)
		}
	}
	cv.regionStart = end + 1
}

// finish validates the final state and terminates an unterminated last record.
func (cv *conversion) finish() error {
	if cv.st == quotedField || cv.st == crInQuotedField {
		return &ParseError{Source: cv.name, Record: cv.record, Err: ErrUnterminatedQuote}
	}
	if cv.field > 0 && cv.record > cv.cfg.SkipRecords {
		cv.sink.WriteByte('\n')
	}
	return nil
}

// records returns the number of records seen, counting an unterminated last one.
func (cv *conversion) records() int {
	if cv.field > 0 {
		return cv.record
	}
	return cv.record - 1
}
