package csv2tsv

import (
	"fmt"

	"github.com/pkg/errors"
)

// stdinName is reported in errors for inputs without a name.
const stdinName = "Standard Input"

// ErrUnterminatedQuote is returned when a quoted field is followed by anything
// other than a quote, the CSV delimiter or a record terminator, or when input
// ends inside a quoted field.
var ErrUnterminatedQuote = errors.New("csv2tsv: improperly terminated quoted field")

// ParseError contains location information for CSV parsing errors.
type ParseError struct {
	Source string
	Record int
	Err    error
}

// Error formats the parse error message with the stored source, record and Err values.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csv2tsv: invalid CSV in %s, record %d: %v", sourceName(e.Source), e.Record, e.Err)
}

// Unwrap returns the underlying Err so ParseError participates in errors.Unwrap.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func sourceName(name string) string {
	if name == "" || name == "-" {
		return stdinName
	}
	return name
}
