// # csv2tsv: A Streaming CSV to TSV Converter for Go
//
// csv2tsv converts CSV input into TSV output in a single pass over fixed-size
// chunks. Bytes that only need a one-for-one substitution are rewritten in the
// read buffer; everything else is emitted as contiguous regions of the chunk,
// so large inputs are converted with a handful of allocations.
//
// # Features
//
// - Chunked input via `ChunkSource`, working identically over files and in-memory data.
// - Configurable quote, CSV delimiter, TSV delimiter and replacement strings for
//   TSV delimiters and newlines embedded in field data.
// - CR, LF and CRLF record terminators normalised to LF; a trailing newline is
//   added when the input lacks one.
// - Optional UTF-8 byte order mark removal and suppression of leading records
//   (headers of secondary files when several inputs are concatenated).
// - Structured error reporting via `ParseError` and `ErrUnterminatedQuote`.
//
// # Getting Started
//
//	err := csv2tsv.Convert(os.Stdout, f, "data.csv", csv2tsv.DefaultConfig())
//
// The `cmd/csv2tsv` program wraps the package as a command line tool.
package csv2tsv
