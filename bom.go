package csv2tsv

import "bytes"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// HasBOM reports whether chunk starts with a UTF-8 byte order mark.
func HasBOM(chunk []byte) bool {
	return bytes.HasPrefix(chunk, utf8BOM)
}

// StripBOM returns chunk without a leading UTF-8 byte order mark. A chunk
// shorter than the mark is returned unchanged, even if it holds a prefix of it.
func StripBOM(chunk []byte) []byte {
	if HasBOM(chunk) {
		return chunk[len(utf8BOM):]
	}
	return chunk
}
