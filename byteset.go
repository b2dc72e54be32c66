package csv2tsv

// byteSet is a bitmap over ASCII bytes. Bytes at or above 0x80 are never members.
type byteSet [2]uint64

func newByteSet(bs ...byte) (x byteSet) {
	for _, b := range bs {
		if b < 0x80 {
			x[b>>6] |= 1 << (b & 63)
		}
	}
	return x
}

func (x *byteSet) has(b byte) bool {
	return b < 0x80 && x[b>>6]&(1<<(b&63)) != 0
}

// skip returns the index of the first member of x in b at or after i, or len(b).
func (x *byteSet) skip(b []byte, i int) int {
	for i < len(b) && !x.has(b[i]) {
		i++
	}
	return i
}
