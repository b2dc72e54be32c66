package csv2tsv

import "testing"

func TestByteSet(t *testing.T) {
	t.Parallel()

	set := newByteSet(',', '\t', '\n', '\r', 'z', 0xEF)
	for b := 0; b < 256; b++ {
		want := b == ',' || b == '\t' || b == '\n' || b == '\r' || b == 'z'
		if got := set.has(byte(b)); got != want {
			t.Fatalf("has(%#x) = %v, want %v", b, got, want)
		}
	}

	data := []byte("ab\xEFcd,ef")
	if got := set.skip(data, 0); got != 5 {
		t.Fatalf("skip() = %d, want 5", got)
	}
	if got := set.skip(data, 7); got != len(data) {
		t.Fatalf("skip() = %d, want %d", got, len(data))
	}
}
