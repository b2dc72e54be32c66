package csv2tsv

import "testing"

func TestStripBOM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		chunk string
		want  string
		has   bool
	}{
		{name: "withMark", chunk: "\xEF\xBB\xBFabc", want: "abc", has: true},
		{name: "onlyMark", chunk: "\xEF\xBB\xBF", want: "", has: true},
		{name: "withoutMark", chunk: "abc", want: "abc"},
		{name: "partialMark", chunk: "\xEF\xBB", want: "\xEF\xBB"},
		{name: "markLater", chunk: "a\xEF\xBB\xBF", want: "a\xEF\xBB\xBF"},
		{name: "empty", chunk: "", want: ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := HasBOM([]byte(tc.chunk)); got != tc.has {
				t.Fatalf("HasBOM(%q) = %v, want %v", tc.chunk, got, tc.has)
			}
			if got := string(StripBOM([]byte(tc.chunk))); got != tc.want {
				t.Fatalf("StripBOM(%q) = %q, want %q", tc.chunk, got, tc.want)
			}
		})
	}
}
