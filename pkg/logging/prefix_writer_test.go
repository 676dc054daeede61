package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	tests := []struct {
		name   string
		writes []string
		want   string
	}{
		{
			name:   "single line",
			writes: []string{"hello\n"},
			want:   "> hello\n",
		},
		{
			name:   "two lines in one write",
			writes: []string{"a\nb\n"},
			want:   "> a\n> b\n",
		},
		{
			name:   "line split across writes",
			writes: []string{"par", "tial\n"},
			want:   "> partial\n",
		},
		{
			name:   "incomplete line is held back",
			writes: []string{"done\nwaiting"},
			want:   "> done\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			pw := NewPrefixWriter("> ", &buf)
			for _, w := range tt.writes {
				n, err := pw.Write([]byte(w))
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if n != len(w) {
					t.Errorf("Write returned %d, want %d", n, len(w))
				}
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
