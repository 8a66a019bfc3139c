package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestAskYesNo(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"y", "y\n", true},
		{"yes", "yes\n", true},
		{"uppercase Y", "Y\n", true},
		{"uppercase YES", "YES\n", true},
		{"surrounding whitespace", "  yes  \n", true},
		{"n", "n\n", false},
		{"no", "no\n", false},
		{"blank", "\n", false},
		{"garbage", "sure\n", false},
		{"eof without input", "", false},
		{"yes without trailing newline", "yes", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			got := AskYesNo(strings.NewReader(tt.input), out, "create it? (y|yes) ")
			if got != tt.want {
				t.Errorf("AskYesNo(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "create it?") {
				t.Errorf("prompt not written to out: %q", out.String())
			}
		})
	}
}
