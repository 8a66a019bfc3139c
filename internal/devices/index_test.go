package devices

import "testing"

var indexPorts = []string{
	"/dev/tty.debug-console",
	"/dev/tty.usbserial-AB12",
	"/dev/tty.usbmodem99",
}

func TestAt(t *testing.T) {
	tests := []struct {
		name   string
		idx    int
		want   string
		wantOK bool
	}{
		{"first element", 0, "/dev/tty.debug-console", true},
		{"last element", 2, "/dev/tty.usbmodem99", true},
		{"negative counts from end", -1, "/dev/tty.usbmodem99", true},
		{"negative start of list", -3, "/dev/tty.debug-console", true},
		{"out of range positive", 3, "", false},
		{"out of range negative", -4, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := At(indexPorts, tt.idx)
			if ok != tt.wantOK {
				t.Fatalf("At(%d) ok = %v, want %v", tt.idx, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("At(%d) = %q, want %q", tt.idx, got, tt.want)
			}
		})
	}
}

func TestAt_EmptyList(t *testing.T) {
	if _, ok := At(nil, 0); ok {
		t.Error("At(nil, 0) ok = true, want false")
	}
}

func TestPick(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"blank input", "", "", false},
		{"whitespace input", "   ", "", false},
		{"tab input", "\t", "", false},
		{"non-numeric input", "banana", "", false},
		{"float input", "1.5", "", false},
		{"valid index", "1", "/dev/tty.usbserial-AB12", true},
		{"valid index with whitespace", " 2 ", "/dev/tty.usbmodem99", true},
		{"negative index", "-1", "/dev/tty.usbmodem99", true},
		{"out of range", "7", "", false},
		{"out of range negative", "-9", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Pick(indexPorts, tt.input)
			if ok != tt.wantOK {
				t.Fatalf("Pick(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("Pick(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
