package devices

import (
	"errors"
	"runtime"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name          string
		ports         []string
		wantPreferred []int
		wantOthers    []int
		wantDefault   int
	}{
		{
			name:        "empty list",
			ports:       []string{},
			wantDefault: -1,
		},
		{
			name:          "no preferred entries",
			ports:         []string{"/dev/tty.debug-console", "/dev/tty.Bluetooth-Incoming-Port"},
			wantPreferred: nil,
			wantOthers:    []int{0, 1},
			wantDefault:   -1,
		},
		{
			name:          "single preferred entry",
			ports:         []string{"/dev/tty.debug-console", "/dev/tty.usbserial-AB12"},
			wantPreferred: []int{1},
			wantOthers:    []int{0},
			wantDefault:   1,
		},
		{
			name: "default is last preferred in forward order",
			ports: []string{
				"/dev/tty.usbserial-AB12",
				"/dev/tty.debug-console",
				"/dev/tty.usbserial-CD34",
				"/dev/tty.wlan-debug",
			},
			wantPreferred: []int{0, 2},
			wantOthers:    []int{1, 3},
			wantDefault:   2,
		},
		{
			name:          "all preferred",
			ports:         []string{"/dev/tty.usbserial-1", "/dev/tty.usbserial-2"},
			wantPreferred: []int{0, 1},
			wantOthers:    nil,
			wantDefault:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			preferred, others, defaultIdx := Partition(tt.ports)

			if !equalInts(preferred, tt.wantPreferred) {
				t.Errorf("preferred = %v, want %v", preferred, tt.wantPreferred)
			}
			if !equalInts(others, tt.wantOthers) {
				t.Errorf("others = %v, want %v", others, tt.wantOthers)
			}
			if defaultIdx != tt.wantDefault {
				t.Errorf("defaultIdx = %d, want %d", defaultIdx, tt.wantDefault)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	ports := []string{
		"/dev/tty.usbserial-AB12",
		"/dev/tty.Bluetooth-Incoming-Port",
		"/dev/tty.wlan-debug",
		"/dev/tty.debug-console",
		"/dev/tty.usbmodem1234",
	}

	t.Run("fixed ignore list removed", func(t *testing.T) {
		got := Filter(ports, nil)
		want := []string{"/dev/tty.usbserial-AB12", "/dev/tty.usbmodem1234"}
		if !equalStrings(got, want) {
			t.Errorf("Filter() = %v, want %v", got, want)
		}
	})

	t.Run("extra ignores are additive", func(t *testing.T) {
		got := Filter(ports, []string{"/dev/tty.usbmodem1234"})
		want := []string{"/dev/tty.usbserial-AB12"}
		if !equalStrings(got, want) {
			t.Errorf("Filter() = %v, want %v", got, want)
		}
	})

	t.Run("order preserved", func(t *testing.T) {
		got := Filter([]string{"/dev/tty.b", "/dev/tty.a"}, nil)
		want := []string{"/dev/tty.b", "/dev/tty.a"}
		if !equalStrings(got, want) {
			t.Errorf("Filter() = %v, want %v", got, want)
		}
	})
}

func TestApplyIgnores(t *testing.T) {
	ports := []string{
		"/dev/tty.usbserial-AB12",
		"/dev/tty.Bluetooth-Incoming-Port",
		"/dev/tty.wlan-debug",
		"/dev/tty.debug-console",
		"/dev/tty.usbmodem1234",
	}
	extra := []string{"/dev/tty.usbmodem1234"}

	tests := []struct {
		name  string
		debug bool
		want  []string
	}{
		{
			name:  "debug shows everything including ignored paths",
			debug: true,
			want:  ports,
		},
		{
			name:  "non-debug hides fixed list and extras",
			debug: false,
			want:  []string{"/dev/tty.usbserial-AB12"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := applyIgnores(tt.debug, ports, extra)
			if !equalStrings(got, tt.want) {
				t.Errorf("applyIgnores(debug=%v) = %v, want %v", tt.debug, got, tt.want)
			}
		})
	}
}

func TestList_UnsupportedOS(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("enumeration is supported on darwin")
	}

	_, err := List(false, nil)
	if !errors.Is(err, ErrUnsupportedOS) {
		t.Errorf("List() error = %v, want ErrUnsupportedOS", err)
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
