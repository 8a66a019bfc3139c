package devices

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/pioport/internal/logging"
)

const (
	// DevDir is the directory listed for serial device candidates.
	DevDir = "/dev"

	// ttyPrefix selects the callout-style serial entries on macOS.
	ttyPrefix = "tty."

	// PreferredSubstring marks a device as a preferred candidate.
	PreferredSubstring = "usbserial"
)

// IgnoredByDefault are macOS serial entries that are always present but are
// never the device you want to flash. They are hidden unless debug is set.
var IgnoredByDefault = []string{
	"/dev/tty.Bluetooth-Incoming-Port",
	"/dev/tty.wlan-debug",
	"/dev/tty.debug-console",
}

var (
	// ErrUnsupportedOS indicates enumeration was attempted on an OS other
	// than macOS.
	ErrUnsupportedOS = errors.New("unsupported operating system")

	// ErrDevMissing indicates /dev does not exist.
	ErrDevMissing = errors.New("couldn't find /dev")

	// ErrNoDevices indicates enumeration succeeded but produced no
	// candidates.
	ErrNoDevices = errors.New("couldn't find any devices")
)

// List enumerates serial device candidates from /dev.
//
// Entries keep the underlying directory listing order; they are not sorted.
// Unless debug is set, exact matches of IgnoredByDefault are dropped, then
// any paths in extraIgnore (user preference). Debug listings are unfiltered.
func List(debug bool, extraIgnore []string) ([]string, error) {
	if runtime.GOOS != "darwin" {
		return nil, fmt.Errorf("sorry I don't support %s yet: %w", runtime.GOOS, ErrUnsupportedOS)
	}

	dir, err := os.Open(DevDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w, what?", ErrDevMissing)
		}
		return nil, fmt.Errorf("failed to open %s: %w", DevDir, err)
	}
	defer dir.Close()

	names, err := dir.Readdirnames(-1)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", DevDir, err)
	}

	ports := make([]string, 0, len(names))
	for _, name := range names {
		if !strings.HasPrefix(name, ttyPrefix) {
			continue
		}
		ports = append(ports, filepath.Join(DevDir, name))
	}

	ports = applyIgnores(debug, ports, extraIgnore)

	logging.Debug("Enumerated devices", zap.Strings("ports", ports))
	return ports, nil
}

// applyIgnores hides the known-noise entries and user-configured extras
// from non-debug listings. Debug listings are unfiltered.
func applyIgnores(debug bool, ports, extraIgnore []string) []string {
	if debug {
		return ports
	}
	return Filter(ports, extraIgnore)
}

// Filter removes the fixed ignore list and any extra ignored paths from
// ports, preserving order.
func Filter(ports []string, extraIgnore []string) []string {
	ignored := make(map[string]bool, len(IgnoredByDefault)+len(extraIgnore))
	for _, path := range IgnoredByDefault {
		ignored[path] = true
	}
	for _, path := range extraIgnore {
		ignored[path] = true
	}

	kept := make([]string, 0, len(ports))
	for _, port := range ports {
		if ignored[port] {
			continue
		}
		kept = append(kept, port)
	}
	return kept
}

// IsPreferred reports whether a device path is a preferred candidate.
func IsPreferred(port string) bool {
	return strings.Contains(port, PreferredSubstring)
}

// Partition splits ports into preferred and other candidates.
//
// Both result slices hold indices into the original ports slice, in original
// order; listings keep those original index numbers even though preferred
// entries print first. defaultIdx is the index of the last preferred entry,
// or -1 when there is none.
func Partition(ports []string) (preferred, others []int, defaultIdx int) {
	defaultIdx = -1
	for i, port := range ports {
		if IsPreferred(port) {
			preferred = append(preferred, i)
			defaultIdx = i
		} else {
			others = append(others, i)
		}
	}
	return preferred, others, defaultIdx
}
