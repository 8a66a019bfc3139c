package devices

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/muurk/pioport/internal/logging"
)

// At returns the element of ports at idx. Negative indices count from the
// end, matching the original tool's list semantics. The second return value
// is false when idx is out of range.
func At(ports []string, idx int) (string, bool) {
	if idx < 0 {
		idx += len(ports)
	}
	if idx < 0 || idx >= len(ports) {
		return "", false
	}
	return ports[idx], true
}

// Pick resolves free-form user input against ports.
//
// Blank or all-whitespace input means "no selection" and returns false.
// Anything else must parse as an integer index for At; parse failures are
// logged and return false. Pick never returns an empty string with ok true.
func Pick(ports []string, input string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	logging.Debug("Converting user input to int", zap.String("input", input))
	idx, err := strconv.Atoi(input)
	if err != nil {
		logging.Error("Failed to convert user input '" + input + "' to int, bailing.")
		logging.Debug("Conversion error", zap.Error(err))
		return "", false
	}

	logging.Debug("Pulling index from device list",
		zap.Int("index", idx),
		zap.Strings("ports", ports),
	)
	port, ok := At(ports, idx)
	if !ok {
		logging.Debug("Index out of range", zap.Int("index", idx), zap.Int("len", len(ports)))
		return "", false
	}
	logging.Debug("Returning device", zap.String("port", port))
	return port, true
}
