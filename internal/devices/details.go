package devices

import (
	"fmt"

	"go.bug.st/serial/enumerator"
)

// USBDetails returns hardware metadata for connected USB serial ports,
// keyed by device path. Ports without USB metadata (Bluetooth, pseudo
// terminals) are not included.
func USBDetails() (map[string]*enumerator.PortDetails, error) {
	list, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate port details: %w", err)
	}

	details := make(map[string]*enumerator.PortDetails, len(list))
	for _, port := range list {
		if !port.IsUSB {
			continue
		}
		details[port.Name] = port
	}
	return details, nil
}

// FormatUSBDetails renders the interesting fields of a port's USB metadata
// on one line, e.g. "VID:PID 0403:6001 serial AB12CD34".
func FormatUSBDetails(d *enumerator.PortDetails) string {
	if d == nil || !d.IsUSB {
		return ""
	}
	out := fmt.Sprintf("VID:PID %s:%s", d.VID, d.PID)
	if d.SerialNumber != "" {
		out += " serial " + d.SerialNumber
	}
	return out
}
