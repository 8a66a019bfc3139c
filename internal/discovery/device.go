package discovery

import (
	"fmt"
	"time"
)

// Device represents an OTA upload candidate discovered on the network
type Device struct {
	// Hostname is the mDNS hostname (e.g., "esp32-livingroom.local.")
	Hostname string

	// IP is the device address (IPv4 preferred)
	IP string

	// Port is the espota upload port (typically 3232 on ESP32, 8266 on ESP8266)
	Port int

	// Board is the board identifier from the "board" TXT record, if advertised
	Board string

	// Auth reports whether the device requires an OTA upload password
	// ("auth_upload=yes" TXT record)
	Auth bool

	// Metadata contains the raw mDNS TXT record data
	Metadata map[string]string

	// DiscoveredAt is when the device was discovered
	DiscoveredAt time.Time
}

// String returns a human-readable string representation of the device
func (d *Device) String() string {
	if d.Board != "" {
		return fmt.Sprintf("%s (%s) at %s:%d", d.Hostname, d.Board, d.IP, d.Port)
	}
	return fmt.Sprintf("%s at %s:%d", d.Hostname, d.IP, d.Port)
}

// UploadTarget returns the value to place in upload_port for an OTA upload
// to this device (espota expects host or IP).
func (d *Device) UploadTarget() string {
	return d.IP
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (d *Device) GetMetadata(key string) string {
	if d.Metadata == nil {
		return ""
	}
	return d.Metadata[key]
}
