// Package discovery provides mDNS-based discovery of OTA upload candidates.
//
// Boards flashed with ArduinoOTA or a PlatformIO espota target advertise
// themselves as "_arduino._tcp" services on the local network. This package
// browses for those advertisements and collects hostname, address, upload
// port, and board metadata from the TXT records.
//
// Discovered hosts are informational: they are listed alongside serial
// candidates by "pioport list --mdns" but never mixed into the interactive
// serial selection.
//
// # Usage Example
//
//	devices, err := discovery.ScanForDevices(10 * time.Second)
//	if err != nil {
//	    return err
//	}
//	for _, device := range devices {
//	    fmt.Println(device)
//	}
//
// # Network Requirements
//
//   - Requires multicast support on the network interface
//   - Devices must be on the same local network segment
//   - Firewall must allow mDNS (UDP port 5353)
//
// # Thread Safety
//
// This package is safe for concurrent use. Multiple discovery sessions can
// run simultaneously without interference.
package discovery
