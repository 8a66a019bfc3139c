// Package devices enumerates serial device candidates and resolves user
// selections against the candidate list.
//
// Enumeration is macOS-only: it lists /dev entries with the "tty." prefix in
// directory order, optionally filtering a fixed set of known-noise entries
// (Bluetooth, WLAN debug, debug console) plus user-configured ignores.
// Paths containing "usbserial" are preferred candidates; the last preferred
// entry is the default selection offered at the prompt.
//
// The package also wraps go.bug.st/serial's enumerator for USB hardware
// metadata (VID:PID, serial number) used by informational listings.
package devices
