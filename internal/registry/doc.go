// Package registry manages the user's port registry file.
//
// The registry is a YAML file under ~/.config/pioport that stores
// user-defined metadata for serial ports: nicknames shown in listings,
// usage history recorded after a successful write, and extra device paths
// to hide from non-debug listings.
//
// The registry is auxiliary state. It is loaded lazily, a missing file
// yields a fresh default registry, and callers treat load/save failures as
// warnings so the core selection flow works identically without one.
// Saves are atomic (temp file plus rename).
package registry
