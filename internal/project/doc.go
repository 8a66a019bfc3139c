// Package project manages the PlatformIO override config being edited.
//
// The override config (default platformio_override.ini) is an INI document.
// A directory counts as a project only while the marker project file
// (default platformio.ini) is present; the marker is existence-checked,
// never parsed. When the override config is missing the user may confirm
// creating a fresh empty one, which stays in memory until Save.
//
// The document is loaded once at start and written once at the end, so a
// failure anywhere before Save never corrupts the file on disk.
package project
