// Package config loads the tool's own settings.
//
// Settings come from built-in defaults overlaid by up to two optional INI
// files (section "settings"): platformio_auto_config.cfg in the current
// directory, then ~/.config/platformio_auto_config.cfg. Later files override
// earlier ones per key; an explicit --section flag overrides both.
//
// The three settings are the marker project file name, the override config
// file name, and the section to edit:
//
//	[settings]
//	platformio_file = platformio.ini
//	config_file = platformio_override.ini
//	section = common
package config
