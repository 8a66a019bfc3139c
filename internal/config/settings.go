package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"

	"github.com/muurk/pioport/internal/logging"
)

const (
	// ScriptConfigName is the settings file consulted in the current
	// directory and under ~/.config.
	ScriptConfigName = "platformio_auto_config.cfg"

	// settingsSection is the INI section holding the script settings.
	settingsSection = "settings"
)

// Built-in defaults, used when no settings file defines a key.
const (
	DefaultPlatformIOFile = "platformio.ini"
	DefaultConfigFile     = "platformio_override.ini"
	DefaultSection        = "common"
)

// Settings holds the tool's own configuration. Read-only after Load.
type Settings struct {
	// PlatformIOFile is the marker file whose presence identifies a
	// PlatformIO project directory. Never parsed.
	PlatformIOFile string

	// ConfigFile is the override config file whose upload_port is edited.
	ConfigFile string

	// Section is the override config section to edit.
	Section string
}

// Load builds Settings from defaults, the optional settings files, and the
// CLI section override.
//
// Candidate files are read in order: ./platformio_auto_config.cfg, then
// ~/.config/platformio_auto_config.cfg. Both are optional. A key set by a
// later file overrides the same key from an earlier one. A non-empty
// sectionOverride wins over everything.
func Load(sectionOverride string) (*Settings, error) {
	paths := []string{ScriptConfigName}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", ScriptConfigName))
	}
	return loadFrom(paths, sectionOverride)
}

func loadFrom(paths []string, sectionOverride string) (*Settings, error) {
	settings := &Settings{
		PlatformIOFile: DefaultPlatformIOFile,
		ConfigFile:     DefaultConfigFile,
		Section:        DefaultSection,
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		file, err := ini.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
		}
		logging.Debug("Read script config", zap.String("path", path))

		section := file.Section(settingsSection)
		if v := section.Key("platformio_file").String(); v != "" {
			settings.PlatformIOFile = v
		}
		if v := section.Key("config_file").String(); v != "" {
			settings.ConfigFile = v
		}
		if v := section.Key("section").String(); v != "" {
			settings.Section = v
		}
	}

	if sectionOverride != "" {
		settings.Section = sectionOverride
	}

	return settings, nil
}
