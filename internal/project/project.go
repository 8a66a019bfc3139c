package project

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/ini.v1"

	"github.com/muurk/pioport/internal/config"
)

const uploadPortKey = "upload_port"

var (
	// ErrNotProjectDir indicates neither the override config nor the
	// marker project file exists in the current directory.
	ErrNotProjectDir = errors.New("you're not in a platformio dir")

	// ErrNotConfirmed indicates the user declined creating a new override
	// config file.
	ErrNotConfirmed = errors.New("user didn't confirm")
)

// Config is the in-memory override config being edited: the parsed INI
// document, the path it is persisted to, and the section under edit.
type Config struct {
	file    *ini.File
	path    string
	section string
}

// Load opens the override config named by the settings, or offers to create
// a new one.
//
// When the override file is absent: a missing marker project file is
// ErrNotProjectDir; otherwise confirm is asked whether to create a new
// empty document (in memory only - nothing is persisted until Save), and a
// negative answer is ErrNotConfirmed. The target section is ensured present
// in every success path.
func Load(settings *config.Settings, confirm func(prompt string) bool) (*Config, error) {
	cfg := &Config{
		path:    settings.ConfigFile,
		section: settings.Section,
	}

	if _, err := os.Stat(settings.ConfigFile); err != nil {
		if _, err := os.Stat(settings.PlatformIOFile); err != nil {
			return nil, fmt.Errorf("%w, quitting", ErrNotProjectDir)
		}
		prompt := fmt.Sprintf("Config file %s doesn't exist, do you want to create one? (y|yes) ", settings.ConfigFile)
		if !confirm(prompt) {
			return nil, fmt.Errorf("%w, bailing", ErrNotConfirmed)
		}
		cfg.file = ini.Empty()
	} else {
		file, err := ini.Load(settings.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", settings.ConfigFile, err)
		}
		cfg.file = file
	}

	// Ensure the target section exists before selection begins.
	cfg.file.Section(cfg.section)

	return cfg, nil
}

// Path returns the override config file path.
func (c *Config) Path() string {
	return c.path
}

// Section returns the section name under edit.
func (c *Config) Section() string {
	return c.section
}

// UploadPort returns the currently configured upload port in the target
// section, or empty string when unset.
func (c *Config) UploadPort() string {
	return c.file.Section(c.section).Key(uploadPortKey).String()
}

// SetUploadPort sets upload_port in the target section. Callers never pass
// an empty port; the selection loop only exits with a non-empty device.
func (c *Config) SetUploadPort(port string) {
	c.file.Section(c.section).Key(uploadPortKey).SetValue(port)
}

// Save persists the whole document to the override config path, truncating
// whatever was there. Write errors propagate untransformed.
func (c *Config) Save() error {
	handle, err := os.Create(c.path)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", c.path, err)
	}
	defer handle.Close()

	if _, err := c.file.WriteTo(handle); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.path, err)
	}
	return nil
}
