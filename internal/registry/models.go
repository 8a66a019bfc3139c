package registry

import "time"

// Registry represents the entire user registry file.
// This stores user-defined metadata for serial ports and tool preferences.
type Registry struct {
	Version     int                  `yaml:"version"`
	Ports       map[string]*PortMeta `yaml:"ports,omitempty"` // Keyed by device path
	Preferences *Preferences         `yaml:"preferences,omitempty"`
}

// PortMeta represents user-defined metadata for a single serial port,
// keyed by the device path in the Registry.
type PortMeta struct {
	Nickname string    `yaml:"nickname,omitempty"`  // User-friendly name
	LastUsed time.Time `yaml:"last_used,omitempty"` // Last time this port was selected
	UseCount int       `yaml:"use_count,omitempty"` // How often this port was selected
}

// Preferences represents tool-wide user preferences.
type Preferences struct {
	// IgnorePorts lists extra device paths hidden from non-debug listings,
	// on top of the built-in ignore list.
	IgnorePorts []string `yaml:"ignore_ports,omitempty"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     1,
		Ports:       make(map[string]*PortMeta),
		Preferences: &Preferences{},
	}
}

// EnsurePort ensures a port entry exists in the registry.
// Returns the entry (existing or newly created).
func (r *Registry) EnsurePort(path string) *PortMeta {
	if r.Ports == nil {
		r.Ports = make(map[string]*PortMeta)
	}

	if meta, exists := r.Ports[path]; exists {
		return meta
	}

	meta := &PortMeta{}
	r.Ports[path] = meta
	return meta
}

// Touch records that a port was selected just now.
func (r *Registry) Touch(path string) {
	meta := r.EnsurePort(path)
	meta.LastUsed = time.Now()
	meta.UseCount++
}

// SetNickname sets a user-friendly nickname for a port.
func (r *Registry) SetNickname(path, nickname string) {
	r.EnsurePort(path).Nickname = nickname
}

// Nickname returns the nickname for a port, or empty string when none is set.
func (r *Registry) Nickname(path string) string {
	if meta, exists := r.Ports[path]; exists {
		return meta.Nickname
	}
	return ""
}

// IgnoredPorts returns the user's extra ignore list, never nil.
func (r *Registry) IgnoredPorts() []string {
	if r.Preferences == nil {
		return nil
	}
	return r.Preferences.IgnorePorts
}
