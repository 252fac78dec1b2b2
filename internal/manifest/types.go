package manifest

import (
	"slices"
	"time"
)

// Setting is a directive recognised in the SETTINGS section
type Setting string

// SettingPreferOnline asks the client to use the network when it is available
const SettingPreferOnline Setting = "prefer-online"

// ParseSetting maps a SETTINGS token to a known Setting
func ParseSetting(token string) (Setting, bool) {
	switch Setting(token) {
	case SettingPreferOnline:
		return SettingPreferOnline, true
	}
	return "", false
}

// Version is the revision header. A zero Date means the header had no date.
type Version struct {
	Revision int       `yaml:"revision" json:"revision"`
	Date     time.Time `yaml:"date,omitempty" json:"date,omitzero"`
}

// Manifest is the structured form of one manifest file
type Manifest struct {
	Version  Version   `yaml:"version" json:"version"`
	Cache    []string  `yaml:"cache,omitempty" json:"cache,omitempty"`
	Network  []string  `yaml:"network,omitempty" json:"network,omitempty"`
	Fallback []string  `yaml:"fallback,omitempty" json:"fallback,omitempty"`
	Settings []Setting `yaml:"settings,omitempty" json:"settings,omitempty"`
}

// HasSetting reports whether s is enabled
func (m *Manifest) HasSetting(s Setting) bool {
	return slices.Contains(m.Settings, s)
}

// Equal compares two manifests field by field, including list order.
// Nil and empty lists are equal; dates compare by instant.
func (m *Manifest) Equal(other *Manifest) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.Version.Revision == other.Version.Revision &&
		m.Version.Date.Equal(other.Version.Date) &&
		slices.Equal(m.Cache, other.Cache) &&
		slices.Equal(m.Network, other.Network) &&
		slices.Equal(m.Fallback, other.Fallback) &&
		slices.Equal(m.Settings, other.Settings)
}
