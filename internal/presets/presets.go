// Package presets provides named destination-template presets and the
// preset:NAME indirection used by configuration values.
package presets

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named, pre-defined destination template.
type Preset struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Template    string `yaml:"template"`
	Source      string `yaml:"-"` // file path or "builtin"
}

// Validate checks that a preset is usable.
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset name is required")
	}
	if strings.TrimSpace(p.Template) == "" {
		return fmt.Errorf("preset %q has no template", p.Name)
	}
	return nil
}

func parsePreset(data []byte) (*Preset, error) {
	var preset Preset
	if err := yaml.Unmarshal(data, &preset); err != nil {
		return nil, err
	}

	preset.Name = strings.ToLower(strings.TrimSpace(preset.Name))
	if err := preset.Validate(); err != nil {
		return nil, err
	}
	return &preset, nil
}

// Names returns the preset names in sorted order.
func Names(presets []*Preset) []string {
	names := make([]string, 0, len(presets))
	for _, preset := range presets {
		names = append(names, preset.Name)
	}
	sort.Strings(names)
	return names
}

// Find returns the preset with the given name, or nil.
func Find(presets []*Preset, name string) *Preset {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, preset := range presets {
		if preset.Name == name {
			return preset
		}
	}
	return nil
}

// PresetName returns the normalized preset name a raw destination-template
// setting refers to: "preset:NAME" (any case) yields NAME, anything else
// is lowercased and trimmed. Callers use it only after ResolveTemplate
// reported that the value resolved through the catalog.
func PresetName(raw string) string {
	candidate := strings.ToLower(strings.TrimSpace(raw))
	return strings.TrimSpace(strings.TrimPrefix(candidate, "preset:"))
}

// ResolveTemplate maps a raw destination-template setting to a literal
// template string. A "preset:NAME" reference or a bare known preset name
// resolves through the catalog; anything else passes through verbatim.
// An unknown preset name is a configuration error, not template syntax.
func ResolveTemplate(raw string, presets []*Preset) (string, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return "", fmt.Errorf("destination template cannot be empty")
	}

	lower := strings.ToLower(candidate)
	name := ""
	switch {
	case strings.HasPrefix(lower, "preset:"):
		name = strings.TrimSpace(lower[len("preset:"):])
	case Find(presets, lower) != nil:
		name = lower
	}

	if name == "" {
		return candidate, nil
	}

	preset := Find(presets, name)
	if preset == nil {
		return "", fmt.Errorf("unknown template preset %q (available: %s)",
			name, strings.Join(Names(presets), ", "))
	}
	return preset.Template, nil
}
