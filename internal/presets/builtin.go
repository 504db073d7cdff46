package presets

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// LoadBuiltinPresets returns the presets bundled with reelpath. They
// follow the official naming docs of the media servers they target.
func LoadBuiltinPresets() ([]*Preset, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("read builtin presets: %w", err)
	}

	presets := make([]*Preset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin preset %s: %w", entry.Name(), err)
		}
		preset, err := parsePreset(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin preset %s: %w", entry.Name(), err)
		}
		preset.Source = "builtin"
		presets = append(presets, preset)
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return presets, nil
}
