package presets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PresetSearchPaths returns user preset directories in precedence order.
func PresetSearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".reelpath", "presets"))
	}

	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "reelpath", "presets"))
	}

	return paths
}

// LoadPreset reads a single preset file from disk.
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read preset %s: %w", path, err)
	}

	preset, err := parsePreset(data)
	if err != nil {
		return nil, fmt.Errorf("parse preset %s: %w", path, err)
	}
	preset.Source = path
	return preset, nil
}

// LoadPresetsFromDir loads all presets from a directory. A missing
// directory is not an error.
func LoadPresetsFromDir(dir string) ([]*Preset, error) {
	if strings.TrimSpace(dir) == "" {
		return []*Preset{}, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []*Preset{}, nil
		}
		return nil, fmt.Errorf("read presets dir %s: %w", dir, err)
	}

	presets := make([]*Preset, 0)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		preset, err := LoadPreset(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		presets = append(presets, preset)
	}

	return presets, nil
}

// LoadPresets loads user presets from the search paths followed by the
// builtins, with first-hit precedence per name.
func LoadPresets(projectDir string) ([]*Preset, error) {
	seen := make(map[string]struct{})
	resolved := make([]*Preset, 0)

	add := func(batch []*Preset) {
		for _, preset := range batch {
			if _, exists := seen[preset.Name]; exists {
				continue
			}
			seen[preset.Name] = struct{}{}
			resolved = append(resolved, preset)
		}
	}

	for _, path := range PresetSearchPaths(projectDir) {
		batch, err := LoadPresetsFromDir(path)
		if err != nil {
			return nil, err
		}
		add(batch)
	}

	builtins, err := LoadBuiltinPresets()
	if err != nil {
		return nil, err
	}
	add(builtins)

	return resolved, nil
}
