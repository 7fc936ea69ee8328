package scene

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads a scene description from a JSON file.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, fmt.Errorf("scene: read %s: %w", path, err)
	}

	var sc Scene
	if err := json.Unmarshal(data, &sc); err != nil {
		return Scene{}, fmt.Errorf("scene: parse %s: %w", path, err)
	}
	if len(sc.Objects) == 0 {
		return Scene{}, fmt.Errorf("scene: %s: no objects", path)
	}
	return sc, nil
}

// Save writes a scene description as indented JSON, so the built-in
// composition can be exported and edited as data.
func Save(path string, sc Scene) error {
	data, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
