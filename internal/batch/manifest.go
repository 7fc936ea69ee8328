package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry records one rendered scene in the output manifest.
type ManifestEntry struct {
	Scene   string `json:"scene"`
	Image   string `json:"image"`
	Objects int    `json:"objects"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// WriteManifest writes manifest.json describing a finished batch run.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Scene:   r.Scene,
			Image:   r.Output,
			Objects: r.Objects,
			Success: r.Success,
			Error:   r.Error,
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
