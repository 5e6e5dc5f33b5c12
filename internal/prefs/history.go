package prefs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// MaxHistory caps the number of command lines kept between runs.
const MaxHistory = 200

// LoadHistory reads saved command lines, oldest first. A missing file is an
// empty history.
func LoadHistory(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var lines []string
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, fmt.Errorf("decode history %s: %w", path, err)
	}
	return lines, nil
}

// SaveHistory writes the newest MaxHistory lines through a temp file.
func SaveHistory(path string, lines []string) error {
	if len(lines) > MaxHistory {
		lines = lines[len(lines)-MaxHistory:]
	}
	if lines == nil {
		lines = []string{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(lines, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
