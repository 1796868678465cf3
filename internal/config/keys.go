package config

import (
	"fmt"
	"os"
	"strings"
)

// LoadKeys merges the inline keys with the keys file, when one is
// configured. File format: one key per line, blank lines and '#' comments
// ignored.
func LoadKeys(cfg AuthConfig) ([]string, error) {
	keys := append([]string(nil), cfg.Keys...)
	path := strings.TrimSpace(cfg.KeysFile)
	if path == "" {
		return keys, nil
	}
	fileKeys, err := ReadKeysFile(path)
	if err != nil {
		return nil, err
	}
	return append(keys, fileKeys...), nil
}

// ReadKeysFile parses a keys file.
func ReadKeysFile(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 - operator-configured path
	if err != nil {
		return nil, fmt.Errorf("config: read keys file %s: %w", path, err)
	}
	var keys []string
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		keys = append(keys, trimmed)
	}
	return keys, nil
}
