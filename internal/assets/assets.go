package assets

import (
	_ "embed"
	"errors"
	"os"
	"path/filepath"
)

//go:embed default-config.yaml
var defaultConfig []byte

//go:embed config.schema.json
var schema []byte

// DefaultConfigName is the file WriteDefaultConfigIfMissing creates.
const DefaultConfigName = "config.yaml"

// Schema returns the JSON Schema settings files are validated against.
func Schema() []byte { return schema }

// DefaultConfig returns the commented default settings file.
func DefaultConfig() []byte { return defaultConfig }

// WriteDefaultConfigIfMissing writes config.yaml to targetDir if it does
// not exist and returns its path either way.
func WriteDefaultConfigIfMissing(targetDir string) (string, error) {
	if targetDir == "" {
		return "", errors.New("empty targetDir")
	}
	p := filepath.Join(targetDir, DefaultConfigName)
	return p, WriteDefaultConfigFileIfMissing(p)
}

// WriteDefaultConfigFileIfMissing writes the default settings to path,
// creating its directory, unless path already exists.
func WriteDefaultConfigFileIfMissing(path string) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, defaultConfig, 0o644)
}
