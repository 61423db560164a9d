package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var current = Defaults()

func Get() Config { return current }

// LoadFromFiles overlays every settings file onto Defaults in sorted
// order. Files that are neither YAML nor TOML are rejected.
func LoadFromFiles(files []string) (Config, error) {
	sorted, err := sortedSettings(files)
	if err != nil {
		return Config{}, err
	}
	merged := Defaults()
	for _, f := range sorted {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		part, err := decode(f, b)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		merged = mergeConfig(merged, part)
	}
	if err := ValidateFormat(merged.Output.Format); err != nil {
		return Config{}, err
	}
	current = merged
	return merged, nil
}

// FilesInDir lists the settings files directly inside dir. A missing
// directory yields no files.
func FilesInDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !isSettingsFile(e.Name()) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func decode(name string, b []byte) (Config, error) {
	var part Config
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		md, err := toml.Decode(string(b), &part)
		if err != nil {
			return Config{}, err
		}
		if und := md.Undecoded(); len(und) > 0 {
			return Config{}, fmt.Errorf("unknown key %q", und[0].String())
		}
		return part, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&part); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return part, nil
}

// IsYAML reports whether name has a YAML extension.
func IsYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func isSettingsFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml", ".toml":
		return true
	}
	return false
}

func sortedSettings(files []string) ([]string, error) {
	out := make([]string, 0, len(files))
	for _, f := range files {
		if !isSettingsFile(f) {
			return nil, fmt.Errorf("%s: unsupported settings file, want .yaml, .yml or .toml", f)
		}
		out = append(out, f)
	}
	sort.Strings(out)
	return out, nil
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.Output.Format != "" {
		out.Output.Format = overlay.Output.Format
	}
	if overlay.Output.Highlight != nil {
		out.Output.Highlight = overlay.Output.Highlight
	}
	out.Log = mergeLog(out.Log, overlay.Log)
	return out
}

func mergeLog(a, b Log) Log {
	out := a
	if b.File != "" {
		out.File = b.File
	}
	if b.MaxSize != 0 {
		out.MaxSize = b.MaxSize
	}
	if b.MaxBackups != 0 {
		out.MaxBackups = b.MaxBackups
	}
	if b.MaxAge != 0 {
		out.MaxAge = b.MaxAge
	}
	if b.Compress != nil {
		out.Compress = b.Compress
	}
	return out
}
