package config

import "fmt"

// Output formats understood by the console reporters.
const (
	FormatPlain = "plain"
	FormatTable = "table"
	FormatJSON  = "json"
)

type Config struct {
	Output Output `yaml:"output" toml:"output" json:"output"`
	Log    Log    `yaml:"log" toml:"log" json:"log"`
}

type Output struct {
	Format    string `yaml:"format" toml:"format" json:"format,omitempty"`
	Highlight *bool  `yaml:"highlight" toml:"highlight" json:"highlight,omitempty"`
}

// HighlightEnabled reports whether matches should be highlighted.
func (o Output) HighlightEnabled() bool { return o.Highlight != nil && *o.Highlight }

type Log struct {
	File       string `yaml:"file" toml:"file" json:"file,omitempty"`
	MaxSize    int    `yaml:"max_size" toml:"max_size" json:"max_size,omitempty"`
	MaxBackups int    `yaml:"max_backups" toml:"max_backups" json:"max_backups,omitempty"`
	MaxAge     int    `yaml:"max_age" toml:"max_age" json:"max_age,omitempty"`
	Compress   *bool  `yaml:"compress" toml:"compress" json:"compress,omitempty"`
}

func (l Log) CompressEnabled() bool { return l.Compress != nil && *l.Compress }

func boolPtr(b bool) *bool { return &b }

// Defaults returns the settings used when no file overrides them.
func Defaults() Config {
	return Config{
		Output: Output{Format: FormatPlain, Highlight: boolPtr(false)},
		Log:    Log{MaxSize: 10, MaxBackups: 3, MaxAge: 28, Compress: boolPtr(true)},
	}
}

func ValidateFormat(format string) error {
	switch format {
	case FormatPlain, FormatTable, FormatJSON:
		return nil
	}
	return fmt.Errorf("unknown output format %q (want %s, %s or %s)", format, FormatPlain, FormatTable, FormatJSON)
}
