// Package config loads blastnh's TOML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config mirrors the TOML file layout.
type Config struct {
	Search SearchConfig `toml:"search"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

type SearchConfig struct {
	Matrix    string `toml:"matrix"`   // builtin name or path to an NCBI-format matrix
	Alphabet  string `toml:"alphabet"` // enumeration alphabet override
	WordSize  int    `toml:"word_size"`
	Threshold int    `toml:"threshold"`
	Threads   int    `toml:"threads"` // 0 => all CPUs
}

type OutputConfig struct {
	Format string `toml:"format"`
	Header bool   `toml:"header"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Search: SearchConfig{Matrix: "blosum62", WordSize: 3, Threshold: 11},
		Output: OutputConfig{Format: "text", Header: true},
		Log:    LogConfig{Level: "warn"},
	}
}

// ErrUnknownKey reports keys in the file that Config has no field for.
var ErrUnknownKey = errors.New("unknown config key")

// Load decodes path over Default(), so keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return cfg, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, und[0].String())
	}
	return cfg, nil
}
