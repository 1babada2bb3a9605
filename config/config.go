// Package config loads emulator settings from TOML files.
package config

import (
	"github.com/BurntSushi/toml"

	"github.com/ezrec/x86sim/cpu"
)

// Config is the emulator and CLI configuration.
type Config struct {
	LogLevel   string            `toml:"log_level"`   // logrus level name.
	MaxSteps   int               `toml:"max_steps"`   // 0 is unlimited.
	StackLimit int               `toml:"stack_limit"` // Call stack depth, in cells.
	Language   string            `toml:"language"`    // Message language; empty uses the locale.
	Equates    map[string]string `toml:"equates"`     // Predefined equates.
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:   "warn",
		StackLimit: cpu.STACK_LIMIT,
		Equates:    map[string]string{},
	}
}

// Load overlays the TOML file at path onto the defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()
	if len(path) == 0 {
		return
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		err = ErrKeyUnknown(undecoded[0].String())
		return
	}

	if cfg.StackLimit <= 0 || cfg.MaxSteps < 0 {
		err = ErrValueInvalid
		return
	}

	return
}
