// Package config loads grant_ledger settings from an optional TOML file and the
// GRANT_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"grant_ledger/sdk"
)

const (
	DriverMemory = "memory"
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config is the process configuration.
type Config struct {
	Store   StoreConfig
	Address AddressConfig
	Log     LogConfig
}

// StoreConfig selects the state backend. Path is the snapshot file for the "file"
// driver and the database file for "sqlite".
type StoreConfig struct {
	Driver string `env:"GRANT_STORE_DRIVER"`
	Path   string `env:"GRANT_STORE_PATH"`
}

// AddressConfig feeds sdk.BasicValidator.
type AddressConfig struct {
	Prefix    string `env:"GRANT_ADDRESS_PREFIX"`
	MinLength int    `env:"GRANT_ADDRESS_MIN_LENGTH"`
	MaxLength int    `env:"GRANT_ADDRESS_MAX_LENGTH"`
}

type LogConfig struct {
	Level  string `env:"GRANT_LOG_LEVEL"`
	Format string `env:"GRANT_LOG_FORMAT"`
}

// fileConfig is the TOML key mapping.
type fileConfig struct {
	StoreDriver      string `toml:"store_driver"`
	StorePath        string `toml:"store_path"`
	AddressPrefix    string `toml:"address_prefix"`
	AddressMinLength int    `toml:"address_min_length"`
	AddressMaxLength int    `toml:"address_max_length"`
	LogLevel         string `toml:"log_level"`
	LogFormat        string `toml:"log_format"`
}

// Default keeps everything in memory and logs at info to the console.
func Default() Config {
	return Config{
		Store: StoreConfig{Driver: DriverMemory},
		Address: AddressConfig{
			MinLength: sdk.DefaultMinAddressLength,
			MaxLength: sdk.DefaultMaxAddressLength,
		},
		Log: LogConfig{Level: "info", Format: sdk.LogFormatConsole},
	}
}

// Load overlays the TOML file at path (skipped when empty) and then the environment
// on top of Default, and validates the result.
// Example payload: config.Load("grant_ledger.toml")
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) != "" {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// overlayFile only touches keys that are present in the file.
func overlayFile(cfg *Config, path string) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config: unknown key %q", undecoded[0].String())
	}

	if meta.IsDefined("store_driver") {
		cfg.Store.Driver = strings.TrimSpace(raw.StoreDriver)
	}
	if meta.IsDefined("store_path") {
		cfg.Store.Path = strings.TrimSpace(raw.StorePath)
	}
	if meta.IsDefined("address_prefix") {
		cfg.Address.Prefix = strings.TrimSpace(raw.AddressPrefix)
	}
	if meta.IsDefined("address_min_length") {
		cfg.Address.MinLength = raw.AddressMinLength
	}
	if meta.IsDefined("address_max_length") {
		cfg.Address.MaxLength = raw.AddressMaxLength
	}
	if meta.IsDefined("log_level") {
		cfg.Log.Level = strings.TrimSpace(raw.LogLevel)
	}
	if meta.IsDefined("log_format") {
		cfg.Log.Format = strings.TrimSpace(raw.LogFormat)
	}
	return nil
}

// Validate rejects settings no backend or validator could run with.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case DriverMemory:
	case DriverFile, DriverSQLite:
		if strings.TrimSpace(c.Store.Path) == "" {
			return fmt.Errorf("store driver %q requires a path", c.Store.Driver)
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}
	if c.Address.MinLength < 1 {
		return errors.New("address min length must be positive")
	}
	if c.Address.MaxLength < c.Address.MinLength {
		return fmt.Errorf("address max length %d below min length %d", c.Address.MaxLength, c.Address.MinLength)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", sdk.LogFormatConsole, sdk.LogFormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// Validator builds the address validator described by the config.
func (c Config) Validator() sdk.BasicValidator {
	return sdk.BasicValidator{
		Prefix:    c.Address.Prefix,
		MinLength: c.Address.MinLength,
		MaxLength: c.Address.MaxLength,
	}
}
