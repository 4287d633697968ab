package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/localize/internal/domain/locale"
)

// Config holds the signal table and output settings for the localizer.
// The profile table is configuration data rather than code so new
// keyboard SKUs or firmware tags can be added without a rebuild.
type Config struct {
	// Profiles is the signal table in keyboard-SKU order.
	Profiles []locale.Profile `yaml:"profiles"`
	// EnvFile is the path of the shell-sourceable environment file.
	EnvFile string `yaml:"env_file"`
}

const (
	// DefaultEnvFile is where session-startup scripts expect the
	// environment exports.
	DefaultEnvFile = "/usr/local/var/localize/include"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600

	// countryCodeLength is the length of an ISO 3166-1 alpha-2 code.
	countryCodeLength = 2
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errNoProfiles is returned when the profile table is empty.
	errNoProfiles = errors.New("at least one profile must be configured")
)

// Default returns the built-in configuration: the compiled-in signal
// table and the standard environment file path.
func Default() *Config {
	return &Config{
		Profiles: locale.DefaultProfiles(),
		EnvFile:  DefaultEnvFile,
	}
}

// Load reads configuration from the provided path and validates it.
// An empty path means "no config file": the built-in defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the profile table and fills defaults for omitted fields.
// Profile rows must form a usable table: two-letter country codes,
// parseable language tags, non-empty timezones.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if len(cfg.Profiles) == 0 {
		return errNoProfiles
	}

	for i, p := range cfg.Profiles {
		if len(p.Country) != countryCodeLength {
			return fmt.Errorf("profile %d: country %q is not an ISO 3166-1 alpha-2 code", i, p.Country)
		}

		if _, err := language.Parse(p.Language); err != nil {
			return fmt.Errorf("profile %d: invalid language tag %q: %w", i, p.Language, err)
		}

		if p.Timezone == "" {
			return fmt.Errorf("profile %d: timezone must be provided", i)
		}
	}

	// Duplicate Apple tags are caught by table construction.
	if _, err := locale.NewTable(cfg.Profiles); err != nil {
		return fmt.Errorf("profile table: %w", err)
	}

	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
	}

	return nil
}

// Table builds the lookup table from the configured profiles.
func (c *Config) Table() (*locale.Table, error) {
	return locale.NewTable(c.Profiles)
}
