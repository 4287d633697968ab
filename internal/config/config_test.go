package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/localize/internal/domain/locale"
)

// TestValidate checks required fields and format validations for the profile table.
func TestValidate(t *testing.T) {
	t.Parallel()

	// Missing profiles.
	cfg := new(Config)

	err := Validate(cfg)
	require.Error(t, err)

	// Bad country code.
	cfg = &Config{
		Profiles: []locale.Profile{
			{Country: "DEU", Language: "de", Timezone: "Europe/Berlin"},
		},
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Bad language tag.
	cfg = &Config{
		Profiles: []locale.Profile{
			{Country: "DE", Language: "not a language", Timezone: "Europe/Berlin"},
		},
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Missing timezone.
	cfg = &Config{
		Profiles: []locale.Profile{
			{Country: "DE", Language: "de"},
		},
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Duplicate Apple tags.
	cfg = &Config{
		Profiles: []locale.Profile{
			{Country: "DE", Language: "de", Timezone: "Europe/Berlin", AppleTag: "de"},
			{Country: "AT", Language: "de", Timezone: "Europe/Vienna", AppleTag: "de"},
		},
	}

	err = Validate(cfg)
	require.Error(t, err)

	// Okay; env file path is defaulted.
	cfg = &Config{
		Profiles: []locale.Profile{
			{Country: "DE", Language: "de", Timezone: "Europe/Berlin", AppleTag: "de"},
		},
	}

	err = Validate(cfg)
	require.NoError(t, err)
	require.Equal(t, DefaultEnvFile, cfg.EnvFile)
}

// TestDefaultIsValid guards the built-in table against drift.
func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default()))
}

// TestLoadWithoutPathUsesDefaults ensures an empty path means the
// built-in configuration rather than an error.
func TestLoadWithoutPathUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

// TestSaveLoadRoundtrip ensures the profile table is persisted and loaded back correctly.
func TestSaveLoadRoundtrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.yaml")

	cfg := &Config{
		Profiles: []locale.Profile{
			{Country: "DE", Language: "de", Timezone: "Europe/Berlin", AppleTag: "de"},
			{Country: "JP", Language: "ja", Timezone: "Asia/Tokyo"},
		},
		EnvFile: filepath.Join(dir, "include"),
	}

	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg.Profiles, loaded.Profiles)
	require.Equal(t, cfg.EnvFile, loaded.EnvFile)
}
