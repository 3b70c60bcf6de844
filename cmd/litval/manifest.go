package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"litval/internal/literal"
)

// litval.toml lets a project pin decode defaults:
//
//	[decode]
//	wide128 = true
//	default-int = "i32"
//	default-float = "f64"
type manifestConfig struct {
	Decode decodeConfig `toml:"decode"`
}

type decodeConfig struct {
	Wide128      bool   `toml:"wide128"`
	DefaultInt   string `toml:"default-int"`
	DefaultFloat string `toml:"default-float"`
}

// findLitvalToml walks up from startDir looking for litval.toml.
func findLitvalToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "litval.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return cfg, nil
}

// decodeOptions resolves literal.Options from the nearest manifest.
// Absence of a manifest is not an error: defaults apply.
func decodeOptions(startDir string) (literal.Options, error) {
	path, ok, err := findLitvalToml(startDir)
	if err != nil || !ok {
		return literal.Options{}, err
	}
	cfg, err := loadManifestConfig(path)
	if err != nil {
		return literal.Options{}, err
	}
	return optionsFromConfig(path, cfg)
}

func optionsFromConfig(path string, cfg manifestConfig) (literal.Options, error) {
	opts := literal.Options{Wide128: cfg.Decode.Wide128}
	if s := cfg.Decode.DefaultInt; s != "" {
		t, ok := literal.ParseIntType(s)
		if !ok || t == literal.IntNone {
			return literal.Options{}, fmt.Errorf("%s: unknown default-int type %q", path, s)
		}
		opts.DefaultInt = t
	}
	if s := cfg.Decode.DefaultFloat; s != "" {
		t, ok := literal.ParseFloatType(s)
		if !ok || t == literal.FloatNone {
			return literal.Options{}, fmt.Errorf("%s: unknown default-float type %q", path, s)
		}
		opts.DefaultFloat = t
	}
	return opts, nil
}
