// Package config loads pyrite.toml, the per-project manifest. The manifest
// marks the project root and optionally pins analysis modes for every file
// under it. A bare file is valid: all sections are optional.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Manifest is a located and parsed pyrite.toml.
type Manifest struct {
	Path   string
	Root   string
	Config Config
}

// Config mirrors the TOML document.
type Config struct {
	Analysis AnalysisConfig `toml:"analysis"`
}

// AnalysisConfig selects project-wide modes. Infer wins over Strict, Strict
// over Declare; local per-file comments fill in below these.
type AnalysisConfig struct {
	Infer   bool `toml:"infer"`
	Strict  bool `toml:"strict"`
	Declare bool `toml:"declare"`
}

// Load parses the manifest at path. Unknown keys are an error so that a
// typo like "stric" cannot silently disable a mode.
func Load(path string) (Config, error) {
	var cfg Config
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// LoadManifest discovers and parses the manifest governing startDir.
// ok is false when no pyrite.toml exists on the walk up to the filesystem
// root; that is not an error.
func LoadManifest(startDir string) (*Manifest, bool, error) {
	manifestPath, ok, err := FindPyriteToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := Load(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &Manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}
