// Package config loads staticgen settings from an optional staticgen.toml.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config controls generation. Every field has a default so the tool runs
// without any configuration file.
type Config struct {
	// TraitCrate is the crate that defines the conversion traits. Generated
	// impls refer to ::<TraitCrate>::ToBoundedStatic and
	// ::<TraitCrate>::IntoBoundedStatic.
	TraitCrate string `toml:"trait_crate"`

	// Derive is the derive marker that selects items for generation.
	Derive string `toml:"derive"`

	// OutputSuffix is appended to the input file stem to name the generated
	// file, e.g. types.rs -> types_static.rs.
	OutputSuffix string `toml:"output_suffix"`

	// Features selects which builtin impl groups the prelude emits.
	Features []string `toml:"features"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		TraitCrate:   "bounded_static",
		Derive:       "ToStatic",
		OutputSuffix: "_static",
		Features:     []string{"core", "alloc", "collections", "std"},
	}
}

// Load reads path over the defaults. A missing file is not an error when
// path is the conventional name; an unreadable or malformed file is.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, err
		}
		return cfg, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) != 0 {
		return cfg, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.validate()
}

func (cfg Config) validate() error {
	if cfg.TraitCrate == "" {
		return fmt.Errorf("trait_crate must not be empty")
	}
	if cfg.Derive == "" {
		return fmt.Errorf("derive must not be empty")
	}
	if cfg.OutputSuffix == "" {
		return fmt.Errorf("output_suffix must not be empty")
	}
	return nil
}
