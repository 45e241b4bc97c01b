package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/slightlynybbled/brainfuck/bfi"
	"github.com/slightlynybbled/brainfuck/engine"
)

// fileConfig is the TOML shape accepted by -config:
//
//	tape_length = 2000
//	variant = "classic"
//	step_limit = 1000000
type fileConfig struct {
	TapeLength int    `toml:"tape_length"`
	Variant    string `toml:"variant"`
	StepLimit  uint64 `toml:"step_limit"`
}

func loadConfig(path string) (*fileConfig, error) {
	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if cfg.Variant != "" {
		if _, err := engine.ParseVariant(cfg.Variant); err != nil {
			return nil, err
		}
	}
	return &cfg, nil
}

func (c *fileConfig) options() []bfi.Option {
	var opts []bfi.Option
	if c.TapeLength > 0 {
		opts = append(opts, bfi.WithTapeLength(c.TapeLength))
	}
	if c.Variant != "" {
		v, _ := engine.ParseVariant(c.Variant)
		opts = append(opts, bfi.WithVariant(v))
	}
	if c.StepLimit > 0 {
		opts = append(opts, bfi.WithStepLimit(c.StepLimit))
	}
	return opts
}
