// Package config loads the handclass HCL configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/handclass/poker"
)

// DefaultFile is the configuration file read when none is given
const DefaultFile = "handclass.hcl"

// Config represents the complete CLI configuration
type Config struct {
	LogLevel string       `hcl:"log_level,optional" validate:"oneof=debug info warn error"`
	Color    *bool        `hcl:"color,optional"`
	Deal     *DealConfig  `hcl:"deal,block" validate:"required"`
	Tally    *TallyConfig `hcl:"tally,block" validate:"required"`
}

// DealConfig controls the deal command
type DealConfig struct {
	Seed  int64 `hcl:"seed,optional"`
	Hands int   `hcl:"hands,optional" validate:"gte=1"`
}

// TallyConfig controls the tally survey
type TallyConfig struct {
	Seed    int64  `hcl:"seed,optional"`
	Hands   int    `hcl:"hands,optional" validate:"gte=1"`
	Workers int    `hcl:"workers,optional" validate:"gte=1,lte=256"`
	Report  string `hcl:"report,optional"`
}

var validate = validator.New()

// Default returns the configuration used when no file is present
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields Default().
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Color == nil {
		color := true
		c.Color = &color
	}
	if c.Deal == nil {
		c.Deal = &DealConfig{}
	}
	if c.Deal.Hands == 0 {
		c.Deal.Hands = 1
	}
	if c.Tally == nil {
		c.Tally = &TallyConfig{}
	}
	if c.Tally.Hands == 0 {
		c.Tally.Hands = 100000
	}
	if c.Tally.Workers == 0 {
		c.Tally.Workers = 4
	}
}

// ColorEnabled reports whether output should be styled
func (c *Config) ColorEnabled() bool {
	return c.Color == nil || *c.Color
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	// One deck per deal command
	if maxHands := poker.DeckSize / poker.HandSize; c.Deal.Hands > maxHands {
		return fmt.Errorf("invalid configuration: deal hands %d exceeds the %d hands in a deck", c.Deal.Hands, maxHands)
	}

	return nil
}
