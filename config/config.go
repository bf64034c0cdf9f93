//
// config.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package config implements the tlmul configuration. The
// configuration is layered: built-in defaults, an optional
// configuration file, TLMUL_ environment variables, and command line
// flags bound to the configuration keys.
package config

import (
	"fmt"
	"strings"

	"github.com/markkurossi/twolevel/bitvec"
	"github.com/markkurossi/twolevel/hwgen"
	"github.com/markkurossi/twolevel/logging"
	"github.com/markkurossi/twolevel/report"
	"github.com/spf13/viper"
)

// Default operands.
const (
	DefaultMultiplier   = "10001011"
	DefaultMultiplicand = "01011011"
)

// EnvPrefix is the prefix of the configuration environment variables.
const EnvPrefix = "TLMUL"

// Config defines the tlmul configuration.
type Config struct {
	Multiplier   string      `mapstructure:"multiplier"`
	Multiplicand string      `mapstructure:"multiplicand"`
	TwoLevel     bool        `mapstructure:"twolevel"`
	Netlist      bool        `mapstructure:"netlist"`
	Trace        TraceConfig `mapstructure:"trace"`
	Log          LogConfig   `mapstructure:"log"`
	HWGen        HWGenConfig `mapstructure:"hwgen"`
	Sweep        SweepConfig `mapstructure:"sweep"`
}

// TraceConfig defines the trace output.
type TraceConfig struct {
	Format string `mapstructure:"format"`
	Style  string `mapstructure:"style"`
}

// LogConfig defines the diagnostics logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
	JSON  bool   `mapstructure:"json"`
}

// HWGenConfig defines the VHDL generator parameters.
type HWGenConfig struct {
	N     int    `mapstructure:"width"`
	M     int    `mapstructure:"mdwidth"`
	Adder string `mapstructure:"adder"`
	Dir   string `mapstructure:"dir"`
}

// SweepConfig defines the randomized cross-check.
type SweepConfig struct {
	Count       int    `mapstructure:"count"`
	Workers     int    `mapstructure:"workers"`
	MinWidth    int    `mapstructure:"minwidth"`
	MaxWidth    int    `mapstructure:"maxwidth"`
	Seed        int64  `mapstructure:"seed"`
	MetricsAddr string `mapstructure:"metricsaddr"`
	Timing      bool   `mapstructure:"timing"`
}

var defaults = map[string]interface{}{
	"multiplier":        DefaultMultiplier,
	"multiplicand":      DefaultMultiplicand,
	"twolevel":          false,
	"netlist":           false,
	"trace.format":      "text",
	"trace.style":       "unicode",
	"log.level":         "warn",
	"log.file":          "",
	"log.json":          false,
	"hwgen.width":       256,
	"hwgen.mdwidth":     256,
	"hwgen.adder":       hwgen.AdderCLA,
	"hwgen.dir":         ".",
	"sweep.count":       1000,
	"sweep.workers":     4,
	"sweep.minwidth":    1,
	"sweep.maxwidth":    64,
	"sweep.seed":        1,
	"sweep.metricsaddr": "",
	"sweep.timing":      false,
}

// New creates a viper instance with the configuration defaults and
// environment variable bindings.
func New() *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load loads the configuration from v. If file is not empty, the
// configuration file is read before unmarshaling.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Operands returns the multiplier and multiplicand. An empty operand
// is replaced with its default value.
func (cfg *Config) Operands() (mr, md bitvec.Vector, err error) {
	mr, err = parseOperand(cfg.Multiplier, DefaultMultiplier)
	if err != nil {
		return mr, md, fmt.Errorf("multiplier: %w", err)
	}
	md, err = parseOperand(cfg.Multiplicand, DefaultMultiplicand)
	if err != nil {
		return mr, md, fmt.Errorf("multiplicand: %w", err)
	}
	return mr, md, nil
}

func parseOperand(value, def string) (bitvec.Vector, error) {
	if len(value) == 0 {
		value = def
	}
	return bitvec.Parse(value)
}

// HWParams returns the VHDL generator parameters.
func (cfg *Config) HWParams() hwgen.Params {
	return hwgen.Params{
		N:     cfg.HWGen.N,
		M:     cfg.HWGen.M,
		Adder: cfg.HWGen.Adder,
	}
}

// Reporter creates the trace reporter.
func (cfg *Config) Reporter() (*report.Reporter, error) {
	format, err := report.ParseFormat(cfg.Trace.Format)
	if err != nil {
		return nil, err
	}
	style, err := report.ParseStyle(cfg.Trace.Style)
	if err != nil {
		return nil, err
	}
	return &report.Reporter{
		Format: format,
		Style:  style,
	}, nil
}

// Validate checks the configuration values.
func (cfg *Config) Validate() error {
	if _, _, err := cfg.Operands(); err != nil {
		return err
	}
	if _, err := cfg.Reporter(); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	if err := cfg.HWParams().Validate(); err != nil {
		return err
	}
	return cfg.Sweep.Validate()
}

// Validate checks the sweep configuration.
func (s SweepConfig) Validate() error {
	if s.Count < 0 {
		return fmt.Errorf("invalid sweep count %d", s.Count)
	}
	if s.Workers <= 0 {
		return fmt.Errorf("invalid sweep workers %d", s.Workers)
	}
	if s.MinWidth < 1 || s.MaxWidth < s.MinWidth {
		return fmt.Errorf("invalid sweep widths [%d,%d]",
			s.MinWidth, s.MaxWidth)
	}
	return nil
}
