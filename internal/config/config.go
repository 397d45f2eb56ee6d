// Package config holds the settings shared by the bg-* tools. Values are
// layered by viper: defaults, then an optional config file, then
// BIOGENESIS_* environment variables, then command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. BIOGENESIS_ALIGN_GAP.
const EnvPrefix = "BIOGENESIS"

// FileName is the config file searched for in the working directory
// when --config is not given (any extension viper understands).
const FileName = "biogenesis"

// AlignConfig settings for pairwise alignment
type AlignConfig struct {
	// global | local
	Mode string `mapstructure:"mode"`

	// linear gap penalty (<= 0)
	Gap int `mapstructure:"gap"`

	// auto | dna | rna | protein
	Alphabet string `mapstructure:"alphabet"`

	// inputs are truncated to this many residues before alignment (0 = no limit)
	MaxLength int `mapstructure:"max-length"`

	// text | json | jsonl | fasta
	Output string `mapstructure:"output"`

	// drop pairs below this identity percentage (0 = keep all)
	MinIdentity float64 `mapstructure:"min-identity"`

	// drop pairs scoring below this; only applied when set
	MinScore int `mapstructure:"min-score"`
}

// TreeConfig settings for distance matrix and tree building
type TreeConfig struct {
	Gap       int    `mapstructure:"gap"`
	Alphabet  string `mapstructure:"alphabet"`
	MaxLength int    `mapstructure:"max-length"`

	// newick | json | text | phylip
	Output string `mapstructure:"output"`
}

// RunConfig controls execution.
type RunConfig struct {
	// worker goroutines (0 = all CPUs)
	Threads int `mapstructure:"threads"`

	// exit code when nothing was produced
	NoMatchExitCode int `mapstructure:"no-match-exit-code"`
}

// OutputConfig controls rendering common to both tools.
type OutputConfig struct {
	Sort     bool `mapstructure:"sort"`
	NoHeader bool `mapstructure:"no-header"`
	Pretty   bool `mapstructure:"pretty"`
	Color    bool `mapstructure:"color"`

	// consensus row under pretty alignment blocks
	Consensus bool `mapstructure:"consensus"`

	// residues per row in pretty alignment blocks
	Width int `mapstructure:"width"`

	// columns for the text tree drawing
	TreeWidth int `mapstructure:"tree-width"`
}

// LogConfig controls diagnostics on stderr.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Quiet bool   `mapstructure:"quiet"`
}

// Config is the root-level settings struct
type Config struct {
	Align  AlignConfig  `mapstructure:"align"`
	Tree   TreeConfig   `mapstructure:"tree"`
	Run    RunConfig    `mapstructure:"run"`
	Output OutputConfig `mapstructure:"output"`
	Log    LogConfig    `mapstructure:"log"`
}

// Defaults: alignment inputs capped at 2000
// residues, tree inputs at 500, 60-column blocks.
var Defaults = map[string]any{
	"align.mode":             "global",
	"align.gap":              -2,
	"align.alphabet":         "auto",
	"align.max-length":       2000,
	"align.output":           "text",
	"align.min-identity":     0.0,
	"tree.gap":               -2,
	"tree.alphabet":          "auto",
	"tree.max-length":        500,
	"tree.output":            "newick",
	"run.threads":            0,
	"run.no-match-exit-code": 1,
	"output.sort":            false,
	"output.no-header":       false,
	"output.pretty":          false,
	"output.color":           false,
	"output.consensus":       true,
	"output.width":           60,
	"output.tree-width":      48,
	"log.level":              "info",
	"log.quiet":              false,
}

// New returns a viper instance with defaults and environment binding.
// Each tool invocation gets its own instance so runs never share state.
func New() *viper.Viper {
	v := viper.New()
	for k, val := range Defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads path, or searches the working directory for FileName when
// path is empty. A missing searched file is not an error. It returns the
// file actually used ("" if none).
func Load(v *viper.Viper, path string) (string, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(FileName)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &nf) {
			return "", nil
		}
		return "", fmt.Errorf("config: %w", err)
	}
	return v.ConfigFileUsed(), nil
}

// Decode unmarshals the merged settings.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return c, nil
}
