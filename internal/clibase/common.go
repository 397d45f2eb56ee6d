// internal/clibase/common.go
package clibase

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"biogenesis/internal/config"
)

// Common holds CLI fields shared by bg-align and bg-tree.
type Common struct {
	ConfigFile string // file actually loaded, "" if none

	// Performance
	Threads int

	// Output
	Output          string
	Sort            bool
	Header          bool
	Pretty          bool
	Color           bool
	Width           int
	NoMatchExitCode int

	// Diagnostics
	LogLevel string
	Quiet    bool
}

// SharedKeys maps shared flag names to config keys.
var SharedKeys = map[string]string{
	"threads":            "run.threads",
	"no-match-exit-code": "run.no-match-exit-code",
	"sort":               "output.sort",
	"no-header":          "output.no-header",
	"pretty":             "output.pretty",
	"color":              "output.color",
	"width":              "output.width",
	"log-level":          "log.level",
	"quiet":              "log.quiet",
}

// Register wires shared flags onto fs. Flag defaults repeat config.Defaults
// so --help shows the effective values.
func Register(fs *pflag.FlagSet) {
	d := config.Defaults
	fs.String("config", "", "config file (yaml|toml|json); default ./"+config.FileName+".yaml if present")

	fs.IntP("threads", "t", d["run.threads"].(int), "worker threads (0=all CPUs)")

	fs.Bool("sort", d["output.sort"].(bool), "sort outputs deterministically")
	fs.Bool("no-header", d["output.no-header"].(bool), "suppress header line")
	fs.Bool("pretty", d["output.pretty"].(bool), "pretty ASCII blocks (text)")
	fs.Bool("color", d["output.color"].(bool), "colorize pretty output")
	fs.Int("width", d["output.width"].(int), "residues per pretty row")
	fs.Int("no-match-exit-code", d["run.no-match-exit-code"].(int), "exit code when nothing was produced")

	fs.String("log-level", d["log.level"].(string), "log level: debug | info | warn | error")
	fs.BoolP("quiet", "q", d["log.quiet"].(bool), "only log errors")
}

// Bind binds each flag named in keys to its config key.
func Bind(v *viper.Viper, fs *pflag.FlagSet, keys map[string]string) error {
	for name, key := range keys {
		f := fs.Lookup(name)
		if f == nil {
			return fmt.Errorf("bind %s: no such flag", name)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}
	return nil
}

// FromConfig copies the shared settings out of a decoded config.
func FromConfig(c config.Config, output, configFile string) Common {
	return Common{
		ConfigFile:      configFile,
		Threads:         c.Run.Threads,
		Output:          output,
		Sort:            c.Output.Sort,
		Header:          !c.Output.NoHeader,
		Pretty:          c.Output.Pretty,
		Color:           c.Output.Color,
		Width:           c.Output.Width,
		NoMatchExitCode: c.Run.NoMatchExitCode,
		LogLevel:        c.Log.Level,
		Quiet:           c.Log.Quiet,
	}
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c Common, formats ...string) error {
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	if c.Width <= 0 {
		return errors.New("--width must be > 0")
	}
	if c.NoMatchExitCode < 0 || c.NoMatchExitCode > 255 {
		return errors.New("--no-match-exit-code must be between 0 and 255")
	}
	for _, f := range formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q (want one of %v)", c.Output, formats)
}
