// internal/clibase/usage.go
package clibase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"biogenesis/internal/config"
	"biogenesis/internal/version"
)

// UsageError marks bad invocations (exit code 2) as opposed to runtime failures.
type UsageError struct{ Err error }

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// Usagef builds a UsageError.
func Usagef(format string, a ...any) error { return &UsageError{Err: fmt.Errorf(format, a...)} }

// IsUsage reports whether err is (or wraps) a UsageError.
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.As(err, &ue)
}

// Examples formats cobra's Example block from one-line invocations.
func Examples(lines ...string) string {
	return "  " + strings.Join(lines, "\n  ")
}

// NewRoot builds the command shell shared by the tools: silent errors (the
// app reports them), flag errors as UsageError, and a version flag.
func NewRoot(name, short, long, example string) *cobra.Command {
	cmd := &cobra.Command{
		Use:           name + " [flags] [FASTA...]",
		Short:         short,
		Long:          long,
		Example:       example,
		Version:       version.Version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetVersionTemplate(name + " version {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	return cmd
}

// LoadConfig reads the --config file (or the default search) into v and
// decodes the merged settings.
func LoadConfig(cmd *cobra.Command, v *viper.Viper) (config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	used, err := config.Load(v, path)
	if err != nil {
		return config.Config{}, "", &UsageError{Err: err}
	}
	c, err := config.Decode(v)
	if err != nil {
		return config.Config{}, "", &UsageError{Err: err}
	}
	return c, used, nil
}

// Parse executes cmd over argv. ran is false when cobra handled the call
// itself (help, version). The command writes help to out.
func Parse(ctx context.Context, cmd *cobra.Command, argv []string, out, errOut io.Writer) (ran bool, err error) {
	if argv == nil {
		argv = []string{} // cobra falls back to os.Args on nil
	}
	cmd.SetArgs(argv)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	inner := cmd.RunE
	cmd.RunE = func(c *cobra.Command, args []string) error {
		ran = true
		return inner(c, args)
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !IsUsage(err) {
			err = &UsageError{Err: err}
		}
		return ran, err
	}
	return ran, nil
}
