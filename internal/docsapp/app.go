// internal/docsapp/app.go
package docsapp

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"biogenesis/internal/aligncli"
	"biogenesis/internal/appcore"
	"biogenesis/internal/clibase"
	"biogenesis/internal/cmdutil"
	"biogenesis/internal/config"
	"biogenesis/internal/treecli"
)

// front matter for the just-the-docs theme
const page = `---
layout: default
title: %s
nav_order: %d
---
`

var navOrder = map[string]int{"bg-align": 0, "bg-tree": 1}

// Commands returns fresh bg-align and bg-tree command trees; their run
// callbacks are never used.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		aligncli.NewCommand(config.New(), func(*cobra.Command, aligncli.Options) error { return nil }),
		treecli.NewCommand(config.New(), func(*cobra.Command, treecli.Options) error { return nil }),
	}
}

// Generate writes one Markdown page per tool into dir.
func Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	var files []string
	for _, c := range Commands() {
		c.DisableAutoGenTag = true
		if err := doc.GenMarkdownTreeCustom(c, dir, filePrepender, linkHandler); err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name(), err)
		}
		files = append(files, filepath.Join(dir, c.Name()+".md"))
	}
	return files, nil
}

func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), path.Ext(filename))
	return fmt.Sprintf(page, base, navOrder[base])
}

func linkHandler(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), path.Ext(filename))
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var dir string
	cmd := clibase.NewRoot("bg-docs", "Generate Markdown docs for the bg-* tools", "", clibase.Examples("bg-docs --dir docs"))
	cmd.Use = "bg-docs [flags]"
	cmd.Flags().StringVar(&dir, "dir", "docs", "output directory")
	cmd.Flags().BoolP("quiet", "q", false, "only log errors")
	cmd.RunE = func(*cobra.Command, []string) error { return nil }
	ran, err := clibase.Parse(parent, cmd, argv, stdout, stderr)
	logger := cmdutil.NewLogger(stderr, "bg-docs", "info", false)
	if err != nil {
		logger.Error(err.Error())
		return appcore.ExitUsage
	}
	if !ran {
		return appcore.ExitOK
	}
	if q, _ := cmd.Flags().GetBool("quiet"); q {
		logger = cmdutil.NewLogger(stderr, "bg-docs", "error", true)
	}
	files, err := Generate(dir)
	if err != nil {
		return appcore.Fail(logger, err)
	}
	for _, f := range files {
		logger.Info("wrote", "file", f)
	}
	return appcore.ExitOK
}
