// internal/treeapp/app.go
package treeapp

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"biogenesis-core/distance"
	"biogenesis-core/fasta"
	"biogenesis-core/tree"

	"biogenesis/internal/appcore"
	"biogenesis/internal/clibase"
	"biogenesis/internal/cmdutil"
	"biogenesis/internal/config"
	"biogenesis/internal/output"
	"biogenesis/internal/pipeline"
	"biogenesis/internal/pretty"
	"biogenesis/internal/runutil"
	"biogenesis/internal/treecli"
	"biogenesis/internal/writers"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts treecli.Options
	cmd := treecli.NewCommand(config.New(), func(_ *cobra.Command, o treecli.Options) error {
		opts = o
		return nil
	})
	ran, err := clibase.Parse(parent, cmd, argv, stdout, stderr)
	if err != nil {
		logger := cmdutil.NewLogger(stderr, "bg-tree", "info", false)
		logger.Error(err.Error())
		logger.Info("run 'bg-tree --help' for usage")
		return appcore.ExitUsage
	}
	if !ran {
		return appcore.ExitOK
	}

	logger := cmdutil.NewLogger(stderr, "bg-tree", opts.LogLevel, opts.Quiet)
	if opts.ConfigFile != "" {
		logger.Debug("loaded config", "file", opts.ConfigFile)
	}

	root, m, err := build(parent, opts, logger)
	if err != nil {
		return appcore.Fail(logger, err)
	}
	if !runutil.NeedMatrix(opts.Output) {
		m = nil
	}

	blocks := pretty.DefaultOptions
	blocks.TreeWidth = opts.TreeWidth
	blocks.Color = opts.Color
	payload := writers.TreePayload{Root: root, Matrix: m, Header: opts.Header, Pretty: blocks}
	return appcore.Emit(stdout, logger, func(w io.Writer) error {
		return writers.WriteTree(opts.Output, w, payload)
	})
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// build produces the tree and, when distances are known, the matrix it came from.
func build(ctx context.Context, o treecli.Options, logger *log.Logger) (*tree.Node, *distance.Matrix, error) {
	switch o.Source {
	case treecli.FromNewick:
		raw, err := readAll(o.NewickFile)
		if err != nil {
			return nil, nil, err
		}
		root, err := tree.ParseNewick(string(raw))
		if err != nil {
			return nil, nil, clibase.Usagef("%s: %w", o.NewickFile, err)
		}
		return root, nil, nil

	case treecli.FromMatrix:
		rc, err := fasta.Open(o.MatrixFile)
		if err != nil {
			return nil, nil, err
		}
		defer rc.Close()
		m, err := output.ReadPHYLIP(rc)
		if err != nil {
			return nil, nil, clibase.Usagef("%s: %w", o.MatrixFile, err)
		}
		logger.Debug("read matrix", "path", o.MatrixFile, "taxa", m.Len())
		return join(m)
	}

	seqs, err := appcore.LoadSequences(ctx, o.SeqFiles, o.Alphabet, o.MaxLength, logger)
	if err != nil {
		return nil, nil, err
	}
	if len(seqs) < 2 {
		return nil, nil, clibase.Usagef("a tree needs at least 2 sequences (got %d)", len(seqs))
	}
	appcore.Relabel(seqs, true)
	thr := runutil.EffectiveThreads(o.Threads)
	logger.Debug("building distance matrix", "taxa", len(seqs), "pairs", len(seqs)*(len(seqs)-1)/2, "threads", thr)
	m, err := pipeline.BuildMatrix(ctx, pipeline.Config{Threads: thr}, seqs, appcore.Names(seqs), o.Gap)
	if err != nil {
		return nil, nil, err
	}
	return join(m)
}

func join(m *distance.Matrix) (*tree.Node, *distance.Matrix, error) {
	root, err := tree.FromMatrix(m)
	if err != nil {
		return nil, nil, err
	}
	return root, m, nil
}

// readAll reads a whole (possibly gzipped) file, or stdin for "-".
func readAll(path string) ([]byte, error) {
	rc, err := fasta.Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
