// internal/alignapp/app.go
package alignapp

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"biogenesis-core/seq"

	"biogenesis/internal/aligncli"
	"biogenesis/internal/appcore"
	"biogenesis/internal/clibase"
	"biogenesis/internal/cmdutil"
	"biogenesis/internal/common"
	"biogenesis/internal/config"
	"biogenesis/internal/pipeline"
	"biogenesis/internal/pretty"
	"biogenesis/internal/runutil"
	"biogenesis/internal/visitors"
)

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	var opts aligncli.Options
	cmd := aligncli.NewCommand(config.New(), func(_ *cobra.Command, o aligncli.Options) error {
		opts = o
		return nil
	})
	ran, err := clibase.Parse(parent, cmd, argv, stdout, stderr)
	if err != nil {
		logger := cmdutil.NewLogger(stderr, "bg-align", "info", false)
		logger.Error(err.Error())
		logger.Info("run 'bg-align --help' for usage")
		return appcore.ExitUsage
	}
	if !ran {
		return appcore.ExitOK
	}

	logger := cmdutil.NewLogger(stderr, "bg-align", opts.LogLevel, opts.Quiet)
	if opts.ConfigFile != "" {
		logger.Debug("loaded config", "file", opts.ConfigFile)
	}

	jobs, err := buildJobs(parent, opts, logger)
	if err != nil {
		return appcore.Fail(logger, err)
	}
	logger.Debug("aligning", "pairs", len(jobs), "mode", opts.Mode)

	blocks := pretty.DefaultOptions
	blocks.Width = opts.Width
	blocks.Color = opts.Color
	blocks.Consensus = opts.Consensus

	var visit appcore.VisitorFunc[common.AlignedPair] = visitors.PassThrough{}.Visit
	if floor := (visitors.Threshold{MinIdentity: opts.MinIdentity, MinScore: opts.MinScore, ScoreFloor: opts.ScoreFloor}); floor.Active() {
		visit = floor.Visit
	}

	wf := appcore.NewAlignmentWriterFactory(opts.Output, opts.Sort, opts.Header, opts.Pretty, blocks)
	return appcore.Run[common.AlignedPair](
		parent, stdout, logger,
		appcore.Options{Threads: opts.Threads, NoMatchExitCode: opts.NoMatchExitCode},
		jobs,
		pipeline.CoreAligner{Mode: opts.Mode, Gap: opts.Gap},
		visit, wf,
	)
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

func buildJobs(ctx context.Context, o aligncli.Options, logger *log.Logger) ([]pipeline.Job, error) {
	if o.Seq1 != "" {
		pair := runutil.TruncateAll([]seq.Sequence{
			seq.New("seq1", o.Seq1, o.Alphabet),
			seq.New("seq2", o.Seq2, o.Alphabet),
		}, o.MaxLength, logger)
		return pipeline.CrossPairs(pair[:1], pair[1:]), nil
	}
	queries, err := appcore.LoadSequences(ctx, o.Queries, o.Alphabet, o.MaxLength, logger)
	if err != nil {
		return nil, err
	}
	appcore.Relabel(queries, false)
	if len(o.Targets) == 0 {
		if len(queries) < 2 {
			return nil, clibase.Usagef("all-vs-all needs at least two query records (got %d); add --target", len(queries))
		}
		return pipeline.SelfPairs(queries), nil
	}
	targets, err := appcore.LoadSequences(ctx, o.Targets, o.Alphabet, o.MaxLength, logger)
	if err != nil {
		return nil, err
	}
	appcore.Relabel(targets, false)
	return pipeline.CrossPairs(queries, targets), nil
}
