// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/charmbracelet/log"

	"biogenesis-core/distance"
	"biogenesis-core/fasta"
	"biogenesis-core/tree"

	"biogenesis/internal/clibase"
	"biogenesis/internal/common"
	"biogenesis/internal/pipeline"
	"biogenesis/internal/runutil"
	"biogenesis/internal/writers"
)

// Exit codes shared by the tools.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitRuntime  = 3
	ExitCanceled = 130
)

type Options struct {
	Threads         int
	NoMatchExitCode int
}

type VisitorFunc[T any] func(common.AlignedPair) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run aligns every job on the worker pool, passes results through visit
// and streams the kept ones to the writer in job order.
func Run[T any](
	parent context.Context,
	stdout io.Writer,
	logger *log.Logger,
	o Options,
	jobs []pipeline.Job,
	al pipeline.Aligner,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)
	thr := runutil.EffectiveThreads(o.Threads)

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	total := 0
	perr := pipeline.ForEachAlignment(ctx, pipeline.Config{Threads: thr}, jobs, al, func(p common.AlignedPair) error {
		keep, out, err := visit(p)
		if err != nil || !keep {
			return err
		}
		total++
		select {
		case inCh <- out:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	})

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		logger.Error("write failed", "err", werr)
		return ExitRuntime
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		logger.Error("write failed", "err", e)
		return ExitRuntime
	}

	if perr != nil {
		return Fail(logger, perr)
	}
	logger.Debug("alignments done", "pairs", len(jobs), "kept", total, "threads", thr)
	if total == 0 {
		return o.NoMatchExitCode
	}
	return ExitOK
}

// Emit runs write against a buffered stdout and maps the outcome to an
// exit code. A closed pipe downstream counts as success.
func Emit(stdout io.Writer, logger *log.Logger, write func(io.Writer) error) int {
	outw := bufio.NewWriter(stdout)
	err := write(outw)
	if ferr := outw.Flush(); err == nil {
		err = ferr
	}
	if err == nil || writers.IsBrokenPipe(err) {
		return ExitOK
	}
	return Fail(logger, err)
}

// Fail logs err and returns its exit code: 2 for usage and input errors,
// 130 for cancellation, 3 otherwise.
func Fail(logger *log.Logger, err error) int {
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case clibase.IsUsage(err) || isInputError(err):
		logger.Error(err.Error())
		return ExitUsage
	default:
		logger.Error(err.Error())
		return ExitRuntime
	}
}

// isInputError reports errors caused by what the user handed us rather
// than by the machine.
func isInputError(err error) bool {
	for _, target := range []error{
		fs.ErrNotExist, fs.ErrPermission,
		fasta.ErrEmpty,
		distance.ErrTooFew, distance.ErrLabels, distance.ErrInvalid,
		tree.ErrMalformed,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
