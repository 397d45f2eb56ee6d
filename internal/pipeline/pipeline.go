// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"

	"biogenesis-core/distance"
	"biogenesis-core/seq"

	"biogenesis/internal/common"
)

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

func (c Config) workers(jobs int) int {
	n := c.Threads
	if n < 1 {
		n = 1
	}
	if jobs > 0 && n > jobs {
		n = jobs
	}
	return n
}

// ForEachAlignment aligns every job and calls visit once per result in
// Index order. It returns the first visit error or ctx.Err() on cancellation.
// A visit error stops the remaining work.
func ForEachAlignment(
	parent context.Context,
	cfg Config,
	jobs []Job,
	al Aligner,
	visit func(common.AlignedPair) error,
) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	threads := cfg.workers(len(jobs))
	in := make(chan Job, threads*2)
	results := make(chan common.AlignedPair, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case j, ok := <-in:
					if !ok {
						return
					}
					res, alpha := al.Align(j.Query, j.Target)
					out := common.AlignedPair{
						Index:    j.Index,
						QueryID:  j.Query.Name,
						TargetID: j.Target.Name,
						Alphabet: alpha,
						Result:   res,
					}
					select {
					case results <- out:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: buffer out-of-order results until their turn comes.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]common.AlignedPair)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.Index] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(p); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for _, j := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case in <- j:
		}
	}

	close(in)
	wg.Wait()
	close(results)
	cwg.Wait()

	if err := parent.Err(); err != nil {
		return err
	}
	return cerr
}

// BuildMatrix is the parallel counterpart of distance.Builder.Build: every
// pair i<j is aligned once on the worker pool and the collector fills the
// matrix. The result is identical to the serial build.
func BuildMatrix(ctx context.Context, cfg Config, seqs []seq.Sequence, labels []string, gap int) (*distance.Matrix, error) {
	labels, err := distance.PrepareLabels(len(seqs), labels)
	if err != nil {
		return nil, err
	}
	type cell struct {
		i, j int
		d    float64
	}
	n := len(seqs)
	pairs := n * (n - 1) / 2
	threads := cfg.workers(pairs)
	in := make(chan [2]int, threads*2)
	out := make(chan cell, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for ij := range in {
				c := cell{i: ij[0], j: ij[1], d: distance.PairDistance(seqs[ij[0]], seqs[ij[1]], gap)}
				select {
				case out <- c:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	m := distance.New(labels)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for c := range out {
			m.Set(c.i, c.j, c.d)
		}
	}()

feed:
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			select {
			case <-ctx.Done():
				break feed
			case in <- [2]int{i, j}:
			}
		}
	}
	close(in)
	wg.Wait()
	close(out)
	<-done

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
