package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Pair is one (start, goal) query.
type Pair struct {
	Start string `json:"start" yaml:"start"`
	Goal  string `json:"goal" yaml:"goal"`
}

// Batch is the result of RunBatch.
type Batch struct {
	ID      string        `json:"id" yaml:"id"`
	Records []Record      `json:"records" yaml:"records"`
	Elapsed time.Duration `json:"elapsed_ns" yaml:"elapsed_ns"`
}

// RunBatch runs every pair with every strategy using at most workers
// goroutines (workers < 1 means one). Records are ordered pair-major, in
// input order, and share the batch ID. The first error cancels the remaining
// searches and is returned.
func (r *Runner) RunBatch(ctx context.Context, pairs []Pair, strategies []Strategy, workers int) (*Batch, error) {
	if workers < 1 {
		workers = 1
	}
	b := &Batch{
		ID:      uuid.NewString(),
		Records: make([]Record, len(pairs)*len(strategies)),
	}
	log := r.log.WithFields(logrus.Fields{"batch_id": b.ID, "pairs": len(pairs), "strategies": len(strategies)})
	log.Info("batch started")

	began := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range pairs {
		for j, s := range strategies {
			idx := i*len(strategies) + j
			g.Go(func() error {
				rec, err := r.Run(gctx, s, p.Start, p.Goal)
				if err != nil {
					return fmt.Errorf("runner: %s %s→%s: %w", s, p.Start, p.Goal, err)
				}
				rec.BatchID = b.ID
				b.Records[idx] = rec

				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		log.WithError(err).Warn("batch failed")
		return nil, err
	}
	b.Elapsed = time.Since(began)
	log.WithField("elapsed", b.Elapsed).Info("batch finished")

	return b, nil
}
