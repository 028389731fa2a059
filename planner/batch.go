package planner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/jumpgrid/jps"
)

// BatchReport summarises one Batch call. Answers are in query order.
type BatchReport struct {
	ID          string
	Answers     []Answer
	Found       int
	Unreachable int // no-path answers, invalid endpoints included
	Failed      int // other errors, e.g. jps.ErrSearchLimit
	Cached      int
	Elapsed     time.Duration
}

// Batch answers queries in parallel, at most Workers at a time. Per-query
// failures are recorded in each Answer; only cancellation of ctx aborts the
// batch, returning ctx's error.
func (p *Planner) Batch(ctx context.Context, queries []Query) (BatchReport, error) {
	start := time.Now()
	rep := BatchReport{
		ID:      uuid.NewString(),
		Answers: make([]Answer, len(queries)),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers)
	for i, q := range queries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ans := p.find(gctx, q.From, q.To)
			ans.ID = q.ID
			rep.Answers[i] = ans
			if errors.Is(ans.Err, context.Canceled) || errors.Is(ans.Err, context.DeadlineExceeded) {
				return ans.Err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return rep, err
	}

	for _, a := range rep.Answers {
		switch {
		case a.Found:
			rep.Found++
		case errors.Is(a.Err, jps.ErrNoPath):
			rep.Unreachable++
		default:
			rep.Failed++
		}
		if a.Cached {
			rep.Cached++
		}
	}
	rep.Elapsed = time.Since(start)
	p.logger.Info("batch done",
		"id", rep.ID, "queries", len(queries),
		"found", rep.Found, "unreachable", rep.Unreachable, "failed", rep.Failed,
		"cached", rep.Cached, "elapsed", rep.Elapsed.Round(time.Millisecond),
	)

	return rep, nil
}
