package rewrite

import (
	"context"

	"github.com/npillmayer/reassoc/expr"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// RewriteAll rewrites a batch of trees in parallel. The result has the same
// length and order as the input. Trees are independent of each other, so the
// result is identical to rewriting them one after another.
//
// If ctx is cancelled, no further trees are started and the context's error
// is returned. A rewrite already in progress is never interrupted. Workers do
// not trace; tracing happens on the calling goroutine only.
func (rw *Rewriter) RewriteAll(ctx context.Context, trees []expr.Expr) ([]expr.Expr, error) {
	out := make([]expr.Expr, len(trees))
	err := rw.parallel(ctx, len(trees), func(i int) error {
		out[i] = rw.Rewrite(trees[i])
		return nil
	})
	if err != nil {
		tracer().Errorf("batch rewrite aborted: %v", err)
		return nil, err
	}
	tracer().Debugf("rewrote batch of %d trees", len(trees))
	return out, nil
}

// ExpandAll expands a batch of invocations in parallel. It fails if any of
// the invocations fails; the error is annotated with the index of the
// invocation, and errors.Is(err, ErrMissingOperand) holds.
func (rw *Rewriter) ExpandAll(ctx context.Context, invs []Invocation) ([]expr.Expr, error) {
	out := make([]expr.Expr, len(invs))
	err := rw.parallel(ctx, len(invs), func(i int) error {
		e, err := rw.expand(invs[i])
		if err != nil {
			return errors.Wrapf(err, "invocation #%d (%s)", i, invs[i].Name)
		}
		out[i] = e
		return nil
	})
	if err != nil {
		tracer().Errorf("batch expansion failed: %v", err)
		return nil, err
	}
	tracer().Debugf("expanded batch of %d invocations", len(invs))
	return out, nil
}

func (rw *Rewriter) parallel(ctx context.Context, n int, work func(int) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(rw.workers)
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return work(i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
