package folio

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// ApplyOption configures a library pass.
type ApplyOption func(*applyConfig)

type applyConfig struct {
	workers int
	isolate bool
}

// WithWorkers transforms up to n blocks concurrently. It has no effect on
// middlewares that do not allow parallel execution.
func WithWorkers(n int) ApplyOption {
	return func(c *applyConfig) {
		c.workers = n
	}
}

// IsolateFailures replaces a block whose transformation fails with a
// *FailedBlock and carries on with the rest of the library. Without it the
// first failure aborts the pass.
//
// Under InPlace ownership the wrapped block may be partially transformed.
func IsolateFailures() ApplyOption {
	return func(c *applyConfig) {
		c.isolate = true
	}
}

// Apply runs mw over every entry and @string block of lib, in order, and
// returns a library holding the results. Other blocks are carried over
// unchanged. Whether lib's own blocks are modified depends on the
// middleware's ownership.
func Apply(ctx context.Context, lib *Library, mw BlockMiddleware, opts ...ApplyOption) (*Library, error) {
	cfg := applyConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	workers := cfg.workers
	if workers < 1 || !mw.AllowsParallelExecution() {
		workers = 1
	}

	key := mw.MetadataKey()
	start := time.Now()
	emitApplyStart(ctx, key, len(lib.Blocks), workers)

	var failed atomic.Int64
	var retErr error
	defer func() {
		emitApplyComplete(ctx, key, len(lib.Blocks), int(failed.Load()), time.Since(start), retErr)
	}()

	out := make([]Block, len(lib.Blocks))
	process := func(ctx context.Context, i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := applyBlock(ctx, mw, lib.Blocks[i], lib)
		if err != nil {
			if !cfg.isolate {
				return err
			}
			failed.Add(1)
			emitBlockFailed(ctx, key, blockKey(lib.Blocks[i]), err)
			b = &FailedBlock{Block: lib.Blocks[i], Middleware: key, Err: err}
		}
		out[i] = b
		return nil
	}

	if workers == 1 {
		for i := range lib.Blocks {
			if err := process(ctx, i); err != nil {
				retErr = err
				return nil, retErr
			}
		}
		return &Library{Blocks: out}, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range lib.Blocks {
		g.Go(func() error {
			return process(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		retErr = err
		return nil, retErr
	}

	return &Library{Blocks: out}, nil
}

// applyBlock dispatches one block to the middleware.
func applyBlock(ctx context.Context, mw BlockMiddleware, b Block, lib *Library) (Block, error) {
	switch b := b.(type) {
	case *Entry:
		return mw.TransformEntry(ctx, b, lib)
	case *String:
		return mw.TransformString(ctx, b, lib)
	default:
		return b, nil
	}
}
