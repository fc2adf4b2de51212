package nba

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the batch fan-out ceiling when none is given.
// Conservative on purpose: the upstream throttles bursty callers and
// publishes no official limit.
const DefaultConcurrency = 3

type batchConfig struct {
	concurrency int
	pacing      time.Duration
}

// BatchOption configures one GetMany call.
type BatchOption func(*batchConfig)

// WithConcurrency caps how many requests may be in flight at once.
func WithConcurrency(n int) BatchOption {
	return func(cfg *batchConfig) {
		if n > 0 {
			cfg.concurrency = n
		}
	}
}

// WithPacing sleeps d inside each task after it acquires a concurrency
// slot, spacing requests out even when slots are free.
func WithPacing(d time.Duration) BatchOption {
	return func(cfg *batchConfig) { cfg.pacing = d }
}

// GetMany fetches every endpoint concurrently under a shared concurrency
// ceiling and returns results in input order regardless of completion order.
//
// The batch is all-or-nothing: the first failure cancels the remaining
// in-flight requests and the returned error aggregates every sub-failure
// collected before cancellation. Callers wanting partial results should
// call Get per request instead.
func GetMany[T any](ctx context.Context, c *Client, eps []Endpoint[T], opts ...BatchOption) ([]T, error) {
	if len(eps) == 0 {
		return []T{}, nil
	}
	cfg := batchConfig{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	results := make([]T, len(eps))
	errs := make([]error, len(eps))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(cfg.concurrency)
	for i, ep := range eps {
		i, ep := i, ep
		group.Go(func() error {
			if cfg.pacing > 0 {
				if err := sleep(groupCtx, cfg.pacing); err != nil {
					errs[i] = err
					return err
				}
			}
			out, err := Get(groupCtx, c, ep)
			if err != nil {
				errs[i] = err
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		merr := &multierror.Error{}
		for i, taskErr := range errs {
			if taskErr == nil {
				continue
			}
			// Skip tasks that only died because a failing sibling
			// cancelled the group.
			if errors.Is(taskErr, context.Canceled) && ctx.Err() == nil {
				continue
			}
			merr = multierror.Append(merr, fmt.Errorf("%s [%d]: %w", eps[i].Path(), i, taskErr))
		}
		if len(merr.Errors) == 0 {
			merr = multierror.Append(merr, err)
		}
		return nil, merr
	}
	return results, nil
}
