package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/semaphore"
)

// LimitedGenerator bounds the number of concurrent calls to the wrapped Generator.
// Callers beyond the limit wait for a free slot until their context ends or
// the optional timeout elapses.
type LimitedGenerator struct {
	next    Generator
	sem     *semaphore.Weighted
	timeout time.Duration
}

// LimiterOption configures a LimitedGenerator.
type LimiterOption func(*LimitedGenerator)

// WithTimeout sets a single deadline covering both the wait for a free slot
// and the wrapped call. Zero leaves the caller's context as the only bound.
func WithTimeout(d time.Duration) LimiterOption {
	return func(g *LimitedGenerator) {
		g.timeout = d
	}
}

// NewLimitedGenerator wraps next so that at most maxInFlight calls run at once.
func NewLimitedGenerator(next Generator, maxInFlight int, opts ...LimiterOption) (*LimitedGenerator, error) {
	if next == nil {
		return nil, fmt.Errorf("%w: generator cannot be nil", ErrInvalidConfig)
	}
	if maxInFlight <= 0 {
		return nil, fmt.Errorf("%w: max in-flight requests must be positive, got %d",
			ErrInvalidConfig, maxInFlight)
	}
	g := &LimitedGenerator{
		next: next,
		sem:  semaphore.NewWeighted(int64(maxInFlight)),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// GenerateText implements Generator.
func (g *LimitedGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if err := g.sem.Acquire(ctx, 1); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: waiting for a free model slot: %v", ErrModelTimeout, err)
		}
		return "", fmt.Errorf("waiting for a free model slot: %w", err)
	}
	defer g.sem.Release(1)

	text, err := g.next.GenerateText(ctx, prompt)
	if err != nil && !errors.Is(err, ErrModelTimeout) &&
		errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w: %v", ErrModelTimeout, err)
	}
	return text, err
}
