package autopay

import (
	"context"
	"strconv"
	"time"
)

// Options carries the time sources a Manager implementation depends on.
type Options struct {
	// Clock stamps transaction identifiers.
	Clock func() time.Time
	// Sleep simulates backend latency.
	Sleep func(ctx context.Context, d time.Duration) error
}

// Option configures Options.
type Option func(*Options)

// WithClock overrides the transaction-id clock, primarily for tests.
func WithClock(clock func() time.Time) Option {
	return func(o *Options) {
		o.Clock = clock
	}
}

// WithSleep overrides the latency simulation, primarily for tests.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(o *Options) {
		o.Sleep = sleep
	}
}

// NoLatency returns immediately unless ctx is already done.
func NoLatency(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// NewOptions applies opts over the defaults.
func NewOptions(opts ...Option) Options {
	o := Options{
		Clock: time.Now,
		Sleep: sleep,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// TransactionID joins the prefix and the clock reading in milliseconds.
func (o Options) TransactionID(prefix string) string {
	return prefix + "-" + formatMillis(o.Clock())
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}
