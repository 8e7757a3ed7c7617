// Package timer implements the blocking per-second countdown shown
// during the preparation phase.
package timer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Timer writes countdown progress to Out once per Interval.
type Timer struct {
	Out      io.Writer
	Interval time.Duration
}

// New returns a Timer ticking once per second on stdout.
func New() *Timer {
	return &Timer{Out: os.Stdout, Interval: time.Second}
}

// Countdown blocks for seconds*Interval, writing one progress line per
// remaining second under the given label. Zero seconds returns at once
// with no output. Cancelling ctx stops the countdown early and returns
// the context error.
func (t *Timer) Countdown(ctx context.Context, seconds int, label string) error {
	if seconds <= 0 {
		return nil
	}
	out := t.Out
	if out == nil {
		out = os.Stdout
	}
	interval := t.Interval
	if interval <= 0 {
		interval = time.Second
	}
	tick := time.NewTicker(interval)
	defer tick.Stop()
	for remaining := seconds; remaining > 0; remaining-- {
		fmt.Fprintf(out, "\r%s: %02ds remaining", label, remaining)
		select {
		case <-ctx.Done():
			fmt.Fprintln(out)
			return ctx.Err()
		case <-tick.C:
		}
	}
	fmt.Fprintln(out)
	return nil
}
