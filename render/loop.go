// SPDX-License-Identifier: MIT
//
// File: loop.go
// Role: Rate-limited polling frame loop.

package render

import (
	"context"
	"errors"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/algoviz/core"
)

// ErrBadFrameRate is returned by Loop for a non-positive frame rate.
var ErrBadFrameRate = errors.New("render: frame rate must be positive")

// Source is what the loop polls: a monotonically increasing step sequence
// and a consistent snapshot.
type Source interface {
	Seq() uint64
	Snapshot() core.Snapshot
}

// Loop draws a frame of src to w at most fps times per second until ctx is
// done. The first poll always draws; later polls draw only when src.Seq()
// advanced. It returns nil when ctx ends and the first write error otherwise.
func Loop(ctx context.Context, src Source, w io.Writer, fps float64, opts ...Option) error {
	if fps <= 0 {
		return fmt.Errorf("%w: %g", ErrBadFrameRate, fps)
	}
	limiter := rate.NewLimiter(rate.Limit(fps), 1)

	var (
		frames uint64
		last   uint64
	)
	for {
		if err := limiter.Wait(ctx); err != nil {
			// Wait fails once ctx is done or the next token would arrive after
			// the deadline; either way the loop is over.
			return nil
		}
		seq := src.Seq()
		if frames > 0 && seq == last {
			continue
		}
		if err := WriteFrame(w, frames, seq, src.Snapshot(), opts...); err != nil {
			return err
		}
		frames++
		last = seq
	}
}

// WriteFrame writes one numbered frame.
func WriteFrame(w io.Writer, frame, seq uint64, s core.Snapshot, opts ...Option) error {
	if _, err := fmt.Fprintf(w, "── frame %d · step %d ──\n%s", frame, seq, Frame(s, opts...)); err != nil {
		return fmt.Errorf("render: write frame: %w", err)
	}
	return nil
}
