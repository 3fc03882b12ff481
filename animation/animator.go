// Package animation steps a frame index at a fixed rate.
package animation

import (
	"context"
	"errors"
	"sync"
	"time"
)

// MaxFramesPerSecond is the highest supported update rate.
const MaxFramesPerSecond = 30

// ErrStopped is returned by Run when the rate is zero.
var ErrStopped = errors.New("animation: stopped")

// Animator cycles a frame index through [0, maxFrameIndex-1).
//
// The index wraps to 0 as soon as the next index would be the last one, so
// frame maxFrameIndex-1 is never produced by Step. It can still be selected
// with SetFrame.
//
// Animator is safe for concurrent use.
type Animator struct {
	mu            sync.Mutex
	frame         int
	maxFrameIndex int
	fps           int
}

// New creates an animator at frame 0. fps is clamped to
// [0, MaxFramesPerSecond]; 0 means stopped.
func New(maxFrameIndex, fps int) *Animator {
	a := &Animator{maxFrameIndex: maxFrameIndex}
	a.SetFPS(fps)
	return a
}

// Frame returns the current frame index.
func (a *Animator) Frame() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.frame
}

// SetFrame jumps to frame, clamped to [0, maxFrameIndex].
func (a *Animator) SetFrame(frame int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frame = max(0, min(frame, a.maxFrameIndex))
}

// FPS returns the update rate.
func (a *Animator) FPS() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.fps
}

// SetFPS changes the update rate. A running Run picks it up on the next
// tick.
func (a *Animator) SetFPS(fps int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.fps = max(0, min(fps, MaxFramesPerSecond))
}

// Interval returns the time between frames, or 0 when stopped.
func (a *Animator) Interval() time.Duration {
	fps := a.FPS()
	if fps == 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

// Step advances to the next frame and returns it.
func (a *Animator) Step() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.frame++
	if a.frame+1 >= a.maxFrameIndex {
		a.frame = 0
	}
	return a.frame
}

// Run calls fn with each new frame at the current rate until ctx is done,
// fn returns an error, or the rate drops to zero.
func (a *Animator) Run(ctx context.Context, fn func(frame int) error) error {
	interval := a.Interval()
	if interval == 0 {
		return ErrStopped
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(a.Step()); err != nil {
				return err
			}
			next := a.Interval()
			if next == 0 {
				return ErrStopped
			}
			if next != interval {
				interval = next
				ticker.Reset(interval)
			}
		}
	}
}
