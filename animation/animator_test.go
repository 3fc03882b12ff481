package animation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepWraps(t *testing.T) {
	a := New(5, 10)

	var got []int
	for i := 0; i < 8; i++ {
		got = append(got, a.Step())
	}
	// frame 4 (maxFrameIndex-1) is skipped
	assert.Equal(t, []int{1, 2, 3, 0, 1, 2, 3, 0}, got)
}

func TestStepSmallRange(t *testing.T) {
	for _, m := range []int{0, 1, 2} {
		a := New(m, 1)
		assert.Equal(t, 0, a.Step(), "maxFrameIndex %d", m)
		assert.Equal(t, 0, a.Step(), "maxFrameIndex %d", m)
	}
}

func TestSetFrame(t *testing.T) {
	a := New(100, 30)
	a.SetFrame(42)
	assert.Equal(t, 42, a.Frame())
	assert.Equal(t, 43, a.Step())

	a.SetFrame(-5)
	assert.Equal(t, 0, a.Frame())
	a.SetFrame(500)
	assert.Equal(t, 100, a.Frame())
	assert.Equal(t, 0, a.Step())
}

func TestFPSClamped(t *testing.T) {
	assert.Equal(t, 0, New(10, -4).FPS())
	assert.Equal(t, MaxFramesPerSecond, New(10, 1000).FPS())

	a := New(10, 20)
	assert.Equal(t, 50*time.Millisecond, a.Interval())
	a.SetFPS(0)
	assert.Equal(t, time.Duration(0), a.Interval())
}

func TestRunStopped(t *testing.T) {
	a := New(10, 0)
	err := a.Run(context.Background(), func(int) error {
		t.Fatal("fn called while stopped")
		return nil
	})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestRunStopsOnError(t *testing.T) {
	a := New(10, MaxFramesPerSecond)
	errDone := errors.New("done")

	var frames []int
	err := a.Run(context.Background(), func(frame int) error {
		frames = append(frames, frame)
		if len(frames) == 3 {
			return errDone
		}
		return nil
	})

	require.ErrorIs(t, err, errDone)
	assert.Equal(t, []int{1, 2, 3}, frames)
}

func TestRunCancelled(t *testing.T) {
	a := New(10, MaxFramesPerSecond)
	ctx, cancel := context.WithCancel(context.Background())

	err := a.Run(ctx, func(frame int) error {
		if frame == 2 {
			cancel()
		}
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, a.Frame())
}

func TestRunStopsWhenRateDropsToZero(t *testing.T) {
	a := New(10, MaxFramesPerSecond)
	err := a.Run(context.Background(), func(frame int) error {
		a.SetFPS(0)
		return nil
	})
	assert.ErrorIs(t, err, ErrStopped)
	assert.Equal(t, 1, a.Frame())
}
