package pathfinder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClampSpeed(t *testing.T) {
	assert.Equal(t, 1.0, ClampSpeed(0))
	assert.Equal(t, MinSpeed, ClampSpeed(0.01))
	assert.Equal(t, MinSpeed, ClampSpeed(-2))
	assert.Equal(t, MaxSpeed, ClampSpeed(10))
	assert.Equal(t, 2.5, ClampSpeed(2.5))
}

func TestDriverDelay(t *testing.T) {
	assert.Equal(t, DefaultStepDelay, NewDriver(1).Delay())
	assert.Equal(t, 50*time.Millisecond, NewDriver(2).Delay())
	assert.Equal(t, 200*time.Millisecond, NewDriver(0.5).Delay())
	assert.Equal(t, NewDriver(MinSpeed).Delay(), NewDriver(0.01).Delay())
	assert.Equal(t, time.Duration(0), (&Driver{Speed: 2}).Delay())
}

func TestDriverRun(t *testing.T) {
	t.Run("Runs to completion", func(t *testing.T) {
		f, err := NewBFS(mustParse(t, openFive))
		require.NoError(t, err)

		var steps int
		d := &Driver{Interval: time.Millisecond, Speed: MaxSpeed}
		r, err := d.Run(context.Background(), f, func(StepResult) error {
			steps++
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, Found, r.Outcome)
		assert.Equal(t, 9, steps)
		assert.Equal(t, f.ExploredCount(), steps)
	})

	t.Run("Nil callback without pause", func(t *testing.T) {
		f, err := NewDFS(mustParse(t, openFive))
		require.NoError(t, err)

		r, err := (&Driver{}).Run(context.Background(), f, nil)
		require.NoError(t, err)
		assert.Equal(t, Found, r.Outcome)
	})

	t.Run("Callback error stops", func(t *testing.T) {
		f, err := NewBFS(mustParse(t, openFive))
		require.NoError(t, err)

		stop := errors.New("client gone")
		r, err := (&Driver{}).Run(context.Background(), f, func(r StepResult) error {
			if f.ExploredCount() == 3 {
				return stop
			}
			return nil
		})
		assert.ErrorIs(t, err, stop)
		assert.Equal(t, Continue, r.Outcome)
		assert.Equal(t, StatusRunning, f.Status())
	})

	t.Run("Context cancel stops", func(t *testing.T) {
		f, err := NewBFS(mustParse(t, openFive))
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		d := &Driver{Interval: time.Hour, Speed: 1}
		_, err = d.Run(ctx, f, func(StepResult) error {
			cancel()
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, f.ExploredCount())
	})
}
