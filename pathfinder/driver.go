package pathfinder

import (
	"context"
	"time"
)

const (
	DefaultStepDelay = 100 * time.Millisecond
	MinSpeed         = 0.1
	MaxSpeed         = 3.0
)

// Driver paces a PathFinder for animation. Each tick performs one Step and
// hands the result to the caller.
type Driver struct {
	// Interval is the base delay between steps at speed 1. Zero runs the
	// search without pausing.
	Interval time.Duration
	// Speed scales the pace, clamped to [MinSpeed, MaxSpeed]. Zero means 1.
	Speed float64
}

// NewDriver returns a Driver using DefaultStepDelay at the given speed.
func NewDriver(speed float64) *Driver {
	return &Driver{Interval: DefaultStepDelay, Speed: speed}
}

// Delay is the pause between two steps after applying Speed.
func (d *Driver) Delay() time.Duration {
	if d.Interval <= 0 {
		return 0
	}
	return time.Duration(float64(d.Interval) / ClampSpeed(d.Speed))
}

// ClampSpeed maps speed into [MinSpeed, MaxSpeed], treating zero as 1.
func ClampSpeed(speed float64) float64 {
	switch {
	case speed == 0:
		return 1
	case speed < MinSpeed:
		return MinSpeed
	case speed > MaxSpeed:
		return MaxSpeed
	}
	return speed
}

// Run steps f until it finishes, ctx is done or onStep fails. onStep may be
// nil. The last step result is returned alongside any error.
func (d *Driver) Run(ctx context.Context, f Stepper, onStep func(StepResult) error) (StepResult, error) {
	delay := d.Delay()

	var tick <-chan time.Time
	if delay > 0 {
		ticker := time.NewTicker(delay)
		defer ticker.Stop()
		tick = ticker.C
	}

	var last StepResult
	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		default:
		}

		last = f.Step()
		if onStep != nil {
			if err := onStep(last); err != nil {
				return last, err
			}
		}
		if last.Outcome != Continue {
			return last, nil
		}

		if tick != nil {
			select {
			case <-ctx.Done():
				return last, ctx.Err()
			case <-tick:
			}
		}
	}
}
