package stream

import (
	"context"
	"time"
)

// Pacer waits between transmissions.
type Pacer interface {
	// Pace blocks for d or until ctx is done, whichever comes first.
	Pace(ctx context.Context, d time.Duration) error
}

// SleepPacer waits in real time, with delays divided by Speed.
// A Speed of zero or less plays at normal speed.
type SleepPacer struct {
	Speed float64
}

func (p SleepPacer) Pace(ctx context.Context, d time.Duration) error {
	if p.Speed > 0 && p.Speed != 1 {
		d = time.Duration(float64(d) / p.Speed)
	}
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoPacer elides every delay.
type NoPacer struct{}

func (NoPacer) Pace(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// PacerFor returns the pacer matching a speed setting: zero disables delays.
func PacerFor(speed float64) Pacer {
	if speed == 0 {
		return NoPacer{}
	}
	return SleepPacer{Speed: speed}
}
