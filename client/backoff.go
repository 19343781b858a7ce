package client

import "time"

// Backoff produces the wait before each reconnect attempt. Every failed
// attempt doubles the wait up to the ceiling; a successful connection
// resets it to the floor.
type Backoff struct {
	floor   time.Duration
	ceiling time.Duration
	current time.Duration
}

func NewBackoff(floor, ceiling time.Duration) *Backoff {
	if floor <= 0 {
		floor = 250 * time.Millisecond
	}
	if ceiling < floor {
		ceiling = floor
	}
	return &Backoff{
		floor:   floor,
		ceiling: ceiling,
		current: floor,
	}
}

// Next returns the wait to use for the upcoming attempt and advances the
// schedule.
func (b *Backoff) Next() time.Duration {
	wait := b.current
	b.current *= 2
	if b.current > b.ceiling {
		b.current = b.ceiling
	}
	return wait
}

// Current returns the wait the next attempt would use, without advancing.
func (b *Backoff) Current() time.Duration {
	return b.current
}

// Reset returns the schedule to the floor.
func (b *Backoff) Reset() {
	b.current = b.floor
}
