package render

import "time"

// Pacer decides, per display tick, whether a full draw pass should run.
// It is decoupled from the tick source: the display calls ShouldDraw on
// every refresh signal and draws only when it returns true, so the pacing
// policy is testable without a surface.
type Pacer struct {
	interval time.Duration
	last     time.Time
	frame    int
	force    bool
}

func NewPacer(interval time.Duration) *Pacer {
	if interval <= 0 {
		interval = 200 * time.Millisecond
	}
	return &Pacer{interval: interval}
}

// ShouldDraw reports whether a draw pass is due at the given time and, if
// so, advances the frame counter. ForceNext overrides the interval check
// once.
func (p *Pacer) ShouldDraw(now time.Time) bool {
	if !p.force && !p.last.IsZero() && now.Sub(p.last) < p.interval {
		return false
	}
	p.force = false
	p.last = now
	p.frame++
	return true
}

// Frame is the number of draw passes executed so far. It paces the turn
// flash and the showdown reveal.
func (p *Pacer) Frame() int {
	return p.frame
}

// ForceNext makes the next ShouldDraw fire regardless of elapsed time.
// Called on viewport resize.
func (p *Pacer) ForceNext() {
	p.force = true
}

// ResetFrames restarts the frame counter. Called when a new reveal
// sequence begins so its pacing starts from zero.
func (p *Pacer) ResetFrames() {
	p.frame = 0
}
