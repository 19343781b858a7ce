package render

import (
	"github.com/ajstarna/poker-client/game"
)

// DefaultTicksPerSeat is how many draw ticks pass between consecutive
// seat reveals at showdown.
const DefaultTicksPerSeat = 15

// Sequencer paces the showdown reveal. It is pure with respect to the
// frame counter: the same frame count always yields the same reveal
// state, so the caller can rewind or replay without side effects.
type Sequencer struct {
	entries      []game.ShowdownEntry
	ticksPerSeat int
}

func NewSequencer(entries []game.ShowdownEntry, ticksPerSeat int) *Sequencer {
	if ticksPerSeat <= 0 {
		ticksPerSeat = DefaultTicksPerSeat
	}
	return &Sequencer{entries: entries, ticksPerSeat: ticksPerSeat}
}

func (s *Sequencer) Entries() []game.ShowdownEntry {
	return s.entries
}

// RevealedCount is how many seats have revealed by the given frame: one
// more seat every ticksPerSeat frames, clamped to the entry count. Frame
// 0 reveals nothing.
func (s *Sequencer) RevealedCount(frame int) int {
	if frame <= 0 {
		return 0
	}
	count := (frame + s.ticksPerSeat - 1) / s.ticksPerSeat
	if count > len(s.entries) {
		count = len(s.entries)
	}
	return count
}

// Complete reports whether every seat has revealed.
func (s *Sequencer) Complete(frame int) bool {
	return s.RevealedCount(frame) == len(s.entries)
}

// SeatReveal is one seat's reveal state at a frame.
type SeatReveal int

const (
	RevealPending SeatReveal = iota
	RevealShown
	RevealMucked
)

// SeatState returns the reveal state of the entry at position i within
// the reveal order.
func (s *Sequencer) SeatState(i, frame int) SeatReveal {
	if i < 0 || i >= len(s.entries) {
		return RevealPending
	}
	if i >= s.RevealedCount(frame) {
		return RevealPending
	}
	if !s.entries[i].Revealed || s.entries[i].Hand == nil {
		return RevealMucked
	}
	return RevealShown
}

// EntryFor finds the showdown entry for a raw seat index along with its
// position in the reveal order.
func (s *Sequencer) EntryFor(seatIndex int) (*game.ShowdownEntry, int) {
	for i := range s.entries {
		if s.entries[i].Index == seatIndex {
			return &s.entries[i], i
		}
	}
	return nil, -1
}

// Highlight is the board emphasis at a frame: which cards belong to the
// currently featured hand, and its rank label.
type Highlight struct {
	Cards  []game.CardCode
	Label  string
	Winner bool
}

// Highlight picks the featured hand among revealed seats. A revealed
// winner always wins the spotlight; before any winner has revealed, the
// most recently revealed seat with a recorded hand holds it, so the label
// area is never blank mid-sequence unless nobody has shown a hand yet.
func (s *Sequencer) Highlight(frame int) (Highlight, bool) {
	revealed := s.RevealedCount(frame)

	for i := 0; i < revealed; i++ {
		e := s.entries[i]
		if e.Winner && e.Hand != nil {
			return Highlight{Cards: e.Hand.Best, Label: e.Hand.Label, Winner: true}, true
		}
	}
	for i := revealed - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.Hand != nil {
			return Highlight{Cards: e.Hand.Best, Label: e.Hand.Label}, true
		}
	}
	return Highlight{}, false
}
