package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajstarna/poker-client/game"
)

func tenEntries() []game.ShowdownEntry {
	entries := make([]game.ShowdownEntry, 10)
	for i := range entries {
		entries[i] = game.ShowdownEntry{Index: i}
	}
	return entries
}

func TestRevealedCount(t *testing.T) {
	seq := NewSequencer(tenEntries(), 15)

	testCases := []struct {
		frame    int
		expected int
	}{
		{frame: 0, expected: 0},
		{frame: 1, expected: 1},
		{frame: 14, expected: 1},
		{frame: 15, expected: 1},
		{frame: 16, expected: 2},
		{frame: 30, expected: 2},
		{frame: 31, expected: 3},
		{frame: 150, expected: 10},
		{frame: 1000, expected: 10},
	}
	for i, tc := range testCases {
		if got := seq.RevealedCount(tc.frame); got != tc.expected {
			t.Errorf("Test case %d frame: %d, expected: %d, got: %d", i, tc.frame, tc.expected, got)
		}
	}
}

func TestRevealedCountMonotone(t *testing.T) {
	seq := NewSequencer(tenEntries(), 15)
	prev := 0
	for frame := 0; frame <= 200; frame++ {
		count := seq.RevealedCount(frame)
		if count < prev {
			t.Fatalf("Revealed count decreased at frame %d: %d -> %d", frame, prev, count)
		}
		if count > len(seq.Entries()) {
			t.Fatalf("Revealed count %d exceeds entry count at frame %d", count, frame)
		}
		prev = count
	}
}

func TestComplete(t *testing.T) {
	seq := NewSequencer(tenEntries(), 15)
	if seq.Complete(135) {
		t.Errorf("Sequence should not be complete at frame 135")
	}
	if !seq.Complete(136) {
		t.Errorf("Sequence should be complete at frame 136")
	}

	empty := NewSequencer(nil, 15)
	if !empty.Complete(0) {
		t.Errorf("An empty sequence is always complete")
	}
}

func TestSeatState(t *testing.T) {
	entries := []game.ShowdownEntry{
		{Index: 2, Revealed: true, Hand: &game.RevealedHand{Label: "Pair"}},
		{Index: 5},
	}
	seq := NewSequencer(entries, 15)

	if got := seq.SeatState(0, 0); got != RevealPending {
		t.Errorf("Frame 0 expected pending, got %v", got)
	}
	if got := seq.SeatState(0, 1); got != RevealShown {
		t.Errorf("Revealed entry expected shown, got %v", got)
	}
	if got := seq.SeatState(1, 16); got != RevealMucked {
		t.Errorf("Entry without a hand expected mucked, got %v", got)
	}
	if got := seq.SeatState(99, 1000); got != RevealPending {
		t.Errorf("Out-of-range entry expected pending, got %v", got)
	}
}

func TestHighlightPrefersRevealedWinner(t *testing.T) {
	entries := []game.ShowdownEntry{
		{
			Index: 1,
			Hand:  &game.RevealedHand{Label: "Pair", Best: []game.CardCode{"Qc", "Qd"}},
		},
		{
			Index:  4,
			Winner: true,
			Hand:   &game.RevealedHand{Label: "Flush", Best: []game.CardCode{"Ah", "Kh", "Qh", "7h", "2h"}},
		},
	}
	seq := NewSequencer(entries, 15)

	// Only the first seat has revealed; its hand holds the label.
	h, ok := seq.Highlight(1)
	if !ok || h.Label != "Pair" || h.Winner {
		t.Errorf("Frame 1 expected the non-winner's hand, got %+v ok=%v", h, ok)
	}

	// Once the winner reveals, it takes over.
	h, ok = seq.Highlight(16)
	if !ok || h.Label != "Flush" || !h.Winner {
		t.Errorf("Frame 16 expected the winner's hand, got %+v ok=%v", h, ok)
	}
	expected := []game.CardCode{"Ah", "Kh", "Qh", "7h", "2h"}
	if diff := cmp.Diff(expected, h.Cards); diff != "" {
		t.Errorf("Highlight cards mismatch (-expected +actual):\n%s", diff)
	}
}

func TestHighlightMostRecentNonWinner(t *testing.T) {
	entries := []game.ShowdownEntry{
		{Index: 0, Hand: &game.RevealedHand{Label: "HighCard"}},
		{Index: 1, Hand: &game.RevealedHand{Label: "Pair"}},
		{Index: 2},
		{Index: 3, Winner: true, Hand: &game.RevealedHand{Label: "Straight"}},
	}
	seq := NewSequencer(entries, 15)

	// Two seats revealed, no winner yet: the most recent hand shows.
	h, ok := seq.Highlight(16)
	if !ok || h.Label != "Pair" {
		t.Errorf("Expected the most recent revealed hand, got %+v ok=%v", h, ok)
	}

	// A mucked reveal keeps the previous hand's label.
	h, ok = seq.Highlight(31)
	if !ok || h.Label != "Pair" {
		t.Errorf("Mucked seat should not steal the label, got %+v ok=%v", h, ok)
	}

	// No reveals yet.
	if _, ok := seq.Highlight(0); ok {
		t.Errorf("No highlight expected before any reveal")
	}
}
