package render

import (
	"testing"

	"github.com/ajstarna/poker-client/game"
)

func TestDrawEmptyScene(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 800}
	Draw(s, Scene{})
	// Background and felt still paint with no snapshot.
	if s.ops == 0 {
		t.Errorf("Expected background ops, got none")
	}
	if s.texts != 0 {
		t.Errorf("Expected no text without a snapshot, got %d", s.texts)
	}
}

func TestDrawFullScene(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 800}
	snap := testSnapshot()
	snap.Pots = []int{60}

	Draw(s, Scene{Snap: snap, Frame: 3})

	if s.texts == 0 {
		t.Errorf("Expected seat names and pot label to draw")
	}
	// Pot label and seat chip labels are among the texts.
	found := false
	for _, label := range s.labels {
		if label == "60" {
			found = true
		}
	}
	if !found {
		t.Errorf("Pot label missing from %v", s.labels)
	}
}

func TestDrawShowdownScene(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 800}
	snap := testSnapshot()
	snap.Street = game.StreetShowdown
	snap.Flop = "2h7hQh"
	snap.Turn = "Kh"
	snap.River = "3s"
	snap.IndexToAct = nil

	entries := []game.ShowdownEntry{
		{
			Index:    5,
			Name:     "b",
			Winner:   true,
			Payout:   120,
			Revealed: true,
			Hand: &game.RevealedHand{
				Cards: []game.CardCode{"Ah", "Th"},
				Label: "Flush",
				Best:  []game.CardCode{"Ah", "Kh", "Qh", "Th", "7h"},
			},
		},
	}

	Draw(s, Scene{Snap: snap, Showdown: entries, Frame: 20})

	found := false
	for _, label := range s.labels {
		if label == "Flush" {
			found = true
		}
	}
	if !found {
		t.Errorf("Winning hand label missing from %v", s.labels)
	}
}

func TestDrawDegradedSeatDoesNotPanic(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 800}
	snap := testSnapshot()
	// Unexpected raw indices must not break the pass.
	snap.Players[0].Index = 42
	snap.Players[5].Index = -3

	Draw(s, Scene{Snap: snap, Frame: 1})
	if s.ops == 0 {
		t.Errorf("Draw pass should complete")
	}
}

func TestDrawMultiplePots(t *testing.T) {
	s := &fakeSurface{width: 1000, height: 800}
	snap := testSnapshot()
	snap.Pots = []int{100, 40, 0}

	Draw(s, Scene{Snap: snap, Frame: 1})

	// Aggregated earlier pots (100) and the latest non-zero pot (40).
	var found100, found40 bool
	for _, label := range s.labels {
		switch label {
		case "100":
			found100 = true
		case "40":
			found40 = true
		}
	}
	if !found100 || !found40 {
		t.Errorf("Expected pot labels 100 and 40, got %v", s.labels)
	}
}
