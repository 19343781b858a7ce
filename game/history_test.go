package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildHandRecord(t *testing.T) {
	testCases := []struct {
		name     string
		snap     *Snapshot
		entries  []ShowdownEntry
		expected HandRecord
	}{
		{
			name: "winner nets positive",
			snap: &Snapshot{
				HandNum:   7,
				YourIndex: 2,
				HoleCards: "AhKh",
				Flop:      "2c9dQh",
				Turn:      "Td",
				River:     "3s",
				Players: []*Seat{
					nil,
					nil,
					{Index: 2, PreflopCont: 20, FlopCont: 50},
				},
			},
			entries: []ShowdownEntry{
				{Index: 2, Winner: true, Payout: 100},
			},
			expected: HandRecord{
				HandNum:     7,
				HoleCards:   "AhKh",
				Board:       "2c9dQhTd3s",
				Contributed: 70,
				Payout:      100,
				Net:         30,
				Outcome:     OutcomePositive,
			},
		},
		{
			name: "loser nets negative",
			snap: &Snapshot{
				HandNum:   8,
				YourIndex: 0,
				HoleCards: "7c2d",
				Players: []*Seat{
					{Index: 0, PreflopCont: 40},
				},
			},
			entries: []ShowdownEntry{
				{Index: 5, Winner: true, Payout: 80},
			},
			expected: HandRecord{
				HandNum:     8,
				HoleCards:   "7c2d",
				Contributed: 40,
				Net:         -40,
				Outcome:     OutcomeNegative,
			},
		},
		{
			name: "split pot breaks even",
			snap: &Snapshot{
				HandNum:   9,
				YourIndex: 1,
				Players: []*Seat{
					nil,
					{Index: 1, PreflopCont: 10, FlopCont: 20},
				},
			},
			entries: []ShowdownEntry{
				{Index: 1, Winner: true, Payout: 30},
				{Index: 3, Winner: true, Payout: 30},
			},
			expected: HandRecord{
				HandNum:     9,
				Contributed: 30,
				Payout:      30,
				Net:         0,
				Outcome:     OutcomeEven,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := BuildHandRecord(tc.snap, tc.entries)
			if diff := cmp.Diff(tc.expected, result); diff != "" {
				t.Errorf("BuildHandRecord mismatch (-expected +actual):\n%s", diff)
			}
		})
	}
}

func TestLeaderboard(t *testing.T) {
	snap := &Snapshot{
		YourIndex: 4,
		Players: []*Seat{
			{Index: 0, PlayerName: "a", Money: 150},
			nil,
			{Index: 2, PlayerName: "b", Money: 400},
			nil,
			{Index: 4, PlayerName: "me", Money: 150},
		},
	}

	ranks := Leaderboard(snap)
	expected := []StackRank{
		{Index: 2, PlayerName: "b", Money: 400},
		{Index: 0, PlayerName: "a", Money: 150},
		{Index: 4, PlayerName: "me", Money: 150, IsViewer: true},
	}
	if diff := cmp.Diff(expected, ranks); diff != "" {
		t.Errorf("Leaderboard mismatch (-expected +actual):\n%s", diff)
	}

	if rank := ViewerRank(ranks); rank != 3 {
		t.Errorf("Expected viewer rank 3, got %d", rank)
	}
	if rank := ViewerRank(nil); rank != 0 {
		t.Errorf("Expected rank 0 for empty leaderboard, got %d", rank)
	}
}
