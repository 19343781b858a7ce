package game

import (
	"sort"
)

// Outcome classifies a hand's net return by sign.
type Outcome string

const (
	OutcomePositive Outcome = "positive"
	OutcomeNegative Outcome = "negative"
	OutcomeEven     Outcome = "even"
)

// HandRecord is the hand-history entry for one completed hand, from the
// viewer's perspective.
type HandRecord struct {
	HandNum     int
	HoleCards   string
	Board       string
	Contributed int
	Payout      int
	Net         int
	Outcome     Outcome
}

// BuildHandRecord derives the viewer's history record from the final
// snapshot of a hand and the merged showdown entries.
func BuildHandRecord(snap *Snapshot, entries []ShowdownEntry) HandRecord {
	record := HandRecord{
		HandNum:   snap.HandNum,
		HoleCards: snap.HoleCards,
		Board:     snap.BoardString(),
	}
	if viewer := snap.Viewer(); viewer != nil {
		record.Contributed = viewer.TotalContributed()
	}
	for _, e := range entries {
		if e.Index == snap.YourIndex {
			record.Payout += e.Payout
		}
	}
	record.Net = record.Payout - record.Contributed
	switch {
	case record.Net > 0:
		record.Outcome = OutcomePositive
	case record.Net < 0:
		record.Outcome = OutcomeNegative
	default:
		record.Outcome = OutcomeEven
	}
	return record
}

// StackRank is one row of the stack leaderboard.
type StackRank struct {
	Index      int
	PlayerName string
	Money      int
	IsViewer   bool
}

// Leaderboard returns the occupied seats ordered by descending stack.
// Ties keep seat order so the result is stable across frames.
func Leaderboard(snap *Snapshot) []StackRank {
	if snap == nil {
		return nil
	}
	ranks := make([]StackRank, 0, len(snap.Players))
	for _, seat := range snap.Players {
		if seat == nil {
			continue
		}
		ranks = append(ranks, StackRank{
			Index:      seat.Index,
			PlayerName: seat.PlayerName,
			Money:      seat.Money,
			IsViewer:   seat.Index == snap.YourIndex,
		})
	}
	sort.SliceStable(ranks, func(i, j int) bool {
		return ranks[i].Money > ranks[j].Money
	})
	return ranks
}

// ViewerRank is the viewer's 1-based position in the leaderboard, or 0
// when the viewer is not seated.
func ViewerRank(ranks []StackRank) int {
	for i, r := range ranks {
		if r.IsViewer {
			return i + 1
		}
	}
	return 0
}
