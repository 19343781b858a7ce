package game

// Settlement is one row of the hand-settled payload: the outcome of one
// (seat, pot) pair. A seat that participates in side pots appears in
// several rows, all of which must be merged for display.
type Settlement struct {
	Index            int    `json:"index"`
	PlayerName       string `json:"player_name"`
	PotIndex         int    `json:"pot_index"`
	IsShowdown       bool   `json:"is_showdown"`
	Winner           bool   `json:"winner"`
	Payout           int    `json:"payout,omitempty"`
	HoleCards        string `json:"hole_cards,omitempty"`
	HandResult       string `json:"hand_result,omitempty"`
	ConstituentCards string `json:"constituent_cards,omitempty"`
	Kickers          string `json:"kickers,omitempty"`
}

// RevealedHand is the shown portion of a showdown entry.
type RevealedHand struct {
	Cards []CardCode
	// Label is the hand ranking ("Flush", "TwoPair", ...).
	Label string
	// Best holds the constituent cards followed by the kickers: the
	// hole+board subset that makes up the ranked hand.
	Best []CardCode
}

// ShowdownEntry is the merged per-seat settlement result, consumed
// progressively by the reveal sequencer.
type ShowdownEntry struct {
	Index    int
	Name     string
	Winner   bool
	Payout   int
	Revealed bool
	Hand     *RevealedHand
}

func revealedHandFromRow(row Settlement) *RevealedHand {
	if row.HoleCards == "" {
		return nil
	}
	best := ParseCardList(row.ConstituentCards)
	best = append(best, ParseCardList(row.Kickers)...)
	return &RevealedHand{
		Cards: ParseCards(row.HoleCards),
		Label: row.HandResult,
		Best:  best,
	}
}

// BuildShowdown merges a hand's settlement rows into one entry per seat.
//
// The main pot (pot index 0) establishes the entry list and its order.
// Side pots then supplement it: a side pot with exactly one claimant is an
// uncontested refund, so its payout is added regardless of the winner flag;
// a contested side pot only pays its winners. A seat whose cards show in
// any pot counts as revealed.
func BuildShowdown(settlements []Settlement) []ShowdownEntry {
	entries := make([]ShowdownEntry, 0, len(settlements))
	bySeat := make(map[int]*ShowdownEntry)

	appendEntry := func(row Settlement) *ShowdownEntry {
		entries = append(entries, ShowdownEntry{
			Index: row.Index,
			Name:  row.PlayerName,
		})
		e := &entries[len(entries)-1]
		bySeat[row.Index] = e
		return e
	}

	maxPot := 0
	for _, row := range settlements {
		if row.PotIndex > maxPot {
			maxPot = row.PotIndex
		}
		if row.PotIndex != 0 {
			continue
		}
		e := appendEntry(row)
		e.Winner = row.Winner
		e.Payout = row.Payout
		if hand := revealedHandFromRow(row); hand != nil {
			e.Revealed = true
			e.Hand = hand
		}
	}

	for pot := 1; pot <= maxPot; pot++ {
		claimants := 0
		for _, row := range settlements {
			if row.PotIndex == pot {
				claimants++
			}
		}
		for _, row := range settlements {
			if row.PotIndex != pot {
				continue
			}
			e := bySeat[row.Index]
			if e == nil {
				// A seat can sit out of the main pot yet still
				// hold a stake in a side pot.
				e = appendEntry(row)
			}
			if claimants == 1 {
				// Uncontested side pot: a refund, paid even
				// without the winner flag.
				e.Payout += row.Payout
			} else if row.Winner {
				e.Winner = true
				e.Payout += row.Payout
			}
			if !e.Revealed {
				if hand := revealedHandFromRow(row); hand != nil {
					e.Revealed = true
					e.Hand = hand
				}
			}
		}
	}

	return entries
}
