package render

import (
	"github.com/ajstarna/poker-client/game"
)

// CardDisplay says what a seat's hole cards look like this frame.
type CardDisplay int

const (
	CardsNone CardDisplay = iota
	CardsBacks
	CardsFace
)

// SeatView is everything the draw pass needs for one seat, resolved from
// the snapshot and the reveal sequencer.
type SeatView struct {
	Rotated            int
	Name               string
	Money              int
	LastAction         string
	ToAct              bool
	StreetContribution int
	Active             bool
	AllIn              bool
	SittingOut         bool
	Display            CardDisplay
	Cards              []game.CardCode
	Mucked             bool
	Winner             bool
	HasButton          bool
}

// BuildSeatViews resolves the per-seat view models for one frame. seq and
// frame only matter during showdown; pass a nil sequencer otherwise.
func BuildSeatViews(snap *game.Snapshot, seq *Sequencer, frame int) []SeatView {
	if snap == nil {
		return nil
	}

	views := make([]SeatView, 0, len(snap.Players))
	for _, seat := range snap.Players {
		if seat == nil {
			continue
		}

		v := SeatView{
			Rotated:            RotatedIndex(seat.Index, snap.YourIndex),
			Name:               seat.PlayerName,
			Money:              seat.Money,
			LastAction:         seat.LastAction,
			StreetContribution: seat.StreetContribution(snap.Street),
			Active:             seat.IsActive,
			AllIn:              seat.IsAllIn,
			SittingOut:         seat.IsSittingOut,
			HasButton:          snap.ButtonIdx == seat.Index,
		}
		if snap.IndexToAct != nil {
			v.ToAct = *snap.IndexToAct == seat.Index
		}

		v.Display, v.Cards, v.Mucked, v.Winner = resolveCards(snap, seat, seq, frame)
		views = append(views, v)
	}
	return views
}

// resolveCards applies the visibility rules. The viewer always sees their
// own hole cards. Opponents show backs while live in the hand. In an
// all-in situation the server sends every live hand face up. During the
// showdown reveal, the sequencer decides per seat whether to show the
// hand, mark the muck, or keep the backs for a pending seat.
func resolveCards(snap *game.Snapshot, seat *game.Seat, seq *Sequencer, frame int) (CardDisplay, []game.CardCode, bool, bool) {
	viewerCards := seat.Index == snap.YourIndex && snap.HoleCards != ""

	if seq != nil {
		if entry, pos := seq.EntryFor(seat.Index); entry != nil {
			switch seq.SeatState(pos, frame) {
			case RevealShown:
				return CardsFace, entry.Hand.Cards, false, entry.Winner
			case RevealMucked:
				// The viewer still sees their own mucked hand.
				if viewerCards {
					return CardsFace, game.ParseCards(snap.HoleCards), true, entry.Winner
				}
				return CardsNone, nil, true, entry.Winner
			default:
				if viewerCards {
					return CardsFace, game.ParseCards(snap.HoleCards), false, false
				}
				return CardsBacks, nil, false, false
			}
		}
		// Seats not in the settlement folded before showdown.
		if viewerCards {
			return CardsFace, game.ParseCards(snap.HoleCards), false, false
		}
		return CardsNone, nil, false, false
	}

	if viewerCards {
		return CardsFace, game.ParseCards(snap.HoleCards), false, false
	}
	if snap.AllInSituation && seat.HoleCards != "" && seat.IsActive && !seat.Folded() {
		return CardsFace, game.ParseCards(seat.HoleCards), false, false
	}
	if seat.IsActive && !seat.Folded() {
		return CardsBacks, nil, false, false
	}
	return CardsNone, nil, false, false
}
