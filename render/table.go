package render

import (
	"math"
	"runtime/debug"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/ajstarna/poker-client/game"
)

var tableLogger = log.With().Str("logger_name", "render::table").Logger()

var (
	backgroundColor = RGB(0x44, 0x40, 0x3c)
	tableRailColor  = RGB(0x1c, 0x19, 0x17)
	feltColor       = RGB(0, 100, 0)
	feltLineColor   = RGB(0, 150, 0)
	boxColor        = RGB(0x20, 0x20, 0x20)
	nameColor       = RGB(0xff, 0xff, 0xff)
	foldedColor     = RGB(0xaa, 0xaa, 0xaa)
	moneyColor      = RGB(0x3a, 0xc5, 0x47)
	moneyDimColor   = RGB(0x20, 0x6e, 0x28)
	winColor        = RGB(0xf1, 0x9b, 0x0e)
	flashBright     = RGB(0x3a, 0xc5, 0x47)
	flashDark       = RGB(0x32, 0xac, 0x3e)
	dimOverlay      = RGBA(0, 0, 0, 0x88)

	foldFill    = RGB(0x55, 0x00, 0x00)
	foldStroke  = RGB(0xdd, 0x00, 0x00)
	checkFill   = RGB(0x15, 0x70, 0x87)
	checkStroke = RGB(0x22, 0xb6, 0xdd)
	betFill     = RGB(0x16, 0x89, 0x62)
	betStroke   = RGB(0x24, 0xdb, 0x9d)
)

// Scene is one frame's input to the draw pass. The snapshot and showdown
// entries come straight from the shared state; the frame counter drives
// the turn flash and the reveal sequence.
type Scene struct {
	Snap          *game.Snapshot
	Showdown      []game.ShowdownEntry
	Frame         int
	TicksPerSeat  int
	Denominations []Denomination
}

func (sc *Scene) denoms() []Denomination {
	if len(sc.Denominations) == 0 {
		return DefaultDenominations
	}
	return sc.Denominations
}

// Draw runs one full draw pass: background, felt, seats, dealer button,
// board, pots, then the showdown label. Bad per-seat input degrades to a
// logged default; nothing in here aborts the pass.
func Draw(s Surface, sc Scene) {
	defer func() {
		err := recover()
		if err != nil {
			tableLogger.Error().
				Msgf("Draw pass aborted due to panic: %s\nStack Trace:\n%s", err, string(debug.Stack()))
		}
	}()

	width, height := s.Size()

	drawBackground(s, width, height)
	drawFelt(s, width, height)

	if sc.Snap == nil {
		return
	}

	var seq *Sequencer
	if len(sc.Showdown) > 0 {
		seq = NewSequencer(sc.Showdown, sc.TicksPerSeat)
	}

	views := BuildSeatViews(sc.Snap, seq, sc.Frame)
	for i := range views {
		drawSeat(s, &views[i], width, height, sc.Frame, sc.denoms())
	}
	for i := range views {
		if views[i].HasButton {
			drawButton(s, views[i].Rotated, width, height)
		}
	}

	var highlight Highlight
	var highlighted bool
	if seq != nil {
		highlight, highlighted = seq.Highlight(sc.Frame)
	}
	drawBoard(s, sc.Snap, width, height, seq != nil && seq.RevealedCount(sc.Frame) > 0, highlight)
	drawPots(s, sc.Snap, width, height, sc.denoms())

	if highlighted && highlight.Label != "" {
		drawHandLabel(s, highlight, width, height)
	}
}

func drawBackground(s Surface, width, height float64) {
	s.FillRect(0, 0, width, height, backgroundColor)
}

func drawFelt(s Surface, width, height float64) {
	size := math.Min(width, height)
	w := 0.85 * size
	h := 0.65 * size
	x0 := width/2 - w/2
	y0 := height/2 - h/2

	borderSize := 0.025 * size
	clothSize := 0.04 * size
	innerLine := 0.07 * size
	r := size/3 - borderSize

	s.FillRoundedRect(x0, y0, w, h, r, tableRailColor)
	s.StrokeRoundedRect(x0, y0, w, h, r, 1, RGB(25, 25, 25))
	s.FillRoundedRect(x0+borderSize, y0+borderSize, w-2*borderSize, h-2*borderSize, r-borderSize, RGB(20, 20, 20))
	s.FillRoundedRect(x0+clothSize, y0+clothSize, w-2*clothSize, h-2*clothSize, r-clothSize, feltColor)
	s.StrokeRoundedRect(x0+innerLine, y0+innerLine, w-2*innerLine, h-2*innerLine, r-innerLine, 1, feltLineColor)
}

func drawSeat(s Surface, v *SeatView, width, height float64, frame int, denoms []Denomination) {
	size := math.Min(width, height)
	infoSize := 0.175 * size
	infoOffset := infoSize / 2
	borderSize := 5.0

	anchor := PlayerAnchor(v.Rotated, width, height)
	infoX0 := anchor.X - infoSize/2
	infoY0 := anchor.Y - infoSize/4
	infoW := infoSize
	infoH := infoSize / 2

	cardSize := 3 * infoSize / 8
	cardMargin := cardSize / 4

	switch v.Display {
	case CardsFace:
		if len(v.Cards) == 2 {
			DrawFaceCard(s, infoX0+cardMargin, infoY0-infoOffset, v.Cards[0], cardSize)
			DrawFaceCard(s, infoX0+infoW-cardSize-cardMargin, infoY0-infoOffset, v.Cards[1], cardSize)
		}
	case CardsBacks:
		DrawBackCard(s, infoX0+cardMargin, infoY0-infoOffset, cardSize)
		DrawBackCard(s, infoX0+infoW-cardSize-cardMargin, infoY0-infoOffset, cardSize)
	}

	if v.ToAct {
		// The acting seat's border flashes between two greens.
		fill := flashBright
		if (frame/3)%2 == 1 {
			fill = flashDark
		}
		s.FillRoundedRect(
			infoX0-borderSize, infoY0-borderSize,
			infoW+2*borderSize, infoH+2*borderSize,
			0.05*(infoSize+2*borderSize), fill)
	}

	s.FillRoundedRect(infoX0, infoY0, infoW, infoH, 0.05*infoSize, boxColor)
	s.StrokeRoundedRect(infoX0, infoY0, infoW, infoH, 0.05*infoSize, 1, RGB(0, 0, 0))

	if v.Winner {
		s.Text("Win", infoX0+infoOffset, infoY0+infoSize/3, 0.25*infoSize, winColor, AlignCenter)
	} else {
		live := v.Active && v.LastAction != game.ActionFold
		nameFill := nameColor
		if !live {
			nameFill = foldedColor
		} else if v.ToAct {
			nameFill = winColor
		}
		s.Text(v.Name, infoX0+infoOffset, infoY0+infoSize/6, 0.15*infoSize, nameFill, AlignCenter)

		moneyFill := moneyColor
		if !live {
			moneyFill = moneyDimColor
		}
		moneyText := strconv.Itoa(v.Money)
		if v.Mucked {
			moneyText = "Muck"
		} else if v.SittingOut {
			moneyText = "Sitting Out"
		} else if v.Money == 0 && v.Active {
			moneyText = "All In"
		}
		s.Text(moneyText, infoX0+infoOffset, infoY0+3*infoSize/8, 0.15*infoSize, moneyFill, AlignCenter)
	}

	if v.LastAction != "" {
		fill, stroke := actionColors(v.LastAction)
		s.FillRoundedRect(infoX0+infoOffset/3, infoY0+infoSize/2, 2*infoSize/3, 0.15*infoSize, 5, fill)
		s.StrokeRoundedRect(infoX0+infoOffset/3, infoY0+infoSize/2, 2*infoSize/3, 0.15*infoSize, 5, 3, stroke)
		s.Text(v.LastAction, infoX0+infoOffset, infoY0+infoSize/2+0.1*infoSize, 0.1*infoSize, stroke, AlignCenter)
	}

	if v.StreetContribution > 0 {
		chips := ChipsAnchor(v.Rotated, width, height)
		DrawChips(s, v.StreetContribution, denoms, chips.X, chips.Y, 0.1*size)
	}
}

func actionColors(action string) (Color, Color) {
	switch {
	case action == game.ActionFold:
		return foldFill, foldStroke
	case action == game.ActionCheck || action == game.ActionCall:
		return checkFill, checkStroke
	case len(action) >= 3 && action[:3] == game.ActionBet:
		return betFill, betStroke
	}
	return RGB(0x99, 0x99, 0x99), RGB(0xff, 0xff, 0xff)
}

func drawButton(s Surface, rotated int, width, height float64) {
	buttonSize := 0.01 * math.Min(width, height)
	anchor := ButtonAnchor(rotated, width, height)

	// Two discs offset by 2px give the button a bit of depth.
	s.FillCircle(anchor.X, anchor.Y+2, buttonSize, RGB(0xff, 0xff, 0xff))
	s.StrokeCircle(anchor.X, anchor.Y+2, buttonSize, 1, RGB(0x99, 0x99, 0x99))
	s.FillCircle(anchor.X, anchor.Y, buttonSize, RGB(0xff, 0xff, 0xff))
	s.StrokeCircle(anchor.X, anchor.Y, buttonSize, 1, RGB(0x99, 0x99, 0x99))
}

// drawBoard paints the community cards. Once the reveal has begun, cards
// outside the featured hand are dimmed and the featured ones are lifted.
func drawBoard(s Surface, snap *game.Snapshot, width, height float64, revealing bool, highlight Highlight) {
	size := math.Min(width, height)
	cardSize := 0.06 * size
	cardOffsetY := 0.05 * size
	cardMargin := cardSize / 4
	cardStart := width/2 - (6*cardMargin+5*cardSize)/2

	board := snap.Board()
	for i, card := range board {
		x := cardStart + float64(i+1)*cardMargin + float64(i)*cardSize
		y := height/2 - CardHeight(cardSize) - cardOffsetY

		lifted := revealing && containsCard(highlight.Cards, card)
		drawSize := cardSize
		if lifted {
			drawSize = 1.15 * cardSize
			y -= 0.15 * cardSize
		}
		DrawFaceCard(s, x, y, card, drawSize)
		if revealing && !lifted {
			s.FillRoundedRect(x, y, drawSize, CardHeight(drawSize), 5, dimOverlay)
		}
	}
}

func containsCard(cards []game.CardCode, card game.CardCode) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}

// drawPots paints the pot chips at table center: one group for a single
// pot, otherwise the aggregated earlier pots on the left and the most
// recent pot on the right.
func drawPots(s Surface, snap *game.Snapshot, width, height float64, denoms []Denomination) {
	var pots []int
	for _, pot := range snap.Pots {
		if pot > 0 {
			pots = append(pots, pot)
		}
	}
	if len(pots) == 0 {
		return
	}

	size := 0.1 * math.Min(width, height)
	x := width / 2
	y := height/2 + 0.4*size

	if len(pots) == 1 {
		DrawChips(s, pots[0], denoms, x, y, size)
		return
	}

	earlier := 0
	for _, pot := range pots[:len(pots)-1] {
		earlier += pot
	}
	DrawChips(s, earlier, denoms, x-0.9*size, y, size)
	DrawChips(s, pots[len(pots)-1], denoms, x+0.9*size, y, size)
}

func drawHandLabel(s Surface, highlight Highlight, width, height float64) {
	size := math.Min(width, height)
	s.Text(highlight.Label, width/2, height/2+0.28*size, 0.05*size, winColor, AlignCenter)
}
