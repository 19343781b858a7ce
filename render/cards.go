package render

import (
	"github.com/rs/zerolog/log"

	"github.com/ajstarna/poker-client/game"
)

var cardLogger = log.With().Str("logger_name", "render::cards").Logger()

var (
	clubColor    = RGB(0, 150, 0)
	spadeColor   = RGB(30, 30, 30)
	heartColor   = RGB(200, 0, 0)
	diamondColor = RGB(0, 0, 255)
	cardBack     = RGB(60, 100, 100)
	white        = RGB(0xff, 0xff, 0xff)
)

// SuitColor maps a suit letter to its card base color. An unknown suit is
// logged and drawn neutral; the draw pass never aborts on bad input.
func SuitColor(suit byte) Color {
	switch suit {
	case 'c':
		return clubColor
	case 's':
		return spadeColor
	case 'h':
		return heartColor
	case 'd':
		return diamondColor
	}
	cardLogger.Error().Msgf("Unknown suit [%c]. Must be one of [c, s, h, d].", suit)
	return RGB(100, 100, 100)
}

// CardHeight returns the card height for a given width. All cards use a
// 2:3 aspect ratio.
func CardHeight(size float64) float64 {
	return 3 * size / 2
}

// DrawFaceCard paints one face-up card at (x, y) with the given width.
func DrawFaceCard(s Surface, x, y float64, card game.CardCode, size float64) {
	if !card.Valid() {
		cardLogger.Error().Msgf("Invalid card code [%s]. Drawing it face down.", string(card))
		DrawBackCard(s, x, y, size)
		return
	}
	width := size
	height := CardHeight(size)
	base := SuitColor(card.Suit())

	s.FillRoundedRect(x, y, width, height, 5, base)
	s.StrokeRoundedRect(x, y, width, height, 5, 1, lighten(base))

	s.Text(card.RankLabel(), x+0.1*size, y+0.41*size, 0.4*size, white, AlignStart)
	drawSuit(s, x+width/2, y+width/2, width/2, card.Suit(), white)
}

// DrawBackCard paints one face-down card.
func DrawBackCard(s Surface, x, y, size float64) {
	width := size
	height := CardHeight(size)
	offset := 0.1 * size

	s.FillRoundedRect(x, y, width, height, 5, cardBack)
	s.StrokeRoundedRect(x, y, width, height, 5, 1, RGB(20, 50, 50))
	s.StrokeRoundedRect(x+offset, y+offset, width-2*offset, height-2*offset, 5, 1, RGB(90, 130, 130))
	s.StrokeRoundedRect(x+3*offset, y+3*offset, width-6*offset, height-6*offset, 5, 1, RGB(20, 80, 80))
}

func lighten(c Color) Color {
	bump := func(v uint8) uint8 {
		if v > 0x9b {
			return 0xff
		}
		return v + 100
	}
	return Color{R: bump(c.R), G: bump(c.G), B: bump(c.B), A: c.A}
}

func drawSuit(s Surface, x, y, size float64, suit byte, c Color) {
	height := CardHeight(size)
	switch suit {
	case 'c':
		drawClub(s, x, y, size, height, c)
	case 's':
		drawSpade(s, x, y, size, height, c)
	case 'h':
		drawHeart(s, x, y, size, height, c)
	case 'd':
		drawDiamond(s, x, y, size, height, c)
	default:
		cardLogger.Error().Msgf("Unknown suit [%c]. Must be one of [c, s, h, d].", suit)
	}
}

func drawClub(s Surface, x, y, width, height float64, c Color) {
	radius := width * 0.3
	bottomWidth := width * 0.5

	s.FillCircle(x, y+radius+height*0.05, radius, c)
	s.FillCircle(x+radius, y+height*0.6, radius, c)
	s.FillCircle(x-radius, y+height*0.6, radius, c)
	s.FillCircle(x, y+height*0.5, radius/2, c)

	stem := &Path{}
	stem.MoveTo(x, y+height*0.6)
	stem.QuadTo(x, y+height, x-bottomWidth/2, y+height)
	stem.LineTo(x+bottomWidth/2, y+height)
	stem.QuadTo(x, y+height, x, y+height*0.6)
	stem.Close()
	s.FillPath(stem, c)
}

func drawDiamond(s Surface, x, y, width, height float64, c Color) {
	p := &Path{}
	p.MoveTo(x, y)
	p.LineTo(x-width/2, y+height/2)
	p.LineTo(x, y+height)
	p.LineTo(x+width/2, y+height/2)
	p.Close()
	s.FillPath(p, c)
}

func drawHeart(s Surface, x, y, width, height float64, c Color) {
	topCurve := height * 0.3
	p := &Path{}
	p.MoveTo(x, y+topCurve)
	p.CubicTo(x, y, x-width/2, y, x-width/2, y+topCurve)
	p.CubicTo(x-width/2, y+(height+topCurve)/2, x, y+1.25*(height+topCurve)/2, x, y+height)
	p.CubicTo(x, y+1.25*(height+topCurve)/2, x+width/2, y+(height+topCurve)/2, x+width/2, y+topCurve)
	p.CubicTo(x+width/2, y, x, y, x, y+topCurve)
	p.Close()
	s.FillPath(p, c)
}

func drawSpade(s Surface, x, y, width, height float64, c Color) {
	bottomWidth := width * 0.7
	topHeight := height * 0.7
	bottomHeight := height * 0.3

	body := &Path{}
	body.MoveTo(x, y)
	body.CubicTo(x, y+topHeight/2, x-width/2, y+topHeight/2, x-width/2, y+topHeight)
	body.CubicTo(x-width/2, y+topHeight*1.3, x, y+topHeight*1.3, x, y+topHeight)
	body.CubicTo(x, y+topHeight*1.3, x+width/2, y+topHeight*1.3, x+width/2, y+topHeight)
	body.CubicTo(x+width/2, y+topHeight/2, x, y+topHeight/2, x, y)
	body.Close()
	s.FillPath(body, c)

	stem := &Path{}
	stem.MoveTo(x, y+topHeight)
	stem.QuadTo(x, y+topHeight+bottomHeight, x-bottomWidth/2, y+topHeight+bottomHeight)
	stem.LineTo(x+bottomWidth/2, y+topHeight+bottomHeight)
	stem.QuadTo(x, y+topHeight+bottomHeight, x, y+topHeight)
	stem.Close()
	s.FillPath(stem, c)
}
