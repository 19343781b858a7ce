package render

import (
	"math"

	"github.com/rs/zerolog/log"

	"github.com/ajstarna/poker-client/logging"
)

var geometryLogger = log.With().Str("logger_name", "render::geometry").Logger()

// MaxSeats is the largest table the layout supports. Every anchor table
// below has exactly one entry per rotated index 0..MaxSeats-1.
const MaxSeats = 9

// RotatedIndex renumbers a raw seat index so the local viewer always lands
// at rotated index 0, with the other seats following clockwise.
func RotatedIndex(actual, yours int) int {
	return ((actual-yours)%MaxSeats + MaxSeats) % MaxSeats
}

// Anchor is a pixel position on the surface.
type Anchor struct {
	X, Y float64
}

// offsets are expressed as multiples of a scale unit derived from the
// viewport, one (dx, dy) pair per rotated index. Index 0 is the bottom
// center (the viewer); indices walk counterclockwise around the table.
type seatOffset struct {
	dx, dy float64
}

var playerOffsets = [MaxSeats]seatOffset{
	{0, 1},
	{-2.0 / 3.0, 0.95},
	{-1, 1.0 / 3.0},
	{-1, -1.0 / 3.0},
	{-1.0 / 3.0, -4.0 / 5.0},
	{1.0 / 3.0, -4.0 / 5.0},
	{1, -1.0 / 3.0},
	{1, 1.0 / 3.0},
	{2.0 / 3.0, 0.95},
}

var chipsOffsets = [MaxSeats]seatOffset{
	{0, 1},
	{-0.9, 0.85},
	{-1, 0.4},
	{-1, -0.5},
	{-0.55, -0.9},
	{0.65, -0.9},
	{1, -0.5},
	{1, 0.4},
	{0.9, 0.85},
}

var buttonOffsets = [MaxSeats]seatOffset{
	{0.35, 0.9},
	{-0.6, 0.9},
	{-1, 0.5},
	{-1.05, -0.25},
	{-0.75, -4.0 / 5.0},
	{0.15, -0.85},
	{0.85, -0.7},
	{1.05, 0.1},
	{1, 0.75},
}

func anchorFor(table *[MaxSeats]seatOffset, index int, width, height, scale float64) Anchor {
	if index < 0 || index >= MaxSeats {
		geometryLogger.Error().
			Int(logging.SeatNumKey, index).
			Msgf("Rotated seat index out of range. Needs to be between 0 and %d.", MaxSeats-1)
		return Anchor{}
	}
	size := math.Min(width, height)
	unit := scale * size / 2
	off := table[index]
	return Anchor{
		X: width/2 + off.dx*unit,
		Y: height/2 + off.dy*unit,
	}
}

// PlayerAnchor is the center of the seat's info box.
func PlayerAnchor(rotated int, width, height float64) Anchor {
	return anchorFor(&playerOffsets, rotated, width, height, 0.8)
}

// ChipsAnchor is where the seat's street contribution chips sit.
func ChipsAnchor(rotated int, width, height float64) Anchor {
	return anchorFor(&chipsOffsets, rotated, width, height, 0.45)
}

// ButtonAnchor is where the dealer button sits for the seat.
func ButtonAnchor(rotated int, width, height float64) Anchor {
	return anchorFor(&buttonOffsets, rotated, width, height, 0.55)
}
