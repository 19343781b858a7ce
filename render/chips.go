package render

import "strconv"

// Denomination is one chip value with its face color.
type Denomination struct {
	Value int
	Color Color
}

// DefaultDenominations is the standard descending ladder. The trailing 1
// guarantees every non-negative value decomposes exactly.
var DefaultDenominations = []Denomination{
	{1000, RGB(0xf1, 0x9b, 0x0e)},
	{500, RGB(0x8e, 0x44, 0xad)},
	{100, RGB(0x20, 0x20, 0x20)},
	{25, RGB(0x0, 0x96, 0x0)},
	{20, RGB(0x77, 0x77, 0x77)},
	{10, RGB(0x0, 0x0, 0xcc)},
	{5, RGB(0xc8, 0x0, 0x0)},
	{1, RGB(0xee, 0xee, 0xee)},
}

// ChipGroup is the count of one denomination in a decomposition.
type ChipGroup struct {
	Denom Denomination
	Count int
}

// Decompose greedily breaks a value into denomination counts, largest
// first. The remainder at each rung carries to the next, so as long as the
// ladder ends in 1 the groups sum back exactly to the input.
func Decompose(value int, denoms []Denomination) []ChipGroup {
	if value <= 0 {
		return nil
	}
	var groups []ChipGroup
	remaining := value
	for _, d := range denoms {
		if d.Value <= 0 {
			continue
		}
		count := remaining / d.Value
		if count == 0 {
			continue
		}
		remaining -= count * d.Value
		groups = append(groups, ChipGroup{Denom: d, Count: count})
	}
	return groups
}

const maxStackHeight = 3
const minStacks = 3

// ChipStack is one visual pile, at most maxStackHeight chips tall.
type ChipStack struct {
	Chips []Denomination
}

// BuildStacks lays the decomposed chips into piles: at least minStacks
// piles, none taller than maxStackHeight.
func BuildStacks(groups []ChipGroup) []ChipStack {
	total := 0
	for _, g := range groups {
		total += g.Count
	}
	if total == 0 {
		return nil
	}

	numStacks := (total + maxStackHeight - 1) / maxStackHeight
	if numStacks < minStacks {
		numStacks = minStacks
	}

	stacks := make([]ChipStack, numStacks)
	i := 0
	for _, g := range groups {
		for n := 0; n < g.Count; n++ {
			for len(stacks[i].Chips) >= maxStackHeight {
				i = (i + 1) % numStacks
			}
			stacks[i].Chips = append(stacks[i].Chips, g.Denom)
			i = (i + 1) % numStacks
		}
	}
	return stacks
}

// StackOffset gives the pile's position relative to the group anchor, in
// units of the chip radius. Odd piles fan out horizontally; even piles
// step out both horizontally and vertically.
func StackOffset(stackIndex int) (dx, dy float64) {
	if stackIndex == 0 {
		return 0, 0
	}
	if stackIndex%2 == 1 {
		return 2.2 * float64((stackIndex+1)/2), 0.2
	}
	return -2.2 * float64(stackIndex/2), 1.4
}

// DrawChips paints one chip group: the piles, then a single total label.
// A zero value draws nothing.
func DrawChips(s Surface, value int, denoms []Denomination, x, y, size float64) {
	if value <= 0 {
		return
	}

	stacks := BuildStacks(Decompose(value, denoms))
	chipRadius := 0.15 * size

	for i, stack := range stacks {
		dx, dy := StackOffset(i)
		cx := x + dx*chipRadius
		cy := y + dy*chipRadius
		for j, chip := range stack.Chips {
			offY := cy - 0.35*chipRadius*float64(j)
			s.FillCircle(cx, offY, chipRadius, chip.Color)
			s.StrokeCircle(cx, offY, chipRadius, 1, RGB(0, 0, 0))
			s.FillCircle(cx, offY, 0.6*chipRadius, RGB(0xee, 0xee, 0xee))
			s.StrokeCircle(cx, offY, 0.6*chipRadius, 1, RGB(0, 0, 0))
		}
	}

	// One label per group, never per chip.
	w := size
	h := 0.25 * size
	s.FillRoundedRect(x-w/2, y-h/2, w, h, 5, RGBA(0, 0, 0, 0x66))
	s.StrokeRoundedRect(x-w/2, y-h/2, w, h, 5, 1, RGB(0, 0, 0))
	s.Text(strconv.Itoa(value), x-w/2+0.3*size, y-h/2+0.2*size, 0.2*size, RGB(0xff, 0xff, 0xff), AlignStart)
}
