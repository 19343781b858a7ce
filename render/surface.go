package render

// Surface is the drawing target the table renderer paints onto. The
// display adapter implements it on top of the real canvas; tests use a
// recording fake. Coordinates are pixels, origin top-left.
type Surface interface {
	Size() (width, height float64)
	FillRect(x, y, w, h float64, c Color)
	FillRoundedRect(x, y, w, h, radius float64, c Color)
	StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, c Color)
	FillCircle(x, y, radius float64, c Color)
	StrokeCircle(x, y, radius, lineWidth float64, c Color)
	FillPath(p *Path, c Color)
	// Text draws one line at the given font size. Alignment is relative
	// to x; y is the baseline.
	Text(s string, x, y, fontSize float64, c Color, align Align)
}

type Align int

const (
	AlignStart Align = iota
	AlignCenter
)

type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 0xff}
}

func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Path is a filled outline built from move/line/curve segments. The suit
// glyphs are drawn with paths so they scale with the viewport.
type Path struct {
	Segments []PathSegment
}

type PathOp int

const (
	OpMoveTo PathOp = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// PathSegment holds up to three points depending on the op: MoveTo/LineTo
// use P1, QuadTo uses C1+P1, CubicTo uses C1+C2+P1.
type PathSegment struct {
	Op     PathOp
	C1, C2 Point
	P1     Point
}

type Point struct {
	X, Y float64
}

func (p *Path) MoveTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: OpMoveTo, P1: Point{x, y}})
}

func (p *Path) LineTo(x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: OpLineTo, P1: Point{x, y}})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.Segments = append(p.Segments, PathSegment{Op: OpQuadTo, C1: Point{cx, cy}, P1: Point{x, y}})
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segments = append(p.Segments, PathSegment{
		Op: OpCubicTo,
		C1: Point{c1x, c1y},
		C2: Point{c2x, c2y},
		P1: Point{x, y},
	})
}

func (p *Path) Close() {
	p.Segments = append(p.Segments, PathSegment{Op: OpClose})
}
