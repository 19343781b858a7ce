package display

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ajstarna/poker-client/render"
)

var surfaceLogger = log.With().Str("logger_name", "display::surface").Logger()

var (
	fontSource *text.GoTextFaceSource

	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		surfaceLogger.Fatal().Err(err).Msg("Unable to load embedded font")
	}
	fontSource = src

	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(whiteImage.Bounds().Inset(1)).(*ebiten.Image)
}

// ebitenSurface implements render.Surface on an ebiten image.
type ebitenSurface struct {
	dst *ebiten.Image
}

func newSurface(dst *ebiten.Image) *ebitenSurface {
	return &ebitenSurface{dst: dst}
}

func toColor(c render.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (s *ebitenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *ebitenSurface) FillRect(x, y, w, h float64, c render.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), toColor(c), true)
}

func roundedRectPath(x, y, w, h, radius float64) *vector.Path {
	r := float32(radius)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	if maxR := float32(w) / 2; r > maxR {
		r = maxR
	}
	if maxR := float32(h) / 2; r > maxR {
		r = maxR
	}

	var p vector.Path
	p.MoveTo(x0+r, y0)
	p.ArcTo(x1, y0, x1, y1, r)
	p.ArcTo(x1, y1, x0, y1, r)
	p.ArcTo(x0, y1, x0, y0, r)
	p.ArcTo(x0, y0, x1, y0, r)
	p.Close()
	return &p
}

func (s *ebitenSurface) fillVectorPath(p *vector.Path, c render.Color) {
	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	s.drawVertices(vs, is, c)
}

func (s *ebitenSurface) strokeVectorPath(p *vector.Path, lineWidth float64, c render.Color) {
	op := &vector.StrokeOptions{Width: float32(lineWidth)}
	vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, op)
	s.drawVertices(vs, is, c)
}

func (s *ebitenSurface) drawVertices(vs []ebiten.Vertex, is []uint16, c render.Color) {
	r := float32(c.R) / 0xff
	g := float32(c.G) / 0xff
	b := float32(c.B) / 0xff
	a := float32(c.A) / 0xff
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r * a
		vs[i].ColorG = g * a
		vs[i].ColorB = b * a
		vs[i].ColorA = a
	}
	s.dst.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	})
}

func (s *ebitenSurface) FillRoundedRect(x, y, w, h, radius float64, c render.Color) {
	s.fillVectorPath(roundedRectPath(x, y, w, h, radius), c)
}

func (s *ebitenSurface) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, c render.Color) {
	s.strokeVectorPath(roundedRectPath(x, y, w, h, radius), lineWidth, c)
}

func (s *ebitenSurface) FillCircle(x, y, radius float64, c render.Color) {
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(radius), toColor(c), true)
}

func (s *ebitenSurface) StrokeCircle(x, y, radius, lineWidth float64, c render.Color) {
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(radius), float32(lineWidth), toColor(c), true)
}

func (s *ebitenSurface) FillPath(p *render.Path, c render.Color) {
	var vp vector.Path
	for _, seg := range p.Segments {
		switch seg.Op {
		case render.OpMoveTo:
			vp.MoveTo(float32(seg.P1.X), float32(seg.P1.Y))
		case render.OpLineTo:
			vp.LineTo(float32(seg.P1.X), float32(seg.P1.Y))
		case render.OpQuadTo:
			vp.QuadTo(float32(seg.C1.X), float32(seg.C1.Y), float32(seg.P1.X), float32(seg.P1.Y))
		case render.OpCubicTo:
			vp.CubicTo(
				float32(seg.C1.X), float32(seg.C1.Y),
				float32(seg.C2.X), float32(seg.C2.Y),
				float32(seg.P1.X), float32(seg.P1.Y))
		case render.OpClose:
			vp.Close()
		}
	}
	s.fillVectorPath(&vp, c)
}

func (s *ebitenSurface) Text(str string, x, y, fontSize float64, c render.Color, align render.Align) {
	face := &text.GoTextFace{Source: fontSource, Size: fontSize}
	op := &text.DrawOptions{}
	// y is the baseline; text/v2 positions from the top of the line.
	op.GeoM.Translate(x, y-fontSize)
	op.ColorScale.ScaleWithColor(toColor(c))
	if align == render.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(s.dst, str, face, op)
}
