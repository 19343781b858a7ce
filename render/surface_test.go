package render

// fakeSurface records draw calls for assertions without a real display.
type fakeSurface struct {
	width, height float64

	ops     int
	fills   int
	strokes int
	paths   int
	texts   int
	labels  []string
}

func (f *fakeSurface) Size() (float64, float64) {
	return f.width, f.height
}

func (f *fakeSurface) FillRect(x, y, w, h float64, c Color) {
	f.ops++
	f.fills++
}

func (f *fakeSurface) FillRoundedRect(x, y, w, h, radius float64, c Color) {
	f.ops++
	f.fills++
}

func (f *fakeSurface) StrokeRoundedRect(x, y, w, h, radius, lineWidth float64, c Color) {
	f.ops++
	f.strokes++
}

func (f *fakeSurface) FillCircle(x, y, radius float64, c Color) {
	f.ops++
	f.fills++
}

func (f *fakeSurface) StrokeCircle(x, y, radius, lineWidth float64, c Color) {
	f.ops++
	f.strokes++
}

func (f *fakeSurface) FillPath(p *Path, c Color) {
	f.ops++
	f.paths++
}

func (f *fakeSurface) Text(s string, x, y, fontSize float64, c Color, align Align) {
	f.ops++
	f.texts++
	f.labels = append(f.labels, s)
}
