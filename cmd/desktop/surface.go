package main

import (
	"image"
	"image/color"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/splitroids/internal/render"
)

// Debug font metrics used by ebitenutil.DebugPrintAt.
const (
	glyphWidth  = 6
	glyphHeight = 16
)

const strokeWidth = 1.5

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// surface adapts an ebiten screen to render.Surface. The screen is swapped
// in every Draw.
type surface struct {
	screen   *ebiten.Image
	color    color.RGBA
	vertices []ebiten.Vertex
	indices  []uint16
}

var _ render.Surface = (*surface)(nil)

func toneColor(t render.Tone) color.RGBA {
	switch t {
	case render.ToneFaint:
		return color.RGBA{R: 90, G: 90, B: 110, A: 255}
	case render.ToneAlert:
		return color.RGBA{R: 200, G: 40, B: 40, A: 255}
	default:
		return color.RGBA{R: 230, G: 230, B: 230, A: 255}
	}
}

func (s *surface) SetTone(t render.Tone) {
	s.color = toneColor(t)
}

func (s *surface) Line(p1, p2 render.Point) {
	vector.StrokeLine(s.screen, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), strokeWidth, s.color, true)
}

func (s *surface) Polygon(points []render.Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		s.fill(points)
	}
	for i := range points {
		s.Line(points[i], points[(i+1)%len(points)])
	}
}

// fill draws a triangle fan. The polygons the renderers fill are convex.
func (s *surface) fill(points []render.Point) {
	r, g, b, a := float32(s.color.R)/255, float32(s.color.G)/255, float32(s.color.B)/255, float32(s.color.A)/255
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
	for _, p := range points {
		s.vertices = append(s.vertices, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	for i := 1; i+1 < len(points); i++ {
		s.indices = append(s.indices, 0, uint16(i), uint16(i+1))
	}
	s.screen.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (s *surface) Circle(center render.Point, radius float64, filled bool) {
	if filled {
		vector.DrawFilledCircle(s.screen, float32(center.X), float32(center.Y), float32(radius), s.color, true)
		return
	}
	vector.StrokeCircle(s.screen, float32(center.X), float32(center.Y), float32(radius), strokeWidth, s.color, true)
}

func (s *surface) Text(x, y float64, str string, align render.Align) {
	w := s.TextWidth(str)
	switch align {
	case render.AlignCenter:
		x -= w / 2
	case render.AlignEnd:
		x -= w
	}
	ebitenutil.DebugPrintAt(s.screen, str, int(x), int(y)-glyphHeight/4)
}

func (s *surface) TextWidth(str string) float64 {
	return float64(utf8.RuneCountInString(str) * glyphWidth)
}
