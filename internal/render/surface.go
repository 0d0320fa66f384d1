// Package render draws the game world and HUD onto any Surface. Surfaces
// work in playfield (logical) coordinates; each host scales to its own
// resolution.
package render

// Point is a 2D coordinate in logical units.
type Point struct {
	X, Y float64
}

// Align controls horizontal text placement relative to the anchor x.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Tone is a hint for how prominent the next shapes should be. Monochrome
// surfaces may ignore it.
type Tone int

const (
	ToneNormal Tone = iota
	ToneFaint       // Guides, fading projectiles
	ToneAlert       // Damage highlight
)

// Surface is the drawing contract the renderers target.
type Surface interface {
	SetTone(t Tone)
	Line(p1, p2 Point)
	Polygon(points []Point, filled bool)
	Circle(center Point, radius float64, filled bool)
	Text(x, y float64, s string, align Align)
	// TextWidth returns the logical width the surface will use for s.
	TextWidth(s string) float64
}
