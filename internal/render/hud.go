package render

import (
	"strconv"
)

// labelGap separates a label from the bar that follows it.
const labelGap = 5.0

// Indicator is a labelled bar gauge.
type Indicator struct {
	Label         string
	X, Y          float64
	Width, Height float64
}

// Draw renders the bar filled to fraction, clamped to [0, 1].
func (in Indicator) Draw(s Surface, fraction float64) {
	fraction = min(max(fraction, 0), 1)

	s.SetTone(ToneNormal)
	s.Text(in.X, in.Y, in.Label, AlignStart)

	left := in.X + s.TextWidth(in.Label) + labelGap
	s.Polygon(rect(left, in.Y, in.Width, in.Height), false)
	if fraction > 0 {
		s.Polygon(rect(left, in.Y, in.Width*fraction, in.Height), true)
	}
}

// NumberIndicator is a label followed by a number with fixed decimals.
type NumberIndicator struct {
	Label  string
	X, Y   float64
	Digits int
	Align  Align
}

// Format returns the text Draw would print for value.
func (n NumberIndicator) Format(value float64) string {
	return n.Label + strconv.FormatFloat(value, 'f', n.Digits, 64)
}

func (n NumberIndicator) Draw(s Surface, value float64) {
	s.SetTone(ToneNormal)
	s.Text(n.X, n.Y, n.Format(value), n.Align)
}

// Message is a centred two line banner.
type Message struct {
	X, Y       float64
	LineHeight float64
}

func (m Message) Draw(s Surface, main, sub string) {
	s.SetTone(ToneNormal)
	s.Text(m.X, m.Y, main, AlignCenter)
	if sub != "" {
		s.Text(m.X, m.Y+m.LineHeight, sub, AlignCenter)
	}
}

func rect(x, y, w, h float64) []Point {
	return []Point{
		{X: x, Y: y},
		{X: x + w, Y: y},
		{X: x + w, Y: y + h},
		{X: x, Y: y + h},
	}
}
