package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tomz197/splitroids/internal/render"
)

// Point is a 2D coordinate in logical space.
type Point = render.Point

// circleSegments is the number of edges used to approximate a circle.
const circleSegments = 24

// textItem is a text overlay queued for Render.
type textItem struct {
	col, row int
	s        string
	tone     render.Tone
}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// It scales from logical coordinates to terminal pixels and implements render.Surface.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []uint8 // Flat slice: [y * termWidth + x], 0 if empty, else tone+1

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	tone  render.Tone
	texts []textItem

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	circleBuf       []Point
}

var _ render.Surface = (*Canvas)(nil)

// NewCanvas creates a canvas for termWidth x termHeight terminal cells showing
// a logicalWidth x logicalHeight playfield.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	termWidth = max(termWidth, 1)
	termHeight = max(termHeight, 1)
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]uint8, subPixelHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// Clear resets all pixels and queued text.
func (c *Canvas) Clear() {
	clear(c.pixels)
	c.texts = c.texts[:0]
	c.tone = render.ToneNormal
}

// SetTone sets the tone for subsequent shapes and text.
func (c *Canvas) SetTone(t render.Tone) {
	c.tone = t
}

// setPixel sets a pixel at actual terminal coordinates (no scaling). A
// faint pixel never overwrites a brighter one.
func (c *Canvas) setPixel(x, y int) {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return
	}
	i := y*c.termWidth + x
	v := uint8(c.tone) + 1
	if c.pixels[i] == 0 || rank(v) > rank(c.pixels[i]) {
		c.pixels[i] = v
	}
}

// rank orders stored pixel values by prominence.
func rank(v uint8) int {
	if v == 0 {
		return 0
	}
	switch render.Tone(v - 1) {
	case render.ToneFaint:
		return 1
	case render.ToneNormal:
		return 2
	default:
		return 3
	}
}

// Line draws a line using Bresenham's algorithm.
func (c *Canvas) Line(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed outline, filling the interior with a scanline pass
// when filled is set.
func (c *Canvas) Polygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.Line(points[i], points[(i+1)%n])
	}
}

// Circle draws a circle as a regular polygon.
func (c *Canvas) Circle(center Point, radius float64, filled bool) {
	if radius*c.scaleX < 1 && radius*c.scaleY < 1 {
		c.setPixel(int(math.Round(center.X*c.scaleX)), int(math.Round(center.Y*c.scaleY)))
		return
	}
	if cap(c.circleBuf) < circleSegments {
		c.circleBuf = make([]Point, circleSegments)
	}
	points := c.circleBuf[:circleSegments]
	for i := range points {
		sin, cos := math.Sincos(float64(i) * 2 * math.Pi / circleSegments)
		points[i] = Point{X: center.X + radius*cos, Y: center.Y + radius*sin}
	}
	c.Polygon(points, filled)
}

// Text queues s for output after the pixels, anchored at logical (x, y).
func (c *Canvas) Text(x, y float64, s string, align render.Align) {
	col, row := c.LogicalToTerminal(x, y)
	n := utf8.RuneCountInString(s)
	switch align {
	case render.AlignCenter:
		col -= n / 2
	case render.AlignEnd:
		col -= n
	}
	c.texts = append(c.texts, textItem{col: max(col, 1), row: row, s: s, tone: c.tone})
}

// TextWidth returns the logical width covered by s, one terminal column per
// rune.
func (c *Canvas) TextWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) / c.scaleX
}

// fillPolygon fills a polygon using a scanline algorithm in pixel space.
func (c *Canvas) fillPolygon(points []Point) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				intersections = append(intersections, p1.X+t*(p2.X-p1.X))
			}
		}
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// Render writes the canvas to w as absolute-positioned half-block cells,
// followed by the queued text. Empty cells are skipped, so the caller
// clears the screen between frames.
func (c *Canvas) Render(w io.Writer) error {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	color := ""
	setColor := func(want string) {
		if want != color {
			c.renderBuf.WriteString(want)
			color = want
		}
	}

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]

			var ch rune
			switch {
			case top != 0 && bottom != 0:
				ch = BlockFull
			case top != 0:
				ch = BlockUpperHalf
			case bottom != 0:
				ch = BlockLowerHalf
			default:
				continue
			}

			v := top
			if rank(bottom) > rank(top) {
				v = bottom
			}
			setColor(toneColor(render.Tone(v - 1)))
			c.moveCursor(col+1, row+1)
			c.renderBuf.WriteRune(ch)
		}
	}

	for _, t := range c.texts {
		setColor(toneColor(t.tone))
		c.moveCursor(t.col, t.row)
		c.renderBuf.WriteString(t.s)
	}
	setColor(ColorReset)

	_, err := io.WriteString(w, c.renderBuf.String())
	return err
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// toneColor maps a tone to its ANSI color sequence.
func toneColor(t render.Tone) string {
	switch t {
	case render.ToneFaint:
		return ColorBrightBlack
	case render.ToneAlert:
		return ColorRed
	default:
		return ColorReset
	}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row).
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
