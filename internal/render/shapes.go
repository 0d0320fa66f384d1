package render

import (
	"math"

	"github.com/tomz197/splitroids/internal/object"
)

// gridSpacing is the distance between guide grid lines.
const gridSpacing = 100.0

// local maps a point given in body-local coordinates (x forward) into the
// playfield, rotating by angle around (cx, cy).
func local(cx, cy, angle, x, y float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{
		X: cx + x*cos - y*sin,
		Y: cy + x*sin + y*cos,
	}
}

// AsteroidOutline returns the jagged outline of an asteroid: one vertex per
// shape entry, pushed in or out by Noise times the radius.
func AsteroidOutline(a *object.Asteroid) []Point {
	n := len(a.Shape)
	points := make([]Point, n)
	for i, offset := range a.Shape {
		theta := float64(i) * 2 * math.Pi / float64(n)
		r := a.Radius * (1 + a.Noise*offset)
		points[i] = local(a.X, a.Y, a.Angle, r*math.Cos(theta), r*math.Sin(theta))
	}
	return points
}

// DrawAsteroid draws the outline, plus the collision circle in guide mode.
func DrawAsteroid(s Surface, a *object.Asteroid, guide bool) {
	s.SetTone(ToneNormal)
	s.Polygon(AsteroidOutline(a), false)
	if guide {
		s.SetTone(ToneFaint)
		s.Circle(Point{X: a.X, Y: a.Y}, a.Radius, false)
	}
}

// ShipHull returns the ship outline: an arrowhead whose nose sits on the
// collision circle along the heading.
func ShipHull(ship *object.Ship) []Point {
	r := ship.Radius
	return []Point{
		local(ship.X, ship.Y, ship.Angle, r, 0),
		local(ship.X, ship.Y, ship.Angle, r*math.Cos(2.5), r*math.Sin(2.5)),
		local(ship.X, ship.Y, ship.Angle, -r*0.4, 0),
		local(ship.X, ship.Y, ship.Angle, r*math.Cos(2.5), -r*math.Sin(2.5)),
	}
}

// DrawShip draws the hull and any active thruster flames. In guide mode the
// collision circle is shown, filled while the ship is compromised.
func DrawShip(s Surface, ship *object.Ship, guide bool) {
	r := ship.Radius
	centre := Point{X: ship.X, Y: ship.Y}

	if guide && ship.Compromised {
		s.SetTone(ToneAlert)
		s.Circle(centre, r, true)
	}

	s.SetTone(ToneNormal)
	s.Polygon(ShipHull(ship), false)

	if ship.Thruster {
		s.Polygon([]Point{
			local(ship.X, ship.Y, ship.Angle, -r*0.5, r*0.25),
			local(ship.X, ship.Y, ship.Angle, -r*1.2, 0),
			local(ship.X, ship.Y, ship.Angle, -r*0.5, -r*0.25),
		}, false)
	}
	if ship.Reverse {
		for _, side := range []float64{1, -1} {
			s.Line(
				local(ship.X, ship.Y, ship.Angle, r*0.3, side*r*0.5),
				local(ship.X, ship.Y, ship.Angle, r*0.8, side*r*0.7),
			)
		}
	}

	if guide {
		s.SetTone(ToneFaint)
		s.Circle(centre, r, false)
		s.Line(centre, local(ship.X, ship.Y, ship.Angle, r*1.5, 0))
	}
}

// DrawProjectile draws a projectile, fading it over the last half of its
// life.
func DrawProjectile(s Surface, p *object.Projectile, guide bool) {
	tone := ToneNormal
	if p.Life < 0.5 {
		tone = ToneFaint
	}
	s.SetTone(tone)
	s.Circle(Point{X: p.X, Y: p.Y}, p.Radius, true)
	if guide {
		s.SetTone(ToneFaint)
		s.Circle(Point{X: p.X, Y: p.Y}, p.Radius*2, false)
	}
}

// DrawGrid draws the guide grid across the playfield.
func DrawGrid(s Surface, width, height float64) {
	s.SetTone(ToneFaint)
	for x := gridSpacing; x < width; x += gridSpacing {
		s.Line(Point{X: x, Y: 0}, Point{X: x, Y: height})
	}
	for y := gridSpacing; y < height; y += gridSpacing {
		s.Line(Point{X: 0, Y: y}, Point{X: width, Y: y})
	}
}
