// Package physics provides point-mass integration, screen wrapping and
// collision detection for the game world.
package physics

import "math"

// TwoPi is a full turn in radians.
const TwoPi = 2 * math.Pi

// Bounds is the size of the playfield. Bodies wrap toroidally at its edges.
type Bounds struct {
	Width  float64
	Height float64
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Collides reports whether two bodies overlap: the distance between their
// centres is strictly less than the sum of their radii.
func Collides(a, b *Body) bool {
	return CirclesOverlap(a.X, a.Y, a.Radius, b.X, b.Y, b.Radius)
}

// NormalizeAngle maps an angle into [0, 2π).
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, TwoPi)
	if angle < 0 {
		angle += TwoPi
	}
	if angle >= TwoPi {
		angle = 0
	}
	return angle
}
