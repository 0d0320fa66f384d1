package object

import (
	"math"

	"github.com/tomz197/splitroids/internal/physics"
)

// Asteroid outline and motion defaults.
const (
	AsteroidNoise      = 0.2  // Outline jitter as a fraction of radius
	AsteroidSpin       = 5.0  // Default angular velocity, radians/second
	ChildRadiusFactor  = 0.75 // Child radius relative to its parent, regardless of mass
	segmentLength      = 15.0
	minAsteroidSegment = 5
	maxAsteroidSegment = 25
)

// Asteroid is a spinning rock with a jagged outline.
type Asteroid struct {
	physics.Body
	Noise float64
	Shape []float64 // Per-vertex offsets in [-1, 1], fixed for the asteroid's lifetime
}

// NewAsteroid creates an asteroid at (x, y) with a fresh random outline.
func NewAsteroid(rng Random, mass, x, y, radius float64) *Asteroid {
	a := &Asteroid{
		Body:  physics.NewBody(x, y, mass, radius),
		Noise: AsteroidNoise,
	}
	a.Spin = AsteroidSpin

	shape := make([]float64, SegmentCount(radius))
	for i := range shape {
		shape[i] = 2 * (rng.Float64() - 0.5)
	}
	a.Shape = shape
	return a
}

// SegmentCount returns the number of outline vertices for a radius:
// one per 15 units of circumference, between 5 and 25.
func SegmentCount(radius float64) int {
	n := int(math.Ceil(2 * math.Pi * radius / segmentLength))
	return min(maxAsteroidSegment, max(minAsteroidSegment, n))
}

// Split returns a child at the same position carrying fraction of this
// asteroid's mass. The child shrinks by a fixed factor and gets its own
// outline; it starts at rest.
func (a *Asteroid) Split(rng Random, fraction float64) *Asteroid {
	return NewAsteroid(rng, a.Mass*fraction, a.X, a.Y, a.Radius*ChildRadiusFactor)
}
