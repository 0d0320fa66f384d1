package physics

import "math"

// Body is a point mass with a circular extent. Ship, projectile and asteroid
// all embed it and share its motion integration.
type Body struct {
	X, Y   float64 // Position (centre), screen units
	VX, VY float64 // Velocity, units/second
	Mass   float64
	Radius float64
	Angle  float64 // Orientation in radians, [0, 2π)
	Spin   float64 // Angular velocity, radians/second
}

// NewBody creates a body at rest at (x, y).
func NewBody(x, y, mass, radius float64) Body {
	return Body{X: x, Y: y, Mass: mass, Radius: radius}
}

// Update advances position and orientation by elapsed seconds and wraps the
// body around the playfield edges.
func (b *Body) Update(elapsed float64, bounds Bounds) {
	b.X += elapsed * b.VX
	b.Y += elapsed * b.VY
	b.Angle = NormalizeAngle(b.Angle + elapsed*b.Spin)
	b.X = wrap(b.X, bounds.Width, b.Radius)
	b.Y = wrap(b.Y, bounds.Height, b.Radius)
}

// wrap keeps v in [-r, size+r). The period is size+2r so a body fully leaves
// one edge before it reappears fully hidden behind the other.
func wrap(v, size, r float64) float64 {
	span := size + 2*r
	if v >= size+r {
		v -= span
	} else if v < -r {
		v += span
	}
	return v
}

// Push applies an instantaneous impulse of the given force along angle.
// Callers wanting a continuous force scale it by elapsed time themselves.
func (b *Body) Push(angle, force float64) {
	b.VX += (force / b.Mass) * math.Cos(angle)
	b.VY += (force / b.Mass) * math.Sin(angle)
}

// Twist turns the body directly, without touching its angular velocity.
func (b *Body) Twist(torque, elapsed float64) {
	b.Angle = NormalizeAngle(b.Angle + torque*elapsed)
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return math.Hypot(b.VX, b.VY)
}
