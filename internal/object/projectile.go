package object

import (
	"math"

	"github.com/tomz197/splitroids/internal/physics"
)

// ProjectileMass is the mass of a fired projectile.
const ProjectileMass = 0.025

// ProjectileLifetime is how long projectiles last before disappearing.
const ProjectileLifetime = 1.0

// ProjectileDensity is low so that very light projectiles are still visible.
const ProjectileDensity = 0.001

// Projectile is a short-lived body fired by the ship.
type Projectile struct {
	physics.Body
	Lifetime float64 // Seconds from launch to expiry
	Life     float64 // Fraction of life remaining, 1.0 down to 0.0
}

// ProjectileRadius returns the radius of a projectile of the given mass.
func ProjectileRadius(mass float64) float64 {
	return math.Sqrt((mass / ProjectileDensity) / math.Pi)
}

// NewProjectile creates a projectile at (x, y) with its radius derived from
// mass.
func NewProjectile(mass, lifetime, x, y float64) *Projectile {
	return &Projectile{
		Body:     physics.NewBody(x, y, mass, ProjectileRadius(mass)),
		Lifetime: lifetime,
		Life:     1.0,
	}
}

// Update burns down the remaining life and moves the projectile.
func (p *Projectile) Update(elapsed float64, bounds physics.Bounds) {
	p.Life -= elapsed / p.Lifetime
	p.Body.Update(elapsed, bounds)
}

// Expired reports whether the projectile should be removed.
func (p *Projectile) Expired() bool {
	return p.Life <= 0
}
