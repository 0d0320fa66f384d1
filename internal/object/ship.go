package object

import (
	"math"

	"github.com/tomz197/splitroids/internal/physics"
)

// Ship tuning.
const (
	ShipThrust        = 2.0
	ShipSteeringPower = 3.0
	ShipRecoil        = 5.0  // Impulse applied to both ship and projectile on fire
	ShipReloadTime    = 0.25 // Seconds between shots
	ShipMaxHealth     = 2.0  // Drains at 1 unit/second while touching an asteroid
	reverseFactor     = 0.75
)

// Ship is the player-controlled body.
type Ship struct {
	physics.Body

	Health        float64
	MaxHealth     float64
	Thrust        float64
	SteeringPower float64
	Recoil        float64

	// Control flags, written by input handling and read on the next update.
	Thruster      bool
	Reverse       bool
	LeftThruster  bool
	RightThruster bool
	Trigger       bool

	// Compromised is set by the world while the ship overlaps an asteroid.
	Compromised bool

	ReloadTime        float64
	TimeUntilReloaded float64
	Loaded            bool
}

// NewShip creates a ship at rest at (x, y), unloaded until its first reload
// completes.
func NewShip(x, y, mass, radius float64) *Ship {
	return &Ship{
		Body:              physics.NewBody(x, y, mass, radius),
		Health:            ShipMaxHealth,
		MaxHealth:         ShipMaxHealth,
		Thrust:            ShipThrust,
		SteeringPower:     ShipSteeringPower,
		Recoil:            ShipRecoil,
		ReloadTime:        ShipReloadTime,
		TimeUntilReloaded: ShipReloadTime,
	}
}

// Update applies the control flags, integrates motion, advances the reload
// timer and drains health while compromised.
//
// Thrust is scaled by elapsed before the impulse is applied, so acceleration
// depends on frame rate. That is how the game has always felt; keep it.
func (s *Ship) Update(elapsed float64, bounds physics.Bounds) {
	if s.Thruster {
		s.Push(s.Angle, s.Thrust*elapsed)
	}
	if s.Reverse {
		s.Push(s.Angle+math.Pi, s.Thrust*reverseFactor*elapsed)
	}
	s.Twist((boolToFloat(s.RightThruster)-boolToFloat(s.LeftThruster))*s.SteeringPower, elapsed)
	s.Body.Update(elapsed, bounds)

	if s.TimeUntilReloaded > 0 {
		s.TimeUntilReloaded -= math.Min(elapsed, s.TimeUntilReloaded)
	}
	s.Loaded = s.TimeUntilReloaded == 0

	if s.Compromised {
		s.Health -= math.Min(elapsed, s.Health)
	}
}

// Fire launches a projectile from the ship's nose and restarts the reload
// timer. Ship and projectile receive equal and opposite impulses. Callers
// gate this on Loaded && Trigger.
func (s *Ship) Fire() *Projectile {
	s.TimeUntilReloaded = s.ReloadTime
	s.Loaded = false

	p := NewProjectile(
		ProjectileMass, ProjectileLifetime,
		s.X+math.Cos(s.Angle)*s.Radius,
		s.Y+math.Sin(s.Angle)*s.Radius,
	)
	p.Push(s.Angle, s.Recoil)
	s.Push(s.Angle+math.Pi, s.Recoil)
	return p
}

// Dead reports whether the ship's health is exhausted.
func (s *Ship) Dead() bool {
	return s.Health <= 0
}

// HealthFraction returns health as a fraction of max health.
func (s *Ship) HealthFraction() float64 {
	if s.MaxHealth <= 0 {
		return 0
	}
	return s.Health / s.MaxHealth
}

// ReleaseControls clears every control flag.
func (s *Ship) ReleaseControls() {
	s.Thruster = false
	s.Reverse = false
	s.LeftThruster = false
	s.RightThruster = false
	s.Trigger = false
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
