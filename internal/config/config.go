package config

import "time"

// Playfield size in logical units. Terminal and window renderers scale
// these to their actual resolution.
const (
	CanvasWidth  = 800
	CanvasHeight = 600
)

// World tuning.
const (
	AsteroidMass   = 5000.0
	AsteroidRadius = 40.0
	MassDestroyed  = 500.0    // Mass removed (and scored) per projectile hit
	AsteroidPush   = 500000.0 // Scales the random spin kick given to new asteroids
	ShipMass       = 1.0
	ShipRadius     = 15.0
)

// KickElapsed is the frame time assumed when kicking asteroids spawned
// outside a frame update (level start).
const KickElapsed = 0.015

// Frame pacing for the terminal host.
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)

// KeyHoldDuration is how long a terminal key counts as held after its last
// byte arrives. Terminals send no key-up, only auto-repeat, so this must
// cover the initial repeat delay.
const KeyHoldDuration = 120 * time.Millisecond

// Environment variable names.
const (
	EnvLogLevel = "ASTEROIDS_LOG_LEVEL"
	EnvLogFile  = "ASTEROIDS_LOG_FILE"
	EnvSeed     = "ASTEROIDS_SEED"
)
