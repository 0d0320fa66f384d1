// Package game runs the asteroid field: it owns the ship, asteroids and
// projectiles, advances them each frame, resolves collisions, applies the
// split and scoring rules and tracks level and game-over state.
package game

import (
	"math"
	"math/rand"

	"github.com/tomz197/splitroids/internal/config"
	"github.com/tomz197/splitroids/internal/object"
	"github.com/tomz197/splitroids/internal/physics"
)

// Options configures a new Game. Zero values take the defaults from the
// config package.
type Options struct {
	Bounds physics.Bounds
	Rand   object.Random
	Seed   int64 // Used when Rand is nil
}

// Game is the world state. It is single-owner: only Update and HandleKey
// mutate it, and renderers only read it between frames.
type Game struct {
	Bounds      physics.Bounds
	Ship        *object.Ship
	Asteroids   []*object.Asteroid
	Projectiles []*object.Projectile

	Score    float64
	Level    int
	GameOver bool
	Guide    bool // Debug overlay toggle, read by renderers

	AsteroidMass   float64
	AsteroidRadius float64
	MassDestroyed  float64
	AsteroidPush   float64
	ShipMass       float64
	ShipRadius     float64

	rng  object.Random
	grid *physics.SpatialGrid
}

// New creates a game at level 1 with a single drifting asteroid.
func New(opts Options) *Game {
	bounds := opts.Bounds
	if bounds.Width <= 0 || bounds.Height <= 0 {
		bounds = physics.Bounds{Width: config.CanvasWidth, Height: config.CanvasHeight}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(opts.Seed))
	}

	g := &Game{
		Bounds:         bounds,
		Level:          1,
		AsteroidMass:   config.AsteroidMass,
		AsteroidRadius: config.AsteroidRadius,
		MassDestroyed:  config.MassDestroyed,
		AsteroidPush:   config.AsteroidPush,
		ShipMass:       config.ShipMass,
		ShipRadius:     config.ShipRadius,
		rng:            rng,
		grid:           physics.NewSpatialGrid(bounds, config.AsteroidRadius),
	}
	g.Ship = g.newShip()
	g.Asteroids = append(g.Asteroids, g.movingAsteroid(config.KickElapsed))
	return g
}

func (g *Game) newShip() *object.Ship {
	return object.NewShip(g.Bounds.Width/2, g.Bounds.Height/2, g.ShipMass, g.ShipRadius)
}

// Update advances the world by elapsed seconds.
//
// Elapsed is not clamped: a very long frame can carry a projectile straight
// through an asteroid without a collision being seen.
func (g *Game) Update(elapsed float64) {
	if g.GameOver {
		return
	}
	if len(g.Asteroids) == 0 {
		g.LevelUp()
	}
	if g.Ship.Dead() {
		g.GameOver = true
		return
	}

	g.Ship.Compromised = false
	for _, a := range g.Asteroids {
		a.Update(elapsed, g.Bounds)
		if physics.Collides(&a.Body, &g.Ship.Body) {
			g.Ship.Compromised = true
		}
	}
	g.Ship.Update(elapsed, g.Bounds)

	g.updateProjectiles(elapsed)

	if g.Ship.Trigger && g.Ship.Loaded {
		g.Projectiles = append(g.Projectiles, g.Ship.Fire())
	}
}

// updateProjectiles moves every projectile, drops expired ones and lets each
// survivor destroy at most one asteroid: the lowest-indexed one it overlaps,
// including fragments created earlier in the same pass. Destroyed asteroids
// are left as nil until the pass ends so indices stay stable.
func (g *Game) updateProjectiles(elapsed float64) {
	g.indexAsteroids()

	kept := g.Projectiles[:0]
	for _, p := range g.Projectiles {
		p.Update(elapsed, g.Bounds)
		if p.Expired() {
			continue
		}

		hit := g.grid.First(p.X, p.Y, func(i int) bool {
			a := g.Asteroids[i]
			return a != nil && physics.Collides(&a.Body, &p.Body)
		})
		if hit < 0 {
			kept = append(kept, p)
			continue
		}

		a := g.Asteroids[hit]
		g.Asteroids[hit] = nil
		g.splitAsteroid(a, elapsed)
	}
	clear(g.Projectiles[len(kept):])
	g.Projectiles = kept

	g.compactAsteroids()
}

// indexAsteroids rebuilds the broad-phase grid. The cell size covers the
// largest asteroid plus the largest projectile so a 3x3 query is enough.
// Fragments are always smaller than their parent, so the size still holds
// for asteroids added during the pass.
func (g *Game) indexAsteroids() {
	var maxAsteroid, maxProjectile float64
	for _, a := range g.Asteroids {
		maxAsteroid = math.Max(maxAsteroid, a.Radius)
	}
	for _, p := range g.Projectiles {
		maxProjectile = math.Max(maxProjectile, p.Radius)
	}
	cellSize := maxAsteroid + maxProjectile
	if cellSize <= 0 {
		cellSize = g.AsteroidRadius
	}
	g.grid.Reset(g.Bounds, cellSize)

	for i, a := range g.Asteroids {
		g.grid.Insert(a.X, a.Y, i)
	}
}

// compactAsteroids drops the asteroids destroyed during this frame,
// keeping the survivors in order.
func (g *Game) compactAsteroids() {
	kept := g.Asteroids[:0]
	for _, a := range g.Asteroids {
		if a != nil {
			kept = append(kept, a)
		}
	}
	clear(g.Asteroids[len(kept):])
	g.Asteroids = kept
}

// splitAsteroid applies the destruction rule to an asteroid hit by a
// projectile. MassDestroyed is removed and scored first; the remaining mass
// is divided unevenly between two fragments. Fragments lighter than
// MassDestroyed are scored outright instead of entering play, so the score
// gained plus the mass of surviving fragments always equals the mass the
// parent had before the hit.
func (g *Game) splitAsteroid(a *object.Asteroid, elapsed float64) {
	a.Mass -= g.MassDestroyed
	g.Score += g.MassDestroyed

	split := 0.25 + 0.5*g.rng.Float64()
	children := [2]*object.Asteroid{
		a.Split(g.rng, split),
		a.Split(g.rng, 1-split),
	}
	for _, child := range children {
		if child.Mass < g.MassDestroyed {
			g.Score += child.Mass
			continue
		}
		g.Kick(child, elapsed)
		g.Asteroids = append(g.Asteroids, child)
		g.grid.Insert(child.X, child.Y, len(g.Asteroids)-1)
	}
}

// Kick sends an asteroid off in a random direction at 100 units/second and
// turns it to a random orientation.
func (g *Game) Kick(a *object.Asteroid, elapsed float64) {
	a.Push(physics.TwoPi*g.rng.Float64(), a.Mass*100)
	a.Twist((g.rng.Float64()-0.5)*math.Pi*g.AsteroidPush*0.02, elapsed)
}

// movingAsteroid creates a full-size asteroid at a random position and
// kicks it.
func (g *Game) movingAsteroid(elapsed float64) *object.Asteroid {
	x := g.Bounds.Width * g.rng.Float64()
	y := g.Bounds.Height * g.rng.Float64()
	a := object.NewAsteroid(g.rng, g.AsteroidMass, x, y, g.AsteroidRadius)
	g.Kick(a, elapsed)
	return a
}

// LevelUp advances to the next level and spawns one full-size asteroid per
// level.
func (g *Game) LevelUp() {
	g.Level++
	for i := 0; i < g.Level; i++ {
		g.Asteroids = append(g.Asteroids, g.movingAsteroid(config.KickElapsed))
	}
}

// Reset starts a new game. The level is set to 0 and the asteroid field is
// left empty, so the next Update levels up to 1.
func (g *Game) Reset() {
	g.GameOver = false
	g.Score = 0
	g.Level = 0
	g.Ship = g.newShip()
	clear(g.Projectiles)
	g.Projectiles = g.Projectiles[:0]
	clear(g.Asteroids)
	g.Asteroids = g.Asteroids[:0]
}

// Status is the read-only view consumed by the HUD.
type Status struct {
	Health    float64
	MaxHealth float64
	Score     float64
	Level     int
	GameOver  bool
}

// Status returns the current HUD values.
func (g *Game) Status() Status {
	return Status{
		Health:    g.Ship.Health,
		MaxHealth: g.Ship.MaxHealth,
		Score:     g.Score,
		Level:     g.Level,
		GameOver:  g.GameOver,
	}
}
