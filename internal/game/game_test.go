package game

import (
	"math"
	"testing"

	"github.com/tomz197/splitroids/internal/object"
)

const massEps = 1e-6

// scripted returns queued values in order, then 0.5 once the queue is empty.
type scripted struct {
	queue []float64
}

func (s *scripted) Float64() float64 {
	if len(s.queue) == 0 {
		return 0.5
	}
	v := s.queue[0]
	s.queue = s.queue[1:]
	return v
}

// newTestGame returns a game with an empty asteroid field and a ship at the
// centre of an 800x600 playfield.
func newTestGame(t *testing.T) (*Game, *scripted) {
	t.Helper()
	rng := &scripted{}
	g := New(Options{Rand: rng})
	g.Asteroids = nil
	return g, rng
}

func addAsteroid(g *Game, rng *scripted, mass, x, y float64) *object.Asteroid {
	a := object.NewAsteroid(rng, mass, x, y, g.AsteroidRadius)
	g.Asteroids = append(g.Asteroids, a)
	return a
}

func addProjectile(g *Game, x, y float64) *object.Projectile {
	p := object.NewProjectile(object.ProjectileMass, object.ProjectileLifetime, x, y)
	g.Projectiles = append(g.Projectiles, p)
	return p
}

func liveMass(g *Game) float64 {
	total := 0.0
	for _, a := range g.Asteroids {
		total += a.Mass
	}
	return total
}

func TestNewGame(t *testing.T) {
	g := New(Options{Seed: 1})

	if g.Level != 1 {
		t.Errorf("level = %d, want 1", g.Level)
	}
	if len(g.Asteroids) != 1 {
		t.Errorf("asteroids = %d, want 1", len(g.Asteroids))
	}
	if g.GameOver {
		t.Error("new game is over")
	}
	if g.Ship.X != 400 || g.Ship.Y != 300 {
		t.Errorf("ship at (%f, %f), want (400, 300)", g.Ship.X, g.Ship.Y)
	}
	if g.Asteroids[0].Speed() == 0 {
		t.Error("initial asteroid was not kicked")
	}
}

func TestLevelUpFromEmptyField(t *testing.T) {
	for _, level := range []int{0, 1, 4} {
		g, _ := newTestGame(t)
		g.Level = level

		g.Update(0)

		if g.Level != level+1 {
			t.Errorf("level %d: new level = %d, want %d", level, g.Level, level+1)
		}
		if len(g.Asteroids) != level+1 {
			t.Errorf("level %d: asteroids = %d, want %d", level, len(g.Asteroids), level+1)
		}
		for _, a := range g.Asteroids {
			if a.Mass != g.AsteroidMass || a.Radius != g.AsteroidRadius {
				t.Errorf("spawned asteroid mass=%f radius=%f", a.Mass, a.Radius)
			}
		}
	}
}

func TestLevelUpOnlyWhenEmpty(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 50, 50)

	g.Update(0.01)

	if g.Level != 1 || len(g.Asteroids) != 1 {
		t.Fatalf("level = %d asteroids = %d, want 1 and 1", g.Level, len(g.Asteroids))
	}
}

func TestProjectileSplitsAsteroid(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 100, 100)
	addProjectile(g, 100, 100)
	rng.queue = []float64{0.3} // split fraction 0.25 + 0.5*0.3 = 0.4

	g.Update(0)

	if len(g.Projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(g.Projectiles))
	}
	if len(g.Asteroids) != 2 {
		t.Fatalf("asteroids = %d, want 2", len(g.Asteroids))
	}
	if math.Abs(g.Asteroids[0].Mass-1800) > massEps || math.Abs(g.Asteroids[1].Mass-2700) > massEps {
		t.Fatalf("child masses = %f, %f, want 1800, 2700", g.Asteroids[0].Mass, g.Asteroids[1].Mass)
	}
	if g.Score != 500 {
		t.Fatalf("score = %f, want 500", g.Score)
	}
	for i, a := range g.Asteroids {
		if a.Radius != 30 {
			t.Errorf("child %d radius = %f, want 30", i, a.Radius)
		}
		if math.Abs(a.Speed()-100) > massEps {
			t.Errorf("child %d speed = %f, want 100", i, a.Speed())
		}
	}
}

func TestSplitConservesMass(t *testing.T) {
	tests := []struct {
		name      string
		mass      float64
		fraction  float64 // rng value; split = 0.25 + 0.5*fraction
		wantLive  int
		wantScore float64
	}{
		{name: "both_children_live", mass: 5000, fraction: 0.3, wantLive: 2, wantScore: 500},
		{name: "one_child_scored", mass: 1500, fraction: 0.3, wantLive: 1, wantScore: 900},
		{name: "both_children_scored", mass: 1200, fraction: 0.3, wantLive: 0, wantScore: 1200},
		{name: "nothing_left", mass: 500, fraction: 0.9, wantLive: 0, wantScore: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, rng := newTestGame(t)
			addAsteroid(g, rng, tt.mass, 100, 100)
			addProjectile(g, 100, 100)
			rng.queue = []float64{tt.fraction}

			g.Update(0)

			if len(g.Asteroids) != tt.wantLive {
				t.Fatalf("live asteroids = %d, want %d", len(g.Asteroids), tt.wantLive)
			}
			if math.Abs(g.Score-tt.wantScore) > massEps {
				t.Errorf("score = %f, want %f", g.Score, tt.wantScore)
			}
			if total := g.Score + liveMass(g); math.Abs(total-tt.mass) > massEps {
				t.Errorf("score + live mass = %f, want %f", total, tt.mass)
			}
			for _, a := range g.Asteroids {
				if a.Mass < g.MassDestroyed {
					t.Errorf("live asteroid below threshold: %f", a.Mass)
				}
			}
		})
	}
}

func TestProjectileDestroysLowestIndexOnly(t *testing.T) {
	g, rng := newTestGame(t)
	first := addAsteroid(g, rng, 5000, 100, 100)
	second := addAsteroid(g, rng, 5000, 110, 100)
	addProjectile(g, 105, 100)

	g.Update(0)

	for _, a := range g.Asteroids {
		if a == first {
			t.Fatal("first asteroid survived the hit")
		}
	}
	if g.Asteroids[0] != second {
		t.Fatal("second asteroid should survive in first position")
	}
	if len(g.Asteroids) != 3 {
		t.Fatalf("asteroids = %d, want 3 (survivor + 2 fragments)", len(g.Asteroids))
	}
	if g.Score != 500 {
		t.Fatalf("score = %f, want 500", g.Score)
	}
}

func TestLaterProjectileHitsFreshFragment(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 100, 100)
	addProjectile(g, 100, 100)
	addProjectile(g, 100, 100)
	rng.queue = []float64{0.3}

	g.Update(0)

	// First hit: 4500 -> 1800 + 2700. Second hit takes the 1800 fragment:
	// 1300 -> 650 + 650 with the default split of 0.5.
	if len(g.Projectiles) != 0 {
		t.Fatalf("projectiles = %d, want 0", len(g.Projectiles))
	}
	if g.Score != 1000 {
		t.Fatalf("score = %f, want 1000", g.Score)
	}
	if len(g.Asteroids) != 3 {
		t.Fatalf("asteroids = %d, want 3", len(g.Asteroids))
	}
	if math.Abs(g.Asteroids[0].Mass-2700) > massEps {
		t.Fatalf("survivor mass = %f, want 2700", g.Asteroids[0].Mass)
	}
	if total := g.Score + liveMass(g); math.Abs(total-5000) > massEps {
		t.Fatalf("score + live mass = %f, want 5000", total)
	}
}

func TestExpiredProjectileIsRemovedBeforeHitting(t *testing.T) {
	g, rng := newTestGame(t)
	a := addAsteroid(g, rng, 5000, 100, 100)
	p := addProjectile(g, 100, 100)
	p.Life = 0.05
	missed := addProjectile(g, 700, 500)

	g.Update(0.1)

	if len(g.Projectiles) != 1 || g.Projectiles[0] != missed {
		t.Fatalf("projectiles = %v, want only the live miss", g.Projectiles)
	}
	if len(g.Asteroids) != 1 || g.Asteroids[0] != a {
		t.Fatal("asteroid should be untouched by an expired projectile")
	}
	if g.Score != 0 {
		t.Fatalf("score = %f, want 0", g.Score)
	}
}

func TestShipCompromisedByAnyAsteroid(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 50, 50)
	touching := addAsteroid(g, rng, 5000, 400, 300)
	addAsteroid(g, rng, 5000, 750, 550)

	g.Update(0.5)

	if !g.Ship.Compromised {
		t.Fatal("ship should be compromised")
	}
	if math.Abs(g.Ship.Health-1.5) > massEps {
		t.Fatalf("health = %f, want 1.5", g.Ship.Health)
	}

	touching.X, touching.Y = 200, 500
	g.Update(0.5)

	if g.Ship.Compromised {
		t.Fatal("ship should no longer be compromised")
	}
	if math.Abs(g.Ship.Health-1.5) > massEps {
		t.Fatalf("health = %f, want 1.5", g.Ship.Health)
	}
}

func TestGameOverFreezesWorld(t *testing.T) {
	g, rng := newTestGame(t)
	a := addAsteroid(g, rng, 5000, 100, 100)
	a.VX = 50
	p := addProjectile(g, 600, 100)
	g.Ship.Health = 0
	g.Ship.Trigger = true

	g.Update(0.1)

	if !g.GameOver {
		t.Fatal("game should be over")
	}
	for i := 0; i < 3; i++ {
		g.Update(1)
	}
	if a.X != 100 || p.X != 600 || p.Life != 1 {
		t.Fatalf("bodies moved after game over: asteroid x=%f projectile x=%f life=%f", a.X, p.X, p.Life)
	}
	if g.Score != 0 || len(g.Projectiles) != 1 {
		t.Fatalf("score = %f projectiles = %d after game over", g.Score, len(g.Projectiles))
	}
}

func TestShipDrainsToGameOver(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 400, 300)

	g.Update(1.5)
	g.Update(1.5)
	if g.Ship.Health != 0 {
		t.Fatalf("health = %f, want 0", g.Ship.Health)
	}
	if g.GameOver {
		t.Fatal("game over is detected at the start of the next update")
	}

	g.Update(0.01)
	if !g.GameOver {
		t.Fatal("game should be over")
	}
}

func TestResetAfterGameOver(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 100, 100)
	addProjectile(g, 700, 500)
	g.Score = 1234
	g.Level = 5
	g.Ship.Health = 0
	g.Update(0.01)

	if !g.HandleKey(KeySpace, true) {
		t.Fatal("space not handled")
	}

	if g.GameOver || g.Score != 0 || g.Level != 0 {
		t.Fatalf("after reset: over=%v score=%f level=%d", g.GameOver, g.Score, g.Level)
	}
	if len(g.Asteroids) != 0 || len(g.Projectiles) != 0 {
		t.Fatalf("after reset: asteroids=%d projectiles=%d", len(g.Asteroids), len(g.Projectiles))
	}
	if g.Ship.Health != g.Ship.MaxHealth || g.Ship.Trigger {
		t.Fatal("reset should create a fresh ship")
	}

	g.Update(0.01)
	if g.Level != 1 || len(g.Asteroids) != 1 {
		t.Fatalf("after first update: level=%d asteroids=%d, want 1 and 1", g.Level, len(g.Asteroids))
	}
}

func TestTriggerFiresWhenLoaded(t *testing.T) {
	g, rng := newTestGame(t)
	addAsteroid(g, rng, 5000, 50, 50)
	g.HandleKey(KeySpace, true)

	g.Update(0.125)
	if len(g.Projectiles) != 0 {
		t.Fatalf("fired before reload: %d projectiles", len(g.Projectiles))
	}

	g.Update(0.125)
	if len(g.Projectiles) != 1 {
		t.Fatalf("projectiles = %d, want 1", len(g.Projectiles))
	}
	if g.Ship.Loaded {
		t.Fatal("ship still loaded after firing")
	}

	g.Update(0.125)
	if len(g.Projectiles) != 1 {
		t.Fatalf("fired during reload: %d projectiles", len(g.Projectiles))
	}

	g.HandleKey(KeySpace, false)
	g.Update(0.125)
	if len(g.Projectiles) != 1 {
		t.Fatalf("fired with trigger released: %d projectiles", len(g.Projectiles))
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		key  Key
		flag func(g *Game) bool
	}{
		{key: KeyLeft, flag: func(g *Game) bool { return g.Ship.LeftThruster }},
		{key: KeyRight, flag: func(g *Game) bool { return g.Ship.RightThruster }},
		{key: KeyUp, flag: func(g *Game) bool { return g.Ship.Thruster }},
		{key: KeyDown, flag: func(g *Game) bool { return g.Ship.Reverse }},
		{key: KeySpace, flag: func(g *Game) bool { return g.Ship.Trigger }},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			g, _ := newTestGame(t)
			if !g.HandleKey(tt.key, true) {
				t.Fatal("key not handled")
			}
			if !tt.flag(g) {
				t.Fatal("flag not set on key down")
			}
			g.HandleKey(tt.key, false)
			if tt.flag(g) {
				t.Fatal("flag still set after key up")
			}
		})
	}
}

func TestHandleKeyGuideToggle(t *testing.T) {
	g, _ := newTestGame(t)

	g.HandleKey(KeyGuide, true)
	g.HandleKey(KeyGuide, false)
	if !g.Guide {
		t.Fatal("guide should be on after one press")
	}
	g.HandleKey(KeyGuide, true)
	if g.Guide {
		t.Fatal("guide should be off after second press")
	}
}

func TestHandleKeyUnknown(t *testing.T) {
	g, _ := newTestGame(t)
	if g.HandleKey(KeyUnknown, true) {
		t.Fatal("unknown key reported as handled")
	}
}

func TestStatus(t *testing.T) {
	g, _ := newTestGame(t)
	g.Score = 750
	g.Ship.Health = 1

	st := g.Status()
	if st.Score != 750 || st.Health != 1 || st.MaxHealth != 2 || st.Level != 1 || st.GameOver {
		t.Fatalf("status = %+v", st)
	}
}
