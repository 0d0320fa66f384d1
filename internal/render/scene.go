package render

import (
	"github.com/tomz197/splitroids/internal/game"
)

const (
	GameOverText = "GAME OVER"
	RestartText  = "Press space to play again"
)

// HUD holds the indicator layout for one playfield size.
type HUD struct {
	Health  Indicator
	Score   NumberIndicator
	Level   NumberIndicator
	FPS     NumberIndicator
	Message Message
}

// NewHUD lays the indicators out around the edges of a width x height
// playfield.
func NewHUD(width, height float64) HUD {
	return HUD{
		Health:  Indicator{Label: "Health", X: 5, Y: 5, Width: 100, Height: 10},
		Score:   NumberIndicator{Label: "Score ", X: width - 10, Y: 5, Align: AlignEnd},
		Level:   NumberIndicator{Label: "Level ", X: width / 2, Y: 5, Align: AlignCenter},
		FPS:     NumberIndicator{Label: "FPS ", X: width - 10, Y: height - 15, Digits: 2, Align: AlignEnd},
		Message: Message{X: width / 2, Y: height * 0.4, LineHeight: 28},
	}
}

// Scene draws one frame of g. The level is always shown; guides and the
// FPS readout only in guide mode. On game over the ship, projectiles and
// remaining indicators give way to the restart banner.
func Scene(s Surface, g *game.Game, fps float64) {
	hud := NewHUD(g.Bounds.Width, g.Bounds.Height)
	status := g.Status()

	hud.Level.Draw(s, float64(status.Level))

	if g.Guide {
		DrawGrid(s, g.Bounds.Width, g.Bounds.Height)
		drawGuideLines(s, g)
		hud.FPS.Draw(s, fps)
	}

	for _, a := range g.Asteroids {
		DrawAsteroid(s, a, g.Guide)
	}

	if status.GameOver {
		hud.Message.Draw(s, GameOverText, RestartText)
		return
	}

	DrawShip(s, g.Ship, g.Guide)
	for _, p := range g.Projectiles {
		DrawProjectile(s, p, g.Guide)
	}

	hud.Health.Draw(s, g.Ship.HealthFraction())
	hud.Score.Draw(s, status.Score)
}

// drawGuideLines joins every asteroid to the ship and to each projectile.
func drawGuideLines(s Surface, g *game.Game) {
	s.SetTone(ToneFaint)
	ship := Point{X: g.Ship.X, Y: g.Ship.Y}
	for _, a := range g.Asteroids {
		from := Point{X: a.X, Y: a.Y}
		s.Line(from, ship)
		for _, p := range g.Projectiles {
			s.Line(from, Point{X: p.X, Y: p.Y})
		}
	}
}
