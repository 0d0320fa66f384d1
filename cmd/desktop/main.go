package main

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/splitroids/internal/config"
	"github.com/tomz197/splitroids/internal/game"
	"github.com/tomz197/splitroids/internal/logging"
	"github.com/tomz197/splitroids/internal/render"
)

// keymap binds window keys to game keys.
var keymap = map[ebiten.Key]game.Key{
	ebiten.KeyArrowLeft:  game.KeyLeft,
	ebiten.KeyA:          game.KeyLeft,
	ebiten.KeyArrowRight: game.KeyRight,
	ebiten.KeyD:          game.KeyRight,
	ebiten.KeyArrowUp:    game.KeyUp,
	ebiten.KeyW:          game.KeyUp,
	ebiten.KeyArrowDown:  game.KeyDown,
	ebiten.KeyS:          game.KeyDown,
	ebiten.KeySpace:      game.KeySpace,
	ebiten.KeyG:          game.KeyGuide,
}

var background = color.RGBA{R: 8, G: 8, B: 16, A: 255}

// window runs the game at ebiten's fixed tick rate.
type window struct {
	game    *game.Game
	surface surface
	logger  *log.Logger

	level    int
	gameOver bool
}

func (w *window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Key releases are missed while another window has focus.
	if !ebiten.IsFocused() {
		w.game.Ship.ReleaseControls()
	}

	for k, key := range keymap {
		if inpututil.IsKeyJustPressed(k) {
			w.game.HandleKey(key, true)
		}
		if inpututil.IsKeyJustReleased(k) {
			w.game.HandleKey(key, false)
		}
	}

	w.game.Update(1 / float64(ebiten.TPS()))

	if w.game.GameOver != w.gameOver {
		w.gameOver = w.game.GameOver
		if w.gameOver {
			w.logger.Info("game over", "score", w.game.Score, "level", w.game.Level)
		}
	}
	if w.game.Level != w.level {
		w.level = w.game.Level
		w.logger.Debug("level", "level", w.level)
	}
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	w.surface.screen = screen
	render.Scene(&w.surface, w.game, ebiten.ActualFPS())
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.CanvasWidth, config.CanvasHeight
}

func main() {
	logger, closeLog, err := logging.FromEnv(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	seed, err := config.GetEnvInt64(config.EnvSeed, time.Now().UnixNano())
	if err != nil {
		logger.Fatal("bad seed", "err", err)
	}

	w := &window{
		game:   game.New(game.Options{Seed: seed}),
		logger: logger,
	}
	w.level = w.game.Level

	ebiten.SetWindowSize(config.CanvasWidth, config.CanvasHeight)
	ebiten.SetWindowTitle("splitroids")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TargetFPS)

	logger.Info("game started", "seed", seed)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("game failed", "err", err)
		os.Exit(1)
	}
}
