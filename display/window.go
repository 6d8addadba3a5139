// Package display is the raylib front end: it steps the game with the
// window's frame time, routes input and draws the scene and HUD.
package display

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/cruise/game"
	"github.com/pthm-cable/cruise/renderer"
	"github.com/pthm-cable/cruise/renderer/rlcanvas"
	"github.com/pthm-cable/cruise/ui"
)

// Window draws a game into the current raylib window.
type Window struct {
	game   *game.Game
	scene  *renderer.Scene
	canvas *rlcanvas.Canvas
	hud    *HUD

	screenWidth, screenHeight float32
	pending                   Press
}

// New creates a window front end. rl.InitWindow must have been called.
func New(g *game.Game) (*Window, error) {
	cfg := g.Config()
	scene, err := renderer.NewScene(cfg.Ocean)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}
	return &Window{
		game:         g,
		scene:        scene,
		canvas:       rlcanvas.New(),
		hud:          NewHUD(),
		screenWidth:  cfg.Derived.ScreenW32,
		screenHeight: cfg.Derived.ScreenH32,
	}, nil
}

// Update handles input and advances the game by the last frame time.
func (w *Window) Update() {
	w.handleInput()
	w.apply(w.pending)
	w.pending = Press{}

	dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
	w.game.Step(dt)
}

// Draw renders the ocean, the fleet and the HUD. HUD presses are applied on
// the next Update.
func (w *Window) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	frame := renderer.Frame{Width: w.screenWidth, Height: w.screenHeight, Elapsed: w.game.Clock()}
	w.scene.Draw(w.canvas, frame, w.game.State().Fleet().Ships())

	if p := w.hud.Draw(w.game.Navigator().Current(), w.game.State(), w.screenWidth, w.screenHeight); p.Pressed {
		w.pending = p
	}

	rl.EndDrawing()
}

// ShouldClose reports whether the window or the game has finished.
func (w *Window) ShouldClose() bool {
	return rl.WindowShouldClose() || w.game.Stopped()
}

// apply routes a HUD press to the navigator or the economy.
func (w *Window) apply(p Press) {
	if !p.Pressed {
		return
	}
	nav := w.game.Navigator()
	switch {
	case p.Start:
		nav.StartGame()
	case p.HowTo:
		nav.ShowHowToPlay()
	case p.Back:
		nav.Back()
	case p.Action != "":
		if err := w.game.Do(p.Action); err != nil {
			slog.Debug("button action rejected", "action", string(p.Action), "error", err)
		}
	}
}

// handleInput processes window events and clicks on the water.
func (w *Window) handleInput() {
	w.handleResize()

	// Fullscreen toggle
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if w.game.Navigator().Current() != ui.ScreenGame || !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	if w.hud.Contains(mouse, w.screenHeight) {
		return
	}
	w.game.HandleClick(mouse.X, mouse.Y)
}

// handleResize checks for window resize and propagates new dimensions.
func (w *Window) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	width := float32(rl.GetScreenWidth())
	height := float32(rl.GetScreenHeight())
	if width == w.screenWidth && height == w.screenHeight {
		return
	}
	w.screenWidth = width
	w.screenHeight = height
	w.game.Resize(width, height)
}
