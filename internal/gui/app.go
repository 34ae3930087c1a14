// Package gui runs the windowed explorer: the zoom director drives the
// viewport, the palette colors each frame and raylib puts it on screen.
package gui

import (
	"fmt"
	"math/rand"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/config"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/director"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/mandel"
	"github.com/Carbonfreezer/Mandelbrot-Explorer/internal/palette"
)

type App struct {
	director *director.Director
	mapper   palette.Mapper
	paused   bool
}

func NewApp(cfg *config.Config) *App {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	d := director.New(cfg.DirectorParams(), mandel.Generate, rng)
	d.WarmStart()

	return &App{
		director: d,
		mapper:   palette.ByName(cfg.Palette),
	}
}

// Run opens the window and drives the frame loop until the window closes.
// Escape quits, F toggles fullscreen, space pauses the zoom.
func Run(cfg *config.Config) {
	app := NewApp(cfg)

	rl.InitWindow(mandel.Width, mandel.Height, "Mandelbrot Explorer")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	img := rl.GenImageColor(mandel.Width, mandel.Height, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyF) {
			rl.ToggleFullscreen()
		}
		if rl.IsKeyPressed(rl.KeySpace) {
			app.paused = !app.paused
		}

		deltaTime := rl.GetFrameTime()
		if !app.paused {
			field := app.director.Advance(deltaTime)
			rl.UpdateTexture(texture, palette.Map(field, app.mapper))
		}

		app.draw(texture, deltaTime)
	}
}

func (a *App) draw(texture rl.Texture2D, deltaTime float32) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	// Stretch the fixed-size field over whatever the window currently is.
	src := rl.NewRectangle(0, 0, float32(mandel.Width), float32(mandel.Height))
	dst := rl.NewRectangle(0, 0, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	rl.DrawTexturePro(texture, src, dst, rl.NewVector2(0, 0), 0, rl.White)

	v := a.director.Viewport()
	status := fmt.Sprintf("dt: %.3fs  radius: %.2e  score: %.1f  [%s]",
		deltaTime, v.Radius, a.director.LastFocus().Score, a.director.State().Tag())
	if a.paused {
		status += "  paused"
	}
	rl.DrawText(status, 20, 20, 20, rl.White)

	rl.EndDrawing()
}
