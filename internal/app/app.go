//go:build ebiten

package app

import (
	"image/color"

	"hashlife/internal/render"
	"hashlife/internal/ui"
	"hashlife/internal/viz"
	"hashlife/pkg/lifesim"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a pkg/lifesim.Life to the ebiten.Game interface, drawing it
// as a rotating torus mesh rather than a flat pixel grid:
// Life's canvas already wraps the way a torus surface does, so the
// boundary mode a universe was created with is visible in the shape it's
// drawn on.
type Game struct {
	initial    lifesim.Life
	life       lifesim.Life
	generation int64

	mesh    viz.Mesh
	camera  viz.Camera
	canvas  *render.Canvas
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor, offColor color.RGBA
	pointRadius       int
	theta             float64

	paused   bool
	tickOnce bool
}

// New constructs a Game for the provided simulation, rendered into a
// screenW x screenH window.
func New(life lifesim.Life, screenW, screenH, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	mesh := viz.NewMesh(int(life.Size()))
	return &Game{
		initial:     life,
		life:        life,
		mesh:        mesh,
		camera:      viz.NewCamera(mesh, screenW, screenH),
		canvas:      render.NewCanvas(screenW, screenH),
		painter:     render.NewGridPainter(screenW, screenH),
		overlay:     ui.NewOverlay(scale),
		onColor:     color.RGBA{R: 120, G: 220, B: 255, A: 255},
		offColor:    color.RGBA{R: 10, G: 10, B: 16, A: 255},
		pointRadius: scale,
	}
}

// Reset returns the simulation to its starting configuration.
func (g *Game) Reset() {
	g.life = g.initial
	g.generation = 0
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}

	g.theta += 0.01
	if (!g.paused) || g.tickOnce {
		step := g.life.GenerationStep()
		g.life = g.life.Next()
		g.generation += step
		g.tickOnce = false
		g.mesh = viz.NewMesh(int(g.life.Size()))
	}
	g.overlay.Update(g.life, g.generation)
	return nil
}

// Draw renders the current simulation state as a rotating torus.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Clear()
	side := g.life.Size()
	for _, coord := range g.life.AliveCoords() {
		p := g.mesh.Surface(coord.Row, coord.Col, side, side)
		p = viz.RotateY(p, g.theta)
		if x, y, visible := g.camera.Project(p); visible {
			g.canvas.PlotSquare(x, y, g.pointRadius)
		}
	}
	g.painter.Blit(screen, g.canvas, g.onColor, g.offColor, 1)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size, fixed regardless of how the
// simulation's own canvas grows or shrinks (Open mode), since the torus
// projection always fills the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w, h
}
