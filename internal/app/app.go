//go:build ebiten

package app

import (
	"image/color"
	"time"

	"lifegrid/internal/life"
	"lifegrid/internal/pattern"
	"lifegrid/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the tick controller to the ebiten.Game interface. It is the
// render-sync collaborator: each tick's pre-commit snapshot is copied into
// a frame buffer that Draw blits.
type Game struct {
	cfg     life.Config
	factory pattern.Factory
	ctrl    *life.Controller
	painter *render.GridPainter
	frame   []bool

	onColor  color.Color
	offColor color.Color

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided board configuration and seed
// pattern and starts the controller.
func New(cfg life.Config, factory pattern.Factory, scale int, seed int64) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		factory:  factory,
		painter:  render.NewGridPainter(cfg.Cols, cfg.Rows),
		frame:    make([]bool, cfg.Rows*cfg.Cols),
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
		seed:     seed,
	}
	if err := g.rebuild(seed); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset reseeds the board and restarts the controller.
func (g *Game) Reset(seed int64) error {
	g.seed = seed
	g.tickOnce = false
	return g.rebuild(seed)
}

func (g *Game) rebuild(seed int64) error {
	world, err := life.Initialize(g.cfg, g.factory(g.cfg, seed))
	if err != nil {
		return err
	}
	ctrl := life.NewController(world, g)
	if err := ctrl.Start(); err != nil {
		return err
	}
	g.ctrl = ctrl
	g.RenderSync(world.View())
	return nil
}

// RenderSync copies the pre-commit snapshot into the frame buffer.
func (g *Game) RenderSync(view life.View) {
	for id := 0; id < view.Len(); id++ {
		g.frame[id] = view.Alive(id)
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if (!g.paused) || g.tickOnce {
		if err := g.ctrl.Tick(); err != nil {
			return err
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the last synced frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.frame, g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols * g.scale, g.cfg.Rows * g.scale
}
