//go:build ebiten

package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"terramap/internal/ui"
	"terramap/internal/worldmap"
)

// Game adapts a world map to the ebiten.Game interface: it renders the
// registered field views and lets the user cycle views and reseed.
type Game struct {
	cfg    worldmap.Config
	log    *slog.Logger
	m      *worldmap.Map
	views  []worldmap.View
	viewIn int

	img   *ebiten.Image
	buf   []byte
	dirty bool
	scale int
	seed  int64

	hud     *ui.HUD
	overlay *ui.Overlay
}

// New generates a map for the seed and constructs the viewer around it.
func New(cfg worldmap.Config, seed int64, scale int, logger *slog.Logger) *Game {
	if scale < 1 {
		scale = 1
	}
	g := &Game{
		cfg:     cfg,
		log:     logger,
		views:   worldmap.Views(),
		scale:   scale,
		hud:     ui.NewHUD(),
		overlay: ui.NewOverlay(),
	}
	g.Reset(seed)
	return g
}

// Reset generates a fresh map for the seed. The map type initializes
// exactly once, so reseeding builds a new one.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.m = worldmap.New(g.cfg, g.log)
	g.m.Initialize(nil, seed)

	side := g.m.Grid().Side()
	if g.img == nil {
		g.img = ebiten.NewImage(side, side)
		g.buf = make([]byte, 4*side*side)
	}
	g.dirty = true
	g.refreshHUD()
}

func (g *Game) refreshHUD() {
	metrics := g.m.Metrics()
	lines := []string{
		fmt.Sprintf("view: %s", g.views[g.viewIn].Name),
		fmt.Sprintf("seed: %d", g.seed),
		fmt.Sprintf("land: %.1f%%  continents: %d", metrics.LandFraction*100, metrics.Continents),
		fmt.Sprintf("boundaries: t=%d c=%d d=%d", metrics.TransformBoundaries, metrics.ConvergentBoundaries, metrics.DivergentBoundaries),
		"",
	}
	for _, group := range g.cfg.Snapshot().Groups {
		lines = append(lines, group.Name+":")
		for _, p := range group.Params {
			lines = append(lines, "  "+p.Key+"="+p.Value)
		}
	}
	g.hud.SetLines(lines)
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for i := 0; i < len(g.views) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			g.selectView(i)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.selectView((g.viewIn + 1) % len(g.views))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()
	return nil
}

func (g *Game) selectView(i int) {
	if i == g.viewIn {
		return
	}
	g.viewIn = i
	g.dirty = true
	g.refreshHUD()
}

// Draw renders the current view.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.dirty {
		g.views[g.viewIn].Paint(g.m, g.buf)
		g.img.WritePixels(g.buf)
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	g.hud.Draw(screen)
	g.overlay.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	side := g.m.Grid().Side()
	return side * g.scale, side * g.scale
}
