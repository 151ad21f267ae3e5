package confetti

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title      string
	Width      int
	Height     int
	ShowFPS    bool
	ClearColor Color
	// OnUpdate, when set, runs after Confetti.Update every tick.
	OnUpdate func() error
}

// game adapts a Confetti to ebiten.Game.
type game struct {
	c   *Confetti
	cfg RunConfig
}

func (g *game) Update() error {
	if err := g.c.Update(); err != nil {
		return err
	}
	if g.cfg.OnUpdate != nil {
		return g.cfg.OnUpdate()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.cfg.ClearColor.A > 0 {
		screen.Fill(g.cfg.ClearColor.toRGBA())
	}
	g.c.Draw(screen)
	if g.cfg.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\npieces: %d",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.c.Simulator().Len()))
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.c.Layout(outsideWidth, outsideHeight)
}

// Run opens a resizable window and drives c until the window closes or an
// update returns an error.
func Run(c *Confetti, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		cfg.Width, cfg.Height = defaultWidth, defaultHeight
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	c.Layout(cfg.Width, cfg.Height)
	if err := ebiten.RunGame(&game{c: c, cfg: cfg}); err != nil {
		return fmt.Errorf("run confetti: %w", err)
	}
	return nil
}
