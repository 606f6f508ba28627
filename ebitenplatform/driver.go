package ebitenplatform

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Driver adapts a per-frame callback into ebiten.Game. The callback
// receives the Platform so it can poll input and present a new
// framebuffer each tick; Driver.Draw then blits whatever PresentFramebuffer
// last wrote onto the real screen.
type Driver struct {
	Platform *Platform
	OnFrame  func(p *Platform)
}

// Update implements ebiten.Game.
func (d *Driver) Update() error {
	d.Platform.PollInput()
	if d.OnFrame != nil {
		d.OnFrame(d.Platform)
	}
	return nil
}

// Draw implements ebiten.Game.
func (d *Driver) Draw(screen *ebiten.Image) {
	if src := d.Platform.Screen(); src != nil {
		screen.DrawImage(src, nil)
	}
}

// Layout implements ebiten.Game.
func (d *Driver) Layout(outsideWidth, outsideHeight int) (int, int) {
	return d.Platform.ScreenSize()
}

var _ ebiten.Game = (*Driver)(nil)
