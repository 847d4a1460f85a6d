// Package console assembles the CPU, Bus, PPU and Controller into a
// single NES, and drives them as an ebiten.Game: each Update call runs
// one full frame of emulation (counting instructions to the vblank
// thresholds the original cooperative loop used), and Draw blits the
// resulting framebuffer.
package console

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/nescore/gintendo/internal/bus"
	"github.com/nescore/gintendo/internal/cpu"
	"github.com/nescore/gintendo/internal/input"
	"github.com/nescore/gintendo/internal/mappers"
	"github.com/nescore/gintendo/internal/ppu"
)

// Instruction-count thresholds the Frame Loop uses to pace vblank.
// Tunable: real scanline timing is not modeled, so these are the
// knobs that decide how much of the frame's CPU budget runs before
// vblank starts.
const (
	vblankClearThreshold = 1200
	vblankSetThreshold   = 4000
)

// Console owns every piece of emulator state and implements
// ebiten.Game.
type Console struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	instrCount int
	frame      *ppu.Frame
	img        *ebiten.Image
}

// New constructs a Console for the given cartridge mapper.
func New(mapper mappers.Mapper) *Console {
	b := bus.New(mapper)
	c := &Console{
		CPU: cpu.New(b),
		Bus: b,
		img: ebiten.NewImage(ppu.Width, ppu.Height),
	}
	return c
}

// keyBindings maps host keyboard keys to controller 1 buttons.
var keyBindings = map[ebiten.Key]input.Button{
	ebiten.KeyZ:          input.A,
	ebiten.KeyX:          input.B,
	ebiten.KeyShift:      input.Select,
	ebiten.KeyEnter:      input.Start,
	ebiten.KeyArrowUp:    input.Up,
	ebiten.KeyArrowDown:  input.Down,
	ebiten.KeyArrowLeft:  input.Left,
	ebiten.KeyArrowRight: input.Right,
}

// pollInput reads host key state into Controller 1, once per frame,
// as the Frame Loop's sole writer of button state.
func (c *Console) pollInput() {
	for key, button := range keyBindings {
		c.Bus.Pad1.SetButton(button, ebiten.IsKeyPressed(key))
	}
}

// Update runs exactly one frame's worth of CPU instructions, applying
// the vblank-clear and vblank-set/NMI thresholds along the way. This
// is called by ebiten at its own ~60Hz pace, which gives the loop its
// frame pacing for free (see the design note on real-time pacing).
func (c *Console) Update() error {
	c.pollInput()
	c.stepFrame()

	if c.frame != nil {
		c.img.WritePixels(c.frame.Pix)
	}
	return nil
}

// stepFrame runs CPU instructions until one full frame's worth have
// executed, applying the vblank-clear and vblank-set/NMI thresholds
// along the way. Split out from Update so it can be tested without
// driving ebiten's own input/window machinery.
func (c *Console) stepFrame() {
	for {
		c.CPU.Step()
		c.instrCount++

		if c.instrCount == vblankClearThreshold {
			c.Bus.PPU.LeaveVBlank()
		}
		if c.instrCount >= vblankSetThreshold {
			c.frame = c.Bus.PPU.Render()
			if raiseNMI := c.Bus.PPU.EnterVBlank(); raiseNMI {
				c.CPU.NMI()
			}
			c.instrCount = 0
			return
		}
	}
}

// Draw blits the most recently rendered frame into screen.
func (c *Console) Draw(screen *ebiten.Image) {
	screen.DrawImage(c.img, nil)
}

// Layout returns the NES's native resolution; ebiten scales the
// window to fit, so the emulation itself is always driven as 256x240.
func (c *Console) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ppu.Width, ppu.Height
}

// Bounds reports the native framebuffer's pixel rectangle, for hosts
// that want to inspect it directly (e.g. screenshot tooling).
func (c *Console) Bounds() image.Rectangle {
	return image.Rect(0, 0, ppu.Width, ppu.Height)
}
