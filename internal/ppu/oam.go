package ppu

// sprite is one decoded 4-byte OAM record. Grounded on the teacher's
// ppu/oam.go oam struct, trimmed to the fields spec.md's sprite
// renderer actually needs (no vertical-flip look-up table, just the
// flag bits the renderer consults directly).
type sprite struct {
	y         uint8
	tileIndex uint8
	palette   uint8 // 2-bit palette selector, attribute bits 0-1
	priority  uint8 // 0: in front of background, 1: behind background
	flipH     bool
	flipV     bool
	x         uint8
}

// attribute bit layout (OAM byte 2):
// 76543210
// ||||||||
// ||||||++- Palette (4 to 7) of sprite
// |||+++--- Unimplemented (read back as 0)
// ||+------ Priority (0: in front of background; 1: behind background)
// |+------- Flip sprite horizontally
// +-------- Flip sprite vertically
const (
	attrPaletteMask = 0x03
	attrPriority    = 1 << 5
	attrFlipH       = 1 << 6
	attrFlipV       = 1 << 7
)

// spriteFromOAM decodes the 4-byte record starting at oam[i*4].
func spriteFromOAM(oam *[256]byte, i int) sprite {
	base := i * 4
	attr := oam[base+2]
	return sprite{
		y:         oam[base+0],
		tileIndex: oam[base+1],
		palette:   attr & attrPaletteMask,
		priority:  (attr & attrPriority) >> 5,
		flipH:     attr&attrFlipH != 0,
		flipV:     attr&attrFlipV != 0,
		x:         oam[base+3],
	}
}
