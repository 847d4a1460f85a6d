// Package bus implements the NES CPU-visible address space: RAM
// mirroring, PPU register mirroring and its side effects, OAM DMA,
// and controller ports. It has no notion of frames or timing; those
// live in package console.
package bus

import (
	"github.com/nescore/gintendo/internal/input"
	"github.com/nescore/gintendo/internal/mappers"
	"github.com/nescore/gintendo/internal/ppu"
)

// https://www.nesdev.org/wiki/CPU_memory_map
const (
	ramSize      = 0x0800
	ramMirrorEnd = 0x1FFF
	ramMask      = 0x07FF

	ppuRegMirrorEnd = 0x3FFF
	ppuRegMask      = 0x0007

	ioRegEnd = 0x401F

	oamDMA      = 0x4014
	controller1 = 0x4016
	controller2 = 0x4017

	cartridgeStart = 0x4020
)

// Bus wires the CPU's address space to RAM, the PPU, the two
// controller ports and the cartridge's mapper.
type Bus struct {
	ram      [ramSize]uint8
	PPU      *ppu.PPU
	Mapper   mappers.Mapper
	Pad1     input.Controller
	Pad2     input.Controller
	dmaBytes int // bytes copied by the in-flight OAM DMA, for tests/instrumentation
}

// New constructs a Bus over the given mapper, wiring a fresh PPU to
// it. Controllers start with no buttons held.
func New(mapper mappers.Mapper) *Bus {
	return &Bus{
		PPU:    ppu.New(mapper),
		Mapper: mapper,
	}
}

// Read implements cpu.Bus.
func (b *Bus) Read(addr uint16) uint8 {
	switch {
	case addr <= ramMirrorEnd:
		return b.ram[addr&ramMask]
	case addr <= ppuRegMirrorEnd:
		return b.PPU.ReadRegister(int(addr & ppuRegMask))
	case addr == controller1:
		return b.Pad1.Read()
	case addr == controller2:
		return b.Pad2.Read()
	case addr <= ioRegEnd:
		return 0 // APU and unimplemented I/O read back as 0
	case addr < cartridgeStart:
		return 0 // unmapped
	default:
		return b.Mapper.PrgRead(addr)
	}
}

// Write implements cpu.Bus.
func (b *Bus) Write(addr uint16, value uint8) {
	switch {
	case addr <= ramMirrorEnd:
		b.ram[addr&ramMask] = value
	case addr <= ppuRegMirrorEnd:
		b.PPU.WriteRegister(int(addr&ppuRegMask), value)
	case addr == oamDMA:
		b.doOAMDMA(value)
	case addr == controller1:
		b.Pad1.Write(value)
	case addr == controller2:
		b.Pad2.Write(value)
	case addr <= ioRegEnd:
		// APU and unimplemented I/O registers: writes are dropped.
	case addr < cartridgeStart:
		// unmapped
	default:
		b.Mapper.PrgWrite(addr, value)
	}
}

// doOAMDMA copies 256 bytes starting at value*0x100 into OAM starting
// at OAM index 0. Each byte is read through Bus.Read so any side
// effects of reading the source region (e.g. PPUDATA's read buffer)
// are observed exactly as they would be for 256 ordinary CPU reads.
func (b *Bus) doOAMDMA(value uint8) {
	base := uint16(value) << 8
	for i := 0; i < 256; i++ {
		b.PPU.OAMDMAWrite(uint8(i), b.Read(base+uint16(i)))
	}
	b.dmaBytes = 256
}
