package bus

import (
	"testing"

	"github.com/nescore/gintendo/internal/input"
	"github.com/nescore/gintendo/internal/mappers"
)

type stubMapper struct {
	prg, chr [32768]uint8
}

func (m *stubMapper) ID() uint8                         { return 0 }
func (m *stubMapper) PrgRead(addr uint16) uint8         { return m.prg[addr%32768] }
func (m *stubMapper) PrgWrite(addr uint16, value uint8) { m.prg[addr%32768] = value }
func (m *stubMapper) ChrRead(addr uint16) uint8         { return m.chr[addr%32768] }
func (m *stubMapper) ChrWrite(addr uint16, value uint8) { m.chr[addr%32768] = value }
func (m *stubMapper) MirrorMode() uint8                 { return 0 }

var _ mappers.Mapper = (*stubMapper)(nil)

func TestRAMIsMirroredAcrossFourBanks(t *testing.T) {
	b := New(&stubMapper{})
	b.Write(0x0000, 0x42)

	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := b.Read(mirror); got != 0x42 {
			t.Errorf("Read(%#04x) = %#02x, want 0x42 (mirrors $0000)", mirror, got)
		}
	}
}

func TestPPURegistersAreMirroredEveryEightBytes(t *testing.T) {
	b := New(&stubMapper{})
	b.Write(0x2000, 0x80) // PPUCTRL: generate NMI
	if !b.PPU.EnterVBlank() {
		t.Fatalf("expected PPUCTRL write to enable NMI generation")
	}

	b.Write(0x2008, 0x00) // mirror of $2000
	if b.PPU.EnterVBlank() {
		t.Errorf("write to $2008 did not reach PPUCTRL")
	}
	b.Write(0x3FF8, 0x80) // also mirrors $2000
	if !b.PPU.EnterVBlank() {
		t.Errorf("write to $3FF8 did not reach PPUCTRL")
	}
}

func TestOAMDMACopies256BytesStartingAtIndexZero(t *testing.T) {
	b := New(&stubMapper{})
	for i := 0; i < 256; i++ {
		b.ram[i] = uint8(i)
	}

	b.Write(0x4014, 0x00) // DMA source page $0000

	if got := b.PPU.ReadRegister(4); got != 0 { // OAMDATA at OAMADDR=0
		t.Fatalf("OAM[0] = %#02x, want 0x00", got)
	}
	if b.dmaBytes != 256 {
		t.Errorf("dmaBytes = %d, want 256", b.dmaBytes)
	}
}

func TestControllerPortsRoundTrip(t *testing.T) {
	b := New(&stubMapper{})
	b.Pad1.SetButton(input.A, true)

	b.Write(0x4016, 1)
	b.Write(0x4016, 0)

	if got := b.Read(0x4016); got != 1 {
		t.Errorf("Read($4016) = %d, want 1 (A pressed)", got)
	}
}

func TestUnmappedIORegionReadsZero(t *testing.T) {
	b := New(&stubMapper{})
	if got := b.Read(0x4000); got != 0 {
		t.Errorf("Read($4000) = %#02x, want 0", got)
	}
}
