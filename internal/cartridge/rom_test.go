package cartridge

import "testing"

func buildROM(prgBlocks, chrBlocks uint8, mirror uint8) []byte {
	h := make([]byte, 16)
	copy(h, "NES\x1a")
	h[4] = prgBlocks
	h[5] = chrBlocks
	h[6] = mirror
	buf := append([]byte(nil), h...)
	buf = append(buf, make([]byte, int(prgBlocks)*prgBlockSize)...)
	buf = append(buf, make([]byte, int(chrBlocks)*chrBlockSize)...)
	return buf
}

func TestParseMapper0SinglePRGBank(t *testing.T) {
	data := buildROM(1, 1, 0)
	// Tag the one PRG bank so we can tell it apart from CHR/zero.
	data[16] = 0xAA

	r, err := parse("test.nes", data)
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}

	if len(r.PRG()) != prgBlockSize {
		t.Errorf("len(PRG()) = %d, want %d", len(r.PRG()), prgBlockSize)
	}
	if r.PRG()[0] != 0xAA {
		t.Errorf("PRG()[0] = %#x, want 0xAA", r.PRG()[0])
	}
	if len(r.CHR()) != chrBlockSize {
		t.Errorf("len(CHR()) = %d, want %d", len(r.CHR()), chrBlockSize)
	}
	if r.MirrorMode() != MirrorHorizontal {
		t.Errorf("MirrorMode() = %d, want %d", r.MirrorMode(), MirrorHorizontal)
	}
}

func TestParseTruncatedPRGFails(t *testing.T) {
	data := buildROM(2, 1, 0)
	data = data[:len(data)-chrBlockSize-100] // lop off CHR and the tail of PRG

	if _, err := parse("truncated.nes", data); err == nil {
		t.Errorf("expected an error for truncated PRG-ROM, got nil")
	}
}

func TestParseCHRRAMBoard(t *testing.T) {
	data := buildROM(1, 0, 0) // chrBlocks == 0 means CHR RAM

	r, err := parse("chrram.nes", data)
	if err != nil {
		t.Fatalf("parse() error: %v", err)
	}
	if len(r.CHR()) != chrBlockSize {
		t.Errorf("len(CHR()) = %d, want an 8KiB CHR RAM stand-in", len(r.CHR()))
	}
}
