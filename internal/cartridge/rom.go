package cartridge

import (
	"fmt"
	"os"
)

const (
	headerSize   = 16
	trainerSize  = 512
	prgBlockSize = 16384
	chrBlockSize = 8192
)

// ROM is a parsed iNES image: the raw PRG and CHR byte blobs plus the
// mirroring flag and mapper id a Mapper needs to interpret them. This
// is the "external loader" spec.md §1 treats as a collaborator, not a
// core component - it never touches CPU or PPU state directly.
type ROM struct {
	path string
	h    *header
	prg  []byte
	chr  []byte
}

// Load reads and parses the iNES file at path.
func Load(path string) (*ROM, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cartridge: couldn't read %q: %w", path, err)
	}

	return parse(path, data)
}

func parse(path string, data []byte) (*ROM, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("cartridge: %q is too small to hold an iNES header", path)
	}

	h, err := parseHeader(data[:headerSize])
	if err != nil {
		return nil, fmt.Errorf("cartridge: %q: %w", path, err)
	}

	off := headerSize
	if h.hasTrainer() {
		off += trainerSize
	}

	prgSize := int(h.prgBlocks) * prgBlockSize
	if off+prgSize > len(data) {
		return nil, fmt.Errorf("cartridge: %q: truncated PRG-ROM (want %d bytes)", path, prgSize)
	}
	prg := data[off : off+prgSize]
	off += prgSize

	chrSize := int(h.chrBlocks) * chrBlockSize
	chr := make([]byte, chrSize)
	if chrSize > 0 {
		if off+chrSize > len(data) {
			return nil, fmt.Errorf("cartridge: %q: truncated CHR-ROM (want %d bytes)", path, chrSize)
		}
		copy(chr, data[off:off+chrSize])
	}
	// chrSize == 0 means the board uses CHR RAM; an all-zero 8KiB
	// bank is a reasonable stand-in since mapper 0 never swaps it.
	if chrSize == 0 {
		chr = make([]byte, chrBlockSize)
	}

	return &ROM{path: path, h: h, prg: prg, chr: chr}, nil
}

// PRG returns the raw PRG-ROM bytes (16KiB or 32KiB for mapper 0).
func (r *ROM) PRG() []byte { return r.prg }

// CHR returns the raw CHR bytes (8KiB).
func (r *ROM) CHR() []byte { return r.chr }

// MapperID returns the iNES mapper number.
func (r *ROM) MapperID() uint8 { return r.h.mapperID() }

// MirrorMode returns the nametable mirroring mode the PPU should use.
func (r *ROM) MirrorMode() uint8 { return r.h.mirroringMode() }

// HasBatteryRAM reports whether the cartridge exposes battery-backed
// PRG-RAM at $6000-$7FFF.
func (r *ROM) HasBatteryRAM() bool { return r.h.hasBatteryRAM() }

func (r *ROM) String() string { return fmt.Sprintf("%s: %s", r.path, r.h) }
