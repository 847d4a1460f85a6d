package cpu

// Addressing modes.
// https://www.nesdev.org/obelisk-6502-guide/addressing.html
const (
	modeImplicit = iota
	modeAccumulator
	modeImmediate
	modeZeroPage
	modeZeroPageX
	modeZeroPageY
	modeRelative
	modeAbsolute
	modeAbsoluteX
	modeAbsoluteY
	modeIndirect
	modeIndirectX // Indexed Indirect
	modeIndirectY // Indirect Indexed
)

// operandAddr resolves mode to the address the current instruction's
// operand lives at. It assumes PC already points at the first operand
// byte (i.e. past the opcode byte itself). Callers must not invoke
// this for modeAccumulator or modeImplicit, which have no memory
// operand.
func (c *CPU) operandAddr(mode uint8) uint16 {
	switch mode {
	case modeImmediate:
		return c.PC
	case modeZeroPage:
		return uint16(c.read(c.PC))
	case modeZeroPageX:
		return uint16(c.read(c.PC) + c.X)
	case modeZeroPageY:
		return uint16(c.read(c.PC) + c.Y)
	case modeAbsolute:
		return c.read16(c.PC)
	case modeAbsoluteX:
		base := c.read16(c.PC)
		addr := base + uint16(c.X)
		c.cycles += pageCrossPenalty(base, addr)
		return addr
	case modeAbsoluteY:
		base := c.read16(c.PC)
		addr := base + uint16(c.Y)
		c.cycles += pageCrossPenalty(base, addr)
		return addr
	case modeIndirect:
		return c.readIndirectPointer(c.read16(c.PC))
	case modeIndirectX:
		ptr := c.read(c.PC) + c.X
		return c.readZeroPage16(ptr)
	case modeIndirectY:
		ptr := c.read(c.PC)
		base := c.readZeroPage16(ptr)
		addr := base + uint16(c.Y)
		c.cycles += pageCrossPenalty(base, addr)
		return addr
	case modeRelative:
		// Relative from PC immediately after the one-byte
		// operand: PC already points at that operand, so the
		// branch target is PC+1 plus the signed displacement.
		return (c.PC + 1) + uint16(int8(c.read(c.PC)))
	default:
		panic("cpu: addressing mode has no memory operand")
	}
}

// readZeroPage16 reads a little-endian 16-bit pointer out of the zero
// page, wrapping within page 0 rather than crossing into page 1 -
// this is how indexed-indirect and indirect-indexed addressing behave
// on real hardware.
func (c *CPU) readZeroPage16(ptr uint8) uint16 {
	lo := uint16(c.read(uint16(ptr)))
	hi := uint16(c.read(uint16(ptr + 1)))
	return hi<<8 | lo
}

// readIndirectPointer resolves JMP (indirect)'s target address. The
// real 6502 does not carry a page boundary correctly here: if ptr's
// low byte is $FF, the high byte is fetched from the start of the
// same page rather than the next one. This core does not emulate that
// bug; it resolves the address the way a corrected 6502 (or the
// 65C02) would, a deliberate scope decision over faithfulness to the
// one well-known original hardware quirk.
func (c *CPU) readIndirectPointer(ptr uint16) uint16 {
	lo := uint16(c.read(ptr))
	hi := uint16(c.read(ptr + 1))
	return hi<<8 | lo
}

// pageCrossPenalty returns 1 if a and b live on different 256-byte
// pages, else 0.
func pageCrossPenalty(a, b uint16) uint8 {
	if a&0xFF00 != b&0xFF00 {
		return 1
	}
	return 0
}
