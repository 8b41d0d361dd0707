package nes

// Addressing-mode routines compute the effective address (and, for every
// mode but IMP, prefetch the operand byte into c.fetched) and advance PC
// past any operand bytes. They return the extra-cycle bit an instruction
// may AND against; branches are special-cased via REL returning 0b11.

// amIMP: implicit, no operand to fetch.
func amIMP(c *CPU) byte {
	return 0
}

// amIMM: the next byte is the operand itself.
func amIMM(c *CPU) byte {
	c.fetched = c.read(c.PC)
	c.PC++
	return 0
}

// amZP0: zero-page, address is the next byte.
func amZP0(c *CPU) byte {
	c.addr = uint16(c.read(c.PC))
	c.PC++
	c.fetched = c.read(c.addr)
	return 0
}

// amZPX: zero-page + X, wrapping within the page (overflow discarded).
func amZPX(c *CPU) byte {
	base := c.read(c.PC)
	c.PC++
	c.addr = uint16(base + c.X)
	c.fetched = c.read(c.addr)
	return 0
}

// amZPY: zero-page + Y, wrapping within the page.
func amZPY(c *CPU) byte {
	base := c.read(c.PC)
	c.PC++
	c.addr = uint16(base + c.Y)
	c.fetched = c.read(c.addr)
	return 0
}

// amREL: signed 8-bit displacement for branches. Always returns 0b11 so
// the AND-with-instruction-return convention yields the branch's own
// taken/page-cross penalty unconditionally.
func amREL(c *CPU) byte {
	c.fetched = c.read(c.PC)
	c.PC++
	return 0x03
}

// amABS: full 16-bit address.
func amABS(c *CPU) byte {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	c.addr = hi<<8 | lo
	c.fetched = c.read(c.addr)
	return 0
}

// amABX: absolute + X; returns 1 if the indexed address crosses a page.
func amABX(c *CPU) byte {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	base := hi<<8 | lo
	c.addr = base + uint16(c.X)
	c.fetched = c.read(c.addr)
	if base&0xFF00 != c.addr&0xFF00 {
		return 1
	}
	return 0
}

// amABY: absolute + Y; returns 1 if the indexed address crosses a page.
func amABY(c *CPU) byte {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	base := hi<<8 | lo
	c.addr = base + uint16(c.Y)
	c.fetched = c.read(c.addr)
	if base&0xFF00 != c.addr&0xFF00 {
		return 1
	}
	return 0
}

// amIND: JMP-indirect, with the documented page-wrap hardware bug: if the
// pointer's low byte is 0xFF, the target's high byte is fetched from the
// start of the same page rather than the next.
func amIND(c *CPU) byte {
	ptrLo := uint16(c.read(c.PC))
	c.PC++
	ptrHi := uint16(c.read(c.PC))
	c.PC++
	ptr := ptrHi<<8 | ptrLo

	var lo, hi uint16
	if ptrLo == 0x00FF {
		lo = uint16(c.read(ptr))
		hi = uint16(c.read(ptr & 0xFF00))
	} else {
		lo = uint16(c.read(ptr))
		hi = uint16(c.read(ptr + 1))
	}
	c.addr = hi<<8 | lo
	c.fetched = c.read(c.addr)
	return 0
}

// amIZX: indexed-indirect. Zero-page pointer + X, wrapping within the
// zero page, then fetch the 16-bit target.
func amIZX(c *CPU) byte {
	base := uint16(c.read(c.PC))
	c.PC++
	lo := uint16(c.read((base + uint16(c.X)) & 0x00FF))
	hi := uint16(c.read((base + uint16(c.X) + 1) & 0x00FF))
	c.addr = hi<<8 | lo
	c.fetched = c.read(c.addr)
	return 0
}

// amIZY: indirect-indexed. Fetch the 16-bit pointer from the zero page,
// then add Y; returns 1 if that crosses a page.
func amIZY(c *CPU) byte {
	zp := uint16(c.read(c.PC))
	c.PC++
	lo := uint16(c.read(zp))
	hi := uint16(c.read((zp + 1) & 0x00FF))
	base := hi<<8 | lo
	c.addr = base + uint16(c.Y)
	c.fetched = c.read(c.addr)
	if base&0xFF00 != c.addr&0xFF00 {
		return 1
	}
	return 0
}
