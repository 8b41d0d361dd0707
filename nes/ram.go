package nes

// Mirroring is the cartridge-selected nametable mirroring mode, read from
// the iNES header.
type Mirroring int

const (
	MirrorHorizontal Mirroring = iota
	MirrorVertical
)

// ram is a fixed 2 KiB CPU RAM, mirrored through $0000-$1FFF by masking
// the low 11 bits of the address.
type ram struct {
	mem [0x0800]byte
}

func (r *ram) read(addr uint16) byte {
	return r.mem[addr&0x07FF]
}

func (r *ram) write(addr uint16, data byte) {
	r.mem[addr&0x07FF] = data
}

// vram is the 2 KiB of physical nametable memory backing the logical
// 4 KiB ($2000-$2FFF) nametable window on the PPU bus. The cartridge's
// mirroring mode decides which of the four logical nametables alias onto
// which half of the physical memory.
type vram struct {
	mem       [0x0800]byte
	mirroring Mirroring
}

func newVRAM(mirroring Mirroring) *vram {
	return &vram{mirroring: mirroring}
}

// mirror rewrites a raw PPU-bus nametable address ($2000-$3EFF; masking
// with 0x0FFF folds the $3000-$3EFF alias onto $2000-$2EFF) into a 0-2047
// physical index.
func (v *vram) mirror(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr / 0x0400 // logical nametable 0-3
	offset := addr % 0x0400

	var physicalTable uint16
	switch v.mirroring {
	case MirrorVertical:
		physicalTable = table % 2 // NT0/NT2 share bank 0, NT1/NT3 share bank 1
	default:
		physicalTable = table / 2 // NT0/NT1 share bank 0, NT2/NT3 share bank 1
	}
	return physicalTable*0x0400 + offset
}

func (v *vram) read(addr uint16) byte {
	return v.mem[v.mirror(addr)]
}

func (v *vram) write(addr uint16, data byte) {
	v.mem[v.mirror(addr)] = data
}

// paletteRAM is the 32-byte palette memory on the PPU bus, with the
// background-color aliasing documented in the PPU register interface.
type paletteRAM struct {
	mem [0x20]byte
}

// mirror folds addresses whose low five bits are 0x10/0x14/0x18/0x1C onto
// 0x00/0x04/0x08/0x0C, and wraps everything else into the 32-byte table.
func (p *paletteRAM) mirror(addr uint16) uint16 {
	addr &= 0x1F
	if addr&0x13 == 0x10 {
		addr &^= 0x10
	}
	return addr
}

func (p *paletteRAM) read(addr uint16) byte {
	return p.mem[p.mirror(addr)]
}

func (p *paletteRAM) write(addr uint16, data byte) {
	p.mem[p.mirror(addr)] = data
}
