package nes

import (
	"image/color"
)

const (
	screenWidth  = 256
	screenHeight = 240

	cyclesPerScanline = 341
	scanlinesPerFrame = 262
	visibleScanlines  = 240
	vblankScanline    = 241
)

// PPUBus is the narrow capability the PPU needs from the cartridge
// plugged into its address space: pattern-table reads and CHR-RAM
// writes.
type PPUBus interface {
	PPURead(addr uint16) byte
	PPUWrite(addr uint16, data byte) error
}

// Ppu emulates the NTSC 2C02: a 262-scanline x 341-dot state machine
// producing a 256x240 background frame. Sprite (foreground) rendering and
// per-scanline sprite-zero-hit/overflow accuracy are explicit non-goals;
// OAM/OAMADDR/OAMDATA are kept only so the sprite-side registers are
// readable and writable without crashing.
//
// References: http://wiki.nesdev.com/w/index.php/PPU_rendering
type Ppu struct {
	bus     PPUBus
	vram    *vram
	palette *paletteRAM
	oam     objectAttributeMemory

	ctrl    PpuReg // $2000
	mask    PpuReg // $2001
	status  PpuReg // $2002
	oamAddr byte   // $2003

	v PpuLoopyReg // current VRAM address
	t PpuLoopyReg // temporary VRAM address (top-left onscreen tile)
	x byte        // fine X scroll, 3 bits
	w bool        // write toggle ("first or second write")

	dataBuffer byte // buffered $2007 read

	scanline      int
	cycle         int
	frameComplete bool

	nmiPending bool

	bgNextTileID     byte
	bgNextTileAttrib byte
	bgNextTileLSB    byte
	bgNextTileMSB    byte

	bgShiftPatternLo uint16
	bgShiftPatternHi uint16
	bgShiftAttribLo  uint16
	bgShiftAttribHi  uint16

	frame [screenHeight][screenWidth]color.RGBA
}

// NewPpu constructs a PPU wired to bus (ordinarily a Cartridge) with the
// nametable mirroring mode the cartridge reports.
func NewPpu(bus PPUBus, mirroring Mirroring) *Ppu {
	return &Ppu{
		bus:      bus,
		vram:     newVRAM(mirroring),
		palette:  &paletteRAM{},
		oam:      newOAM(64),
		scanline: 0,
		cycle:    0,
	}
}

// Reset returns the PPU to its power-on state.
func (p *Ppu) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.oamAddr = 0
	p.v, p.t = 0, 0
	p.x = 0
	p.w = false
	p.dataBuffer = 0
	p.scanline, p.cycle = 0, 0
	p.frameComplete = false
	p.nmiPending = false
	p.oam.clear()
}

// FrameComplete reports whether a new frame finished since the last call
// to consume it, and clears the flag.
func (p *Ppu) FrameComplete() bool {
	v := p.frameComplete
	p.frameComplete = false
	return v
}

// Frame returns the last fully rendered background frame buffer.
func (p *Ppu) Frame() *[screenHeight][screenWidth]color.RGBA { return &p.frame }

// TakeNMI reports whether an NMI has been raised since the last call, and
// clears it. The System polls this on every master tick and holds the NMI
// until the CPU reaches an instruction boundary.
func (p *Ppu) TakeNMI() bool {
	v := p.nmiPending
	p.nmiPending = false
	return v
}

func (p *Ppu) renderingEnabled() bool {
	return p.mask.getFlag(maskBgShow) || p.mask.getFlag(maskSpriteShow)
}

// CPURead services a CPU-bus read of one of the eight PPU registers,
// mirrored every 8 bytes across $2000-$3FFF.
func (p *Ppu) CPURead(addr uint16) byte {
	switch addr & 0x0007 {
	case 0x0002: // PPUSTATUS
		data := byte(p.status&0xE0) | (p.dataBuffer & 0x1F)
		p.status.clearFlag(statusVBlank)
		p.w = false
		return data
	case 0x0004: // OAMDATA
		return p.oam.read(p.oamAddr)
	case 0x0007: // PPUDATA
		data := p.dataBuffer
		p.dataBuffer = p.ppuRead(p.v.value())
		if p.v.value() >= 0x3F00 {
			data = p.dataBuffer
		}
		p.v += PpuLoopyReg(p.ctrl.vramIncrement())
		return data
	default:
		return 0
	}
}

// CPUWrite services a CPU-bus write to one of the eight PPU registers.
func (p *Ppu) CPUWrite(addr uint16, data byte) {
	switch addr & 0x0007 {
	case 0x0000: // PPUCTRL
		p.ctrl = PpuReg(data)
		p.t.setNametable(data & 0x03)
	case 0x0001: // PPUMASK
		p.mask = PpuReg(data)
	case 0x0003: // OAMADDR
		p.oamAddr = data
	case 0x0004: // OAMDATA
		p.oam.write(p.oamAddr, data)
		p.oamAddr++
	case 0x0005: // PPUSCROLL
		if !p.w {
			p.x = data & 0x07
			p.t.setCoarseX(data >> 3)
		} else {
			p.t.setFineY(data & 0x07)
			p.t.setCoarseY(data >> 3)
		}
		p.w = !p.w
	case 0x0006: // PPUADDR
		if !p.w {
			p.t = (p.t & 0x00FF) | (PpuLoopyReg(data&0x3F) << 8)
		} else {
			p.t = (p.t & 0xFF00) | PpuLoopyReg(data)
			p.v = p.t
		}
		p.w = !p.w
	case 0x0007: // PPUDATA
		p.ppuWrite(p.v.value(), data)
		p.v += PpuLoopyReg(p.ctrl.vramIncrement())
	}
}

func (p *Ppu) ppuRead(addr uint16) byte {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		return p.bus.PPURead(addr)
	case addr < 0x3F00:
		return p.vram.read(addr)
	default:
		return p.palette.read(addr)
	}
}

func (p *Ppu) ppuWrite(addr uint16, data byte) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.bus.PPUWrite(addr, data)
	case addr < 0x3F00:
		p.vram.write(addr, data)
	default:
		p.palette.write(addr, data)
	}
}

// Color resolves (palette index 0-7, pixel value 0-3) to an RGB color via
// palette RAM and the fixed NTSC table. Exported for pattern-table debug
// rendering.
func (p *Ppu) Color(palette, pixel byte) color.RGBA {
	idx := p.ppuRead(0x3F00 + uint16(palette)<<2 + uint16(pixel))
	return ntscPalette[idx&0x3F]
}

// Tick advances the PPU by a single dot.
func (p *Ppu) Tick() {
	if p.scanline >= -1 && p.scanline < visibleScanlines {
		p.doBackgroundPipeline()
		if p.scanline >= 0 && p.cycle >= 1 && p.cycle <= screenWidth {
			p.renderPixel()
		}
	}

	if p.scanline == vblankScanline && p.cycle == 1 {
		p.status.setFlag(statusVBlank)
		if p.ctrl.getFlag(ctrlNmi) {
			p.nmiPending = true
		}
	}

	p.cycle++
	if p.cycle >= cyclesPerScanline {
		p.cycle = 0
		p.scanline++
		if p.scanline >= scanlinesPerFrame-1 {
			p.scanline = -1
			p.frameComplete = true
		}
	}
}

func (p *Ppu) doBackgroundPipeline() {
	if p.scanline == -1 && p.cycle == 1 {
		p.status.clearFlag(statusVBlank)
		p.status.clearFlag(statusSprite0Hit)
		p.status.clearFlag(statusSpriteOverflow)
	}

	inFetchWindow := (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 321 && p.cycle <= 337)
	if inFetchWindow && p.renderingEnabled() {
		p.updateShifters()
		switch (p.cycle - 1) % 8 {
		case 0:
			p.loadBackgroundShifters()
			p.bgNextTileID = p.ppuRead(0x2000 | (p.v.value() & 0x0FFF))
		case 2:
			attrAddr := 0x23C0 | (p.v.value() & 0x0C00) |
				uint16(p.v.getCoarseY()>>2)<<3 | uint16(p.v.getCoarseX()>>2)
			p.bgNextTileAttrib = p.ppuRead(attrAddr)
			if p.v.getCoarseY()&0x02 != 0 {
				p.bgNextTileAttrib >>= 4
			}
			if p.v.getCoarseX()&0x02 != 0 {
				p.bgNextTileAttrib >>= 2
			}
			p.bgNextTileAttrib &= 0x03
		case 4:
			addr := p.ctrl.bgPatternTable() + uint16(p.bgNextTileID)*16 + uint16(p.v.getFineY())
			p.bgNextTileLSB = p.ppuRead(addr)
		case 6:
			addr := p.ctrl.bgPatternTable() + uint16(p.bgNextTileID)*16 + uint16(p.v.getFineY()) + 8
			p.bgNextTileMSB = p.ppuRead(addr)
		case 7:
			p.v.incCoarseX()
		}
	}

	if p.cycle == 256 && p.renderingEnabled() {
		p.v.incFineY()
	}
	if p.cycle == 257 && p.renderingEnabled() {
		p.updateShifters()
		p.loadBackgroundShifters()
		p.v = (p.v &^ (loopyCoarseX | loopyNametable&0b01<<10)) | (p.t & (loopyCoarseX | 0b01<<10))
	}
	if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 && p.renderingEnabled() {
		p.v = (p.v &^ (loopyCoarseY | loopyFineY | 0b10<<10)) | (p.t & (loopyCoarseY | loopyFineY | 0b10<<10))
	}
}

func (p *Ppu) loadBackgroundShifters() {
	p.bgShiftPatternLo = (p.bgShiftPatternLo & 0xFF00) | uint16(p.bgNextTileLSB)
	p.bgShiftPatternHi = (p.bgShiftPatternHi & 0xFF00) | uint16(p.bgNextTileMSB)

	var lo, hi uint16
	if p.bgNextTileAttrib&0x01 != 0 {
		lo = 0xFF
	}
	if p.bgNextTileAttrib&0x02 != 0 {
		hi = 0xFF
	}
	p.bgShiftAttribLo = (p.bgShiftAttribLo & 0xFF00) | lo
	p.bgShiftAttribHi = (p.bgShiftAttribHi & 0xFF00) | hi
}

func (p *Ppu) updateShifters() {
	if p.mask.getFlag(maskBgShow) {
		p.bgShiftPatternLo <<= 1
		p.bgShiftPatternHi <<= 1
		p.bgShiftAttribLo <<= 1
		p.bgShiftAttribHi <<= 1
	}
}

func (p *Ppu) renderPixel() {
	x := p.cycle - 1
	y := p.scanline

	var pixel, palette byte
	if p.mask.getFlag(maskBgShow) && !(x < 8 && !p.mask.getFlag(maskBgLeft)) {
		bitMux := uint16(0x8000) >> p.x
		p0 := byte(0)
		if p.bgShiftPatternLo&bitMux != 0 {
			p0 = 1
		}
		p1 := byte(0)
		if p.bgShiftPatternHi&bitMux != 0 {
			p1 = 1
		}
		pixel = p0 | p1<<1

		a0 := byte(0)
		if p.bgShiftAttribLo&bitMux != 0 {
			a0 = 1
		}
		a1 := byte(0)
		if p.bgShiftAttribHi&bitMux != 0 {
			a1 = 1
		}
		palette = a0 | a1<<1
	}

	if y >= 0 && y < screenHeight && x >= 0 && x < screenWidth {
		p.frame[y][x] = p.Color(palette, pixel)
	}
}
