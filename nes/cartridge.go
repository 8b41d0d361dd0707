package nes

import (
	"errors"
	"fmt"

	"github.com/holtmann/nescore/ines"
)

// ErrUnsupportedMapper is returned when a cartridge image names a mapper
// number this core does not implement.
var ErrUnsupportedMapper = errors.New("nes: unsupported mapper")

// Cartridge owns a cartridge's PRG and CHR byte vectors plus its mapper,
// and is treated as immutable by games once constructed.
type Cartridge struct {
	prg       []byte
	chr       []byte
	mapper    Mapper
	mirroring Mirroring
}

// NewCartridge builds a Cartridge from a parsed iNES image. Only mapper
// #0 (NROM) is supported; any other mapper number is a construction
// error.
func NewCartridge(img *ines.Image) (*Cartridge, error) {
	if img.Mapper != 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, img.Mapper)
	}

	prgBanks := byte(len(img.PRG) / (16 * 1024))
	chrBanks := byte(len(img.CHR) / (8 * 1024))

	mirroring := MirrorHorizontal
	if img.Mirroring == ines.Vertical {
		mirroring = MirrorVertical
	}

	chr := img.CHR
	if len(chr) == 0 {
		// Some NROM images ship zero CHR banks and use CHR RAM instead;
		// back them with a zeroed 8 KiB region so the PPU bus still
		// resolves addresses. The NROM mapper rejects every CHR write,
		// so this region stays zero.
		chr = make([]byte, 8*1024)
	}

	return &Cartridge{
		prg:       img.PRG,
		chr:       chr,
		mapper:    newNROMMapper(prgBanks, chrBanks),
		mirroring: mirroring,
	}, nil
}

func (c *Cartridge) Mirroring() Mirroring { return c.mirroring }

func (c *Cartridge) CPURead(addr uint16) byte {
	off := c.mapper.MapPRGRead(addr)
	if off < 0 || off >= len(c.prg) {
		return 0
	}
	return c.prg[off]
}

func (c *Cartridge) CPUWrite(addr uint16, data byte) error {
	off, err := c.mapper.MapPRGWrite(addr)
	if err != nil {
		return err
	}
	if off >= 0 && off < len(c.prg) {
		c.prg[off] = data
	}
	return nil
}

func (c *Cartridge) PPURead(addr uint16) byte {
	off := c.mapper.MapCHRRead(addr)
	if off < 0 || off >= len(c.chr) {
		return 0
	}
	return c.chr[off]
}

func (c *Cartridge) PPUWrite(addr uint16, data byte) error {
	off, err := c.mapper.MapCHRWrite(addr)
	if err != nil {
		return err
	}
	if off >= 0 && off < len(c.chr) {
		c.chr[off] = data
	}
	return nil
}

// Tile decodes an 8x8 grid of 2-bit palette indices for the given tile
// index (0-255) out of the given pattern-table half (0 = left/$0000,
// 1 = right/$1000).
func (c *Cartridge) Tile(table, index byte) [8][8]byte {
	var out [8][8]byte
	base := uint16(table) * 0x1000
	offset := base + uint16(index)*16

	for y := 0; y < 8; y++ {
		plane0 := c.PPURead(offset + uint16(y))
		plane1 := c.PPURead(offset + uint16(y) + 8)
		for x := 0; x < 8; x++ {
			lo := (plane0 >> (7 - x)) & 1
			hi := (plane1 >> (7 - x)) & 1
			out[y][x] = lo | hi<<1
		}
	}
	return out
}
