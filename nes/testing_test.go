package nes

import (
	"testing"

	"github.com/holtmann/nescore/ines"
)

// newTestCartridge builds a single-16KiB-bank NROM cartridge with prg
// copied in at offset 0. Callers that need a specific reset vector write
// it into prg themselves before calling this (PRG offset 0x3FFC/0x3FFD,
// since a single bank is mirrored at both $8000 and $C000).
func newTestCartridge(t *testing.T, prg []byte) *Cartridge {
	t.Helper()
	img := &ines.Image{
		PRG:       make([]byte, 16*1024),
		CHR:       make([]byte, 8*1024),
		Mapper:    0,
		Mirroring: ines.Horizontal,
	}
	copy(img.PRG, prg)
	cart, err := NewCartridge(img)
	if err != nil {
		t.Fatalf("newTestCartridge: %v", err)
	}
	return cart
}

// newTestSystem builds a System around a cartridge whose PRG is prg
// (padded/truncated to 16KiB) with the reset vector set to $8000.
func newTestSystem(t *testing.T, prg []byte, opts ...Option) *System {
	t.Helper()
	full := make([]byte, 16*1024)
	copy(full, prg)
	full[0x3FFC] = 0x00
	full[0x3FFD] = 0x80
	cart := newTestCartridge(t, full)
	sys := NewSystem(cart, opts...)
	sys.Reset()
	return sys
}
