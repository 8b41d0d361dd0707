package nes

import (
	"errors"
	"testing"

	"github.com/holtmann/nescore/ines"
)

func TestNROMSingleBankMirrorsAcross8000AndC000(t *testing.T) {
	img := &ines.Image{PRG: make([]byte, 16*1024), CHR: make([]byte, 8*1024)}
	img.PRG[0x0000] = 0x11
	img.PRG[0x3FFF] = 0x22
	cart, err := NewCartridge(img)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if got := cart.CPURead(0x8000); got != 0x11 {
		t.Errorf("read $8000 = %#02x, want 0x11", got)
	}
	if got := cart.CPURead(0xC000); got != 0x11 {
		t.Errorf("read $C000 = %#02x, want 0x11 (mirrors $8000)", got)
	}
	if got := cart.CPURead(0xFFFF); got != 0x22 {
		t.Errorf("read $FFFF = %#02x, want 0x22", got)
	}
}

func TestNROMTwoBanksNotMirrored(t *testing.T) {
	img := &ines.Image{PRG: make([]byte, 32*1024), CHR: make([]byte, 8*1024)}
	img.PRG[0x0000] = 0xAA
	img.PRG[0x4000] = 0xBB
	cart, err := NewCartridge(img)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if got := cart.CPURead(0x8000); got != 0xAA {
		t.Errorf("read $8000 = %#02x, want 0xAA", got)
	}
	if got := cart.CPURead(0xC000); got != 0xBB {
		t.Errorf("read $C000 = %#02x, want 0xBB (second bank, no mirroring)", got)
	}
}

func TestCartridgePRGWriteFails(t *testing.T) {
	img := &ines.Image{PRG: make([]byte, 16*1024), CHR: make([]byte, 8*1024)}
	cart, err := NewCartridge(img)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if err := cart.CPUWrite(0x8000, 0xFF); !errors.Is(err, ErrROMWrite) {
		t.Errorf("err = %v, want ErrROMWrite", err)
	}
}

func TestUnsupportedMapperRejected(t *testing.T) {
	img := &ines.Image{PRG: make([]byte, 16*1024), CHR: make([]byte, 8*1024), Mapper: 4}
	if _, err := NewCartridge(img); !errors.Is(err, ErrUnsupportedMapper) {
		t.Errorf("err = %v, want ErrUnsupportedMapper", err)
	}
}

func TestCartridgeTileDecodesPlanes(t *testing.T) {
	img := &ines.Image{PRG: make([]byte, 16*1024), CHR: make([]byte, 8*1024)}
	// Tile 0, row 0: low-plane byte 0b10000000, high-plane byte 0b10000000
	// (8 bytes later) -> leftmost pixel has both bit planes set -> value 3.
	img.CHR[0] = 0b10000000
	img.CHR[8] = 0b10000000
	cart, err := NewCartridge(img)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	tile := cart.Tile(0, 0)
	if tile[0][0] != 3 {
		t.Errorf("tile[0][0] = %d, want 3", tile[0][0])
	}
	for x := 1; x < 8; x++ {
		if tile[0][x] != 0 {
			t.Errorf("tile[0][%d] = %d, want 0", x, tile[0][x])
		}
	}
}

func TestMirroringDecodedFromHeader(t *testing.T) {
	img := &ines.Image{PRG: make([]byte, 16*1024), CHR: make([]byte, 8*1024), Mirroring: ines.Vertical}
	cart, err := NewCartridge(img)
	if err != nil {
		t.Fatalf("NewCartridge: %v", err)
	}
	if cart.Mirroring() != MirrorVertical {
		t.Errorf("Mirroring() = %v, want MirrorVertical", cart.Mirroring())
	}
}
