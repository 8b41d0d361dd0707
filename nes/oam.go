package nes

// objectAttributeMemory is the PPU's 64-entry primary sprite table. This
// core does not implement sprite (foreground) rendering or sprite-zero
// hit/overflow detection (explicit non-goals); OAM exists so that
// OAMADDR/OAMDATA are readable and writable without crashing, per the
// "stubbed but must not crash" contract for sprite-side registers.
type objectAttributeMemory []*oamSprite

// newOAM returns object attribute memory of the given size, with each
// entry allocated in memory.
func newOAM(size int) objectAttributeMemory {
	oam := make(objectAttributeMemory, size)
	for i := range oam {
		oam[i] = new(oamSprite)
	}
	return oam
}

// oamSprite represents one entry, or sprite, in the Object Attribute memory.
type oamSprite struct {
	y         byte // Y position of the sprite
	id        byte // pattern memory ID
	attribute byte // flag specifying rendering attributes
	x         byte // X position of the sprite
}

func (oam objectAttributeMemory) read(addr byte) byte {
	spriteIdx := int(addr) / 4
	propIdx := int(addr) % 4

	sprite := oam[spriteIdx]

	switch propIdx {
	case 0:
		return sprite.y
	case 1:
		return sprite.id
	case 2:
		return sprite.attribute
	default:
		return sprite.x
	}
}

func (oam objectAttributeMemory) write(addr byte, data byte) {
	spriteIdx := int(addr) / 4
	propIdx := int(addr) % 4

	sprite := oam[spriteIdx]

	switch propIdx {
	case 0:
		sprite.y = data
	case 1:
		sprite.id = data
	case 2:
		sprite.attribute = data
	case 3:
		sprite.x = data
	}
}

func (oam objectAttributeMemory) clear() {
	for i := range oam {
		oam[i].y = 0xFF
		oam[i].id = 0xFF
		oam[i].attribute = 0xFF
		oam[i].x = 0xFF
	}
}
