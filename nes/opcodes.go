package nes

// opcodeTable is the 256-entry fetch/decode table: one row per possible
// opcode byte, binding its mnemonic, instruction routine, addressing mode
// and base cycle count. Unofficial-but-stable opcodes (LAX, SAX, DCP,
// ISC, SLO, RLA, SRE, RRA, the extra NOPs, and the duplicate SBC at 0xEB)
// are bound to real routines; opcode bytes with no defined behavior are
// bound to opXXX under the mnemonic "XXX", which CPU.step turns into
// ErrIllegalOpcode.
var opcodeTable = [256]opcodeEntry{
	0x00: {"BRK", opBRK, amIMP, 7},
	0x01: {"ORA", opORA, amIZX, 6},
	0x02: {"XXX", opXXX, amIMP, 2},
	0x03: {"SLO", opSLO, amIZX, 8},
	0x04: {"NOP", opNOP, amZP0, 3},
	0x05: {"ORA", opORA, amZP0, 3},
	0x06: {"ASL", opASL, amZP0, 5},
	0x07: {"SLO", opSLO, amZP0, 5},
	0x08: {"PHP", opPHP, amIMP, 3},
	0x09: {"ORA", opORA, amIMM, 2},
	0x0A: {"ASL", opASLAcc, amIMP, 2},
	0x0B: {"XXX", opXXX, amIMM, 2},
	0x0C: {"NOP", opNOP, amABS, 4},
	0x0D: {"ORA", opORA, amABS, 4},
	0x0E: {"ASL", opASL, amABS, 6},
	0x0F: {"SLO", opSLO, amABS, 6},

	0x10: {"BPL", opBPL, amREL, 2},
	0x11: {"ORA", opORA, amIZY, 5},
	0x12: {"XXX", opXXX, amIMP, 2},
	0x13: {"SLO", opSLO, amIZY, 8},
	0x14: {"NOP", opNOP, amZPX, 4},
	0x15: {"ORA", opORA, amZPX, 4},
	0x16: {"ASL", opASL, amZPX, 6},
	0x17: {"SLO", opSLO, amZPX, 6},
	0x18: {"CLC", opCLC, amIMP, 2},
	0x19: {"ORA", opORA, amABY, 4},
	0x1A: {"NOP", opNOP, amIMP, 2},
	0x1B: {"SLO", opSLO, amABY, 7},
	0x1C: {"NOP", opNOP, amABX, 4},
	0x1D: {"ORA", opORA, amABX, 4},
	0x1E: {"ASL", opASL, amABX, 7},
	0x1F: {"SLO", opSLO, amABX, 7},

	0x20: {"JSR", opJSR, amABS, 6},
	0x21: {"AND", opAND, amIZX, 6},
	0x22: {"XXX", opXXX, amIMP, 2},
	0x23: {"RLA", opRLA, amIZX, 8},
	0x24: {"BIT", opBIT, amZP0, 3},
	0x25: {"AND", opAND, amZP0, 3},
	0x26: {"ROL", opROL, amZP0, 5},
	0x27: {"RLA", opRLA, amZP0, 5},
	0x28: {"PLP", opPLP, amIMP, 4},
	0x29: {"AND", opAND, amIMM, 2},
	0x2A: {"ROL", opROLAcc, amIMP, 2},
	0x2B: {"XXX", opXXX, amIMM, 2},
	0x2C: {"BIT", opBIT, amABS, 4},
	0x2D: {"AND", opAND, amABS, 4},
	0x2E: {"ROL", opROL, amABS, 6},
	0x2F: {"RLA", opRLA, amABS, 6},

	0x30: {"BMI", opBMI, amREL, 2},
	0x31: {"AND", opAND, amIZY, 5},
	0x32: {"XXX", opXXX, amIMP, 2},
	0x33: {"RLA", opRLA, amIZY, 8},
	0x34: {"NOP", opNOP, amZPX, 4},
	0x35: {"AND", opAND, amZPX, 4},
	0x36: {"ROL", opROL, amZPX, 6},
	0x37: {"RLA", opRLA, amZPX, 6},
	0x38: {"SEC", opSEC, amIMP, 2},
	0x39: {"AND", opAND, amABY, 4},
	0x3A: {"NOP", opNOP, amIMP, 2},
	0x3B: {"RLA", opRLA, amABY, 7},
	0x3C: {"NOP", opNOP, amABX, 4},
	0x3D: {"AND", opAND, amABX, 4},
	0x3E: {"ROL", opROL, amABX, 7},
	0x3F: {"RLA", opRLA, amABX, 7},

	0x40: {"RTI", opRTI, amIMP, 6},
	0x41: {"EOR", opEOR, amIZX, 6},
	0x42: {"XXX", opXXX, amIMP, 2},
	0x43: {"SRE", opSRE, amIZX, 8},
	0x44: {"NOP", opNOP, amZP0, 3},
	0x45: {"EOR", opEOR, amZP0, 3},
	0x46: {"LSR", opLSR, amZP0, 5},
	0x47: {"SRE", opSRE, amZP0, 5},
	0x48: {"PHA", opPHA, amIMP, 3},
	0x49: {"EOR", opEOR, amIMM, 2},
	0x4A: {"LSR", opLSRAcc, amIMP, 2},
	0x4B: {"XXX", opXXX, amIMM, 2},
	0x4C: {"JMP", opJMP, amABS, 3},
	0x4D: {"EOR", opEOR, amABS, 4},
	0x4E: {"LSR", opLSR, amABS, 6},
	0x4F: {"SRE", opSRE, amABS, 6},

	0x50: {"BVC", opBVC, amREL, 2},
	0x51: {"EOR", opEOR, amIZY, 5},
	0x52: {"XXX", opXXX, amIMP, 2},
	0x53: {"SRE", opSRE, amIZY, 8},
	0x54: {"NOP", opNOP, amZPX, 4},
	0x55: {"EOR", opEOR, amZPX, 4},
	0x56: {"LSR", opLSR, amZPX, 6},
	0x57: {"SRE", opSRE, amZPX, 6},
	0x58: {"CLI", opCLI, amIMP, 2},
	0x59: {"EOR", opEOR, amABY, 4},
	0x5A: {"NOP", opNOP, amIMP, 2},
	0x5B: {"SRE", opSRE, amABY, 7},
	0x5C: {"NOP", opNOP, amABX, 4},
	0x5D: {"EOR", opEOR, amABX, 4},
	0x5E: {"LSR", opLSR, amABX, 7},
	0x5F: {"SRE", opSRE, amABX, 7},

	0x60: {"RTS", opRTS, amIMP, 6},
	0x61: {"ADC", opADC, amIZX, 6},
	0x62: {"XXX", opXXX, amIMP, 2},
	0x63: {"RRA", opRRA, amIZX, 8},
	0x64: {"NOP", opNOP, amZP0, 3},
	0x65: {"ADC", opADC, amZP0, 3},
	0x66: {"ROR", opROR, amZP0, 5},
	0x67: {"RRA", opRRA, amZP0, 5},
	0x68: {"PLA", opPLA, amIMP, 4},
	0x69: {"ADC", opADC, amIMM, 2},
	0x6A: {"ROR", opRORAcc, amIMP, 2},
	0x6B: {"XXX", opXXX, amIMM, 2},
	0x6C: {"JMP", opJMP, amIND, 5},
	0x6D: {"ADC", opADC, amABS, 4},
	0x6E: {"ROR", opROR, amABS, 6},
	0x6F: {"RRA", opRRA, amABS, 6},

	0x70: {"BVS", opBVS, amREL, 2},
	0x71: {"ADC", opADC, amIZY, 5},
	0x72: {"XXX", opXXX, amIMP, 2},
	0x73: {"RRA", opRRA, amIZY, 8},
	0x74: {"NOP", opNOP, amZPX, 4},
	0x75: {"ADC", opADC, amZPX, 4},
	0x76: {"ROR", opROR, amZPX, 6},
	0x77: {"RRA", opRRA, amZPX, 6},
	0x78: {"SEI", opSEI, amIMP, 2},
	0x79: {"ADC", opADC, amABY, 4},
	0x7A: {"NOP", opNOP, amIMP, 2},
	0x7B: {"RRA", opRRA, amABY, 7},
	0x7C: {"NOP", opNOP, amABX, 4},
	0x7D: {"ADC", opADC, amABX, 4},
	0x7E: {"ROR", opROR, amABX, 7},
	0x7F: {"RRA", opRRA, amABX, 7},

	0x80: {"NOP", opNOP, amIMM, 2},
	0x81: {"STA", opSTA, amIZX, 6},
	0x82: {"XXX", opXXX, amIMM, 2},
	0x83: {"SAX", opSAX, amIZX, 6},
	0x84: {"STY", opSTY, amZP0, 3},
	0x85: {"STA", opSTA, amZP0, 3},
	0x86: {"STX", opSTX, amZP0, 3},
	0x87: {"SAX", opSAX, amZP0, 3},
	0x88: {"DEY", opDEY, amIMP, 2},
	0x89: {"NOP", opNOP, amIMM, 2},
	0x8A: {"TXA", opTXA, amIMP, 2},
	0x8B: {"XXX", opXXX, amIMM, 2},
	0x8C: {"STY", opSTY, amABS, 4},
	0x8D: {"STA", opSTA, amABS, 4},
	0x8E: {"STX", opSTX, amABS, 4},
	0x8F: {"SAX", opSAX, amABS, 4},

	0x90: {"BCC", opBCC, amREL, 2},
	0x91: {"STA", opSTA, amIZY, 6},
	0x92: {"XXX", opXXX, amIMP, 2},
	0x93: {"XXX", opXXX, amIZY, 6},
	0x94: {"STY", opSTY, amZPX, 4},
	0x95: {"STA", opSTA, amZPX, 4},
	0x96: {"STX", opSTX, amZPY, 4},
	0x97: {"SAX", opSAX, amZPY, 4},
	0x98: {"TYA", opTYA, amIMP, 2},
	0x99: {"STA", opSTA, amABY, 5},
	0x9A: {"TXS", opTXS, amIMP, 2},
	0x9B: {"XXX", opXXX, amABY, 5},
	0x9C: {"XXX", opXXX, amABX, 5},
	0x9D: {"STA", opSTA, amABX, 5},
	0x9E: {"XXX", opXXX, amABY, 5},
	0x9F: {"XXX", opXXX, amABY, 5},

	0xA0: {"LDY", opLDY, amIMM, 2},
	0xA1: {"LDA", opLDA, amIZX, 6},
	0xA2: {"LDX", opLDX, amIMM, 2},
	0xA3: {"LAX", opLAX, amIZX, 6},
	0xA4: {"LDY", opLDY, amZP0, 3},
	0xA5: {"LDA", opLDA, amZP0, 3},
	0xA6: {"LDX", opLDX, amZP0, 3},
	0xA7: {"LAX", opLAX, amZP0, 3},
	0xA8: {"TAY", opTAY, amIMP, 2},
	0xA9: {"LDA", opLDA, amIMM, 2},
	0xAA: {"TAX", opTAX, amIMP, 2},
	0xAB: {"XXX", opXXX, amIMM, 2},
	0xAC: {"LDY", opLDY, amABS, 4},
	0xAD: {"LDA", opLDA, amABS, 4},
	0xAE: {"LDX", opLDX, amABS, 4},
	0xAF: {"LAX", opLAX, amABS, 4},

	0xB0: {"BCS", opBCS, amREL, 2},
	0xB1: {"LDA", opLDA, amIZY, 5},
	0xB2: {"XXX", opXXX, amIMP, 2},
	0xB3: {"LAX", opLAX, amIZY, 5},
	0xB4: {"LDY", opLDY, amZPX, 4},
	0xB5: {"LDA", opLDA, amZPX, 4},
	0xB6: {"LDX", opLDX, amZPY, 4},
	0xB7: {"LAX", opLAX, amZPY, 4},
	0xB8: {"CLV", opCLV, amIMP, 2},
	0xB9: {"LDA", opLDA, amABY, 4},
	0xBA: {"TSX", opTSX, amIMP, 2},
	0xBB: {"XXX", opXXX, amABY, 4},
	0xBC: {"LDY", opLDY, amABX, 4},
	0xBD: {"LDA", opLDA, amABX, 4},
	0xBE: {"LDX", opLDX, amABY, 4},
	0xBF: {"LAX", opLAX, amABY, 4},

	0xC0: {"CPY", opCPY, amIMM, 2},
	0xC1: {"CMP", opCMP, amIZX, 6},
	0xC2: {"XXX", opXXX, amIMM, 2},
	0xC3: {"DCP", opDCP, amIZX, 8},
	0xC4: {"CPY", opCPY, amZP0, 3},
	0xC5: {"CMP", opCMP, amZP0, 3},
	0xC6: {"DEC", opDEC, amZP0, 5},
	0xC7: {"DCP", opDCP, amZP0, 5},
	0xC8: {"INY", opINY, amIMP, 2},
	0xC9: {"CMP", opCMP, amIMM, 2},
	0xCA: {"DEX", opDEX, amIMP, 2},
	0xCB: {"XXX", opXXX, amIMM, 2},
	0xCC: {"CPY", opCPY, amABS, 4},
	0xCD: {"CMP", opCMP, amABS, 4},
	0xCE: {"DEC", opDEC, amABS, 6},
	0xCF: {"DCP", opDCP, amABS, 6},

	0xD0: {"BNE", opBNE, amREL, 2},
	0xD1: {"CMP", opCMP, amIZY, 5},
	0xD2: {"XXX", opXXX, amIMP, 2},
	0xD3: {"DCP", opDCP, amIZY, 8},
	0xD4: {"NOP", opNOP, amZPX, 4},
	0xD5: {"CMP", opCMP, amZPX, 4},
	0xD6: {"DEC", opDEC, amZPX, 6},
	0xD7: {"DCP", opDCP, amZPX, 6},
	0xD8: {"CLD", opCLD, amIMP, 2},
	0xD9: {"CMP", opCMP, amABY, 4},
	0xDA: {"NOP", opNOP, amIMP, 2},
	0xDB: {"DCP", opDCP, amABY, 7},
	0xDC: {"NOP", opNOP, amABX, 4},
	0xDD: {"CMP", opCMP, amABX, 4},
	0xDE: {"DEC", opDEC, amABX, 7},
	0xDF: {"DCP", opDCP, amABX, 7},

	0xE0: {"CPX", opCPX, amIMM, 2},
	0xE1: {"SBC", opSBC, amIZX, 6},
	0xE2: {"XXX", opXXX, amIMM, 2},
	0xE3: {"ISC", opISC, amIZX, 8},
	0xE4: {"CPX", opCPX, amZP0, 3},
	0xE5: {"SBC", opSBC, amZP0, 3},
	0xE6: {"INC", opINC, amZP0, 5},
	0xE7: {"ISC", opISC, amZP0, 5},
	0xE8: {"INX", opINX, amIMP, 2},
	0xE9: {"SBC", opSBC, amIMM, 2},
	0xEA: {"NOP", opNOP, amIMP, 2},
	0xEB: {"SBC", opSBC, amIMM, 2},
	0xEC: {"CPX", opCPX, amABS, 4},
	0xED: {"SBC", opSBC, amABS, 4},
	0xEE: {"INC", opINC, amABS, 6},
	0xEF: {"ISC", opISC, amABS, 6},

	0xF0: {"BEQ", opBEQ, amREL, 2},
	0xF1: {"SBC", opSBC, amIZY, 5},
	0xF2: {"XXX", opXXX, amIMP, 2},
	0xF3: {"ISC", opISC, amIZY, 8},
	0xF4: {"NOP", opNOP, amZPX, 4},
	0xF5: {"SBC", opSBC, amZPX, 4},
	0xF6: {"INC", opINC, amZPX, 6},
	0xF7: {"ISC", opISC, amZPX, 6},
	0xF8: {"SED", opSED, amIMP, 2},
	0xF9: {"SBC", opSBC, amABY, 4},
	0xFA: {"NOP", opNOP, amIMP, 2},
	0xFB: {"ISC", opISC, amABY, 7},
	0xFC: {"NOP", opNOP, amABX, 4},
	0xFD: {"SBC", opSBC, amABX, 4},
	0xFE: {"INC", opINC, amABX, 7},
	0xFF: {"ISC", opISC, amABX, 7},
}
