package nes

import (
	"image/color"
	"io"
	"log"
)

// System owns every component of one NES session — CPU, PPU, cartridge,
// both controller ports, and the CPU RAM — and routes bus reads/writes
// between them. It drives the master clock: one PPU dot per Cycle call,
// one CPU cycle every third dot, with a pending PPU NMI delivered at the
// next CPU instruction boundary.
type System struct {
	cpu  *CPU
	ppu  *Ppu
	cart *Cartridge
	ram  ram
	ctrl [2]Controller

	masterClock uint64
	nmiPending  bool

	logger       *log.Logger
	strictWrites bool
	romWriteErr  error
}

// Option configures a System at construction time.
type Option func(*System)

// WithLogger overrides the System's (and its CPU's) default discard
// logger, used for instruction traces and fault reporting.
func WithLogger(l *log.Logger) Option {
	return func(s *System) {
		s.logger = l
		s.cpu.SetLogger(l)
	}
}

// WithInstructionTrace turns on the CPU's per-instruction trace log,
// needed to compare against a published nestest-style log.
func WithInstructionTrace(on bool) Option {
	return func(s *System) { s.cpu.Trace = on }
}

// WithStrictWrites controls what happens when a game writes to ROM: by
// default the write is logged and ignored (release policy); with this
// set, the write's error is retained and observable via System.Err.
func WithStrictWrites(on bool) Option {
	return func(s *System) { s.strictWrites = on }
}

// WithIllegalOpcodeNoOp converts an illegal-opcode fault into a logged
// no-op instead of halting emulation, for test ROMs that exercise random
// byte streams.
func WithIllegalOpcodeNoOp(on bool) Option {
	return func(s *System) { s.cpu.IllegalOpcodeNoOp = on }
}

// NewSystem constructs a System around cart. The cartridge must already
// have been validated (see ines.ParseINES / NewCartridge); System itself
// performs no further validation.
func NewSystem(cart *Cartridge, opts ...Option) *System {
	s := &System{
		cart:   cart,
		logger: log.New(io.Discard, "", 0),
	}
	s.ppu = NewPpu(cart, cart.Mirroring())
	s.cpu = NewCPU(s)
	s.cpu.SetLogger(s.logger)

	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reset puts the CPU and PPU into their power-on state and zeroes the
// master clock.
func (s *System) Reset() {
	s.cpu.Reset()
	s.ppu.Reset()
	s.masterClock = 0
	s.nmiPending = false
	s.romWriteErr = nil
}

// Cycle advances the system by one master tick: the PPU by one dot, and
// (every third tick) the CPU by one cycle. A PPU NMI raised this tick is
// delivered as soon as the CPU reaches its next instruction boundary,
// never mid-instruction. Cycle returns the CPU's error if an instruction
// faults (illegal opcode) and halts further stepping.
func (s *System) Cycle() error {
	s.ppu.Tick()
	if s.ppu.TakeNMI() {
		s.nmiPending = true
	}

	s.masterClock++
	if s.masterClock%3 != 0 {
		return nil
	}

	if s.nmiPending && s.cpu.AtInstructionBoundary() {
		s.cpu.NMI()
		s.nmiPending = false
	}
	return s.cpu.Tick()
}

// RunUntilFrame calls Cycle in a loop until the PPU's frame-complete
// latch transitions to true, then returns. It stops early, returning the
// CPU's error, if the CPU halts.
func (s *System) RunUntilFrame() error {
	for {
		if err := s.Cycle(); err != nil {
			return err
		}
		if s.ppu.FrameComplete() {
			return nil
		}
	}
}

// SetPC overrides the CPU program counter directly, bypassing the reset
// vector — used to start test ROMs (e.g. nestest) at a fixed entry point.
func (s *System) SetPC(pc uint16) { s.cpu.PC = pc }

// GetPC returns the CPU program counter.
func (s *System) GetPC() uint16 { return s.cpu.PC }

// GetCycles returns the CPU's lifetime cycle counter.
func (s *System) GetCycles() uint64 { return s.cpu.Cycles }

// GetInstructions returns the CPU's lifetime retired-instruction counter.
func (s *System) GetInstructions() uint64 { return s.cpu.Instructions }

// Err returns the error that halted the CPU, or (with WithStrictWrites)
// the most recent rejected ROM write, if any.
func (s *System) Err() error {
	if s.cpu.Err != nil {
		return s.cpu.Err
	}
	return s.romWriteErr
}

// SetButton updates the pressed-buttons buffer for one controller port.
func (s *System) SetButton(port Port, b Button, pressed bool) {
	s.ctrl[port].SetButton(b, pressed)
}

// RenderBackground returns the PPU's last fully rendered background
// frame.
func (s *System) RenderBackground() *[screenHeight][screenWidth]color.RGBA {
	return s.ppu.Frame()
}

// RenderPatternTable decodes one 128x128 pattern-table half (0 = left,
// 1 = right) into RGB using the given palette index (0-7); palette 0xFF
// selects a default grayscale-ish palette (palette 0).
func (s *System) RenderPatternTable(table, palette byte) [128][128]color.RGBA {
	if palette == 0xFF {
		palette = 0
	}
	var out [128][128]color.RGBA
	for tileY := 0; tileY < 16; tileY++ {
		for tileX := 0; tileX < 16; tileX++ {
			tile := s.cart.Tile(table, byte(tileY*16+tileX))
			for row := 0; row < 8; row++ {
				for col := 0; col < 8; col++ {
					out[tileY*8+row][tileX*8+col] = s.ppu.Color(palette, tile[row][col])
				}
			}
		}
	}
	return out
}

// CPURead implements CPUBus: address-range dispatch across CPU RAM, the
// PPU register window, the controller ports, the APU stub, and cartridge
// PRG, per the CPU memory map.
func (s *System) CPURead(addr uint16) byte {
	switch {
	case addr <= 0x1FFF:
		return s.ram.read(addr)
	case addr <= 0x3FFF:
		return s.ppu.CPURead(addr)
	case addr == 0x4016:
		return s.ctrl[Port1].Read()
	case addr == 0x4017:
		return s.ctrl[Port2].Read()
	case addr <= 0x401F:
		return 0 // APU / test-mode stub
	case addr <= 0x7FFF:
		return 0 // cartridge expansion, unused by NROM
	default:
		return s.cart.CPURead(addr)
	}
}

// CPUWrite implements CPUBus. A write that lands on ROM (e.g. $8000+ on
// NROM) fails inside the mapper; by default that failure is logged and
// ignored, matching a real cartridge's behavior for a correct game. With
// WithStrictWrites, the failure is retained and observable via Err.
func (s *System) CPUWrite(addr uint16, data byte) {
	switch {
	case addr <= 0x1FFF:
		s.ram.write(addr, data)
	case addr <= 0x3FFF:
		s.ppu.CPUWrite(addr, data)
	case addr == 0x4016:
		s.ctrl[Port1].Write(data)
		s.ctrl[Port2].Write(data)
	case addr == 0x4017:
		// APU frame counter, stubbed.
	case addr <= 0x401F:
		// APU / test-mode stub.
	case addr <= 0x7FFF:
		// cartridge expansion, unused by NROM.
	default:
		if err := s.cart.CPUWrite(addr, data); err != nil {
			s.logger.Printf("%v", err)
			if s.strictWrites {
				s.romWriteErr = err
			}
		}
	}
}
