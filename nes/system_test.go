package nes

import (
	"bytes"
	"log"
	"testing"
)

func TestSystemResetStartsAtResetVector(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA}) // NOP
	if sys.GetPC() != 0x8000 {
		t.Errorf("PC = %#04x, want 0x8000", sys.GetPC())
	}
}

func TestSystemCycleAdvancesCPUEveryThirdDot(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA})
	startCycles := sys.GetCycles()
	for i := 0; i < 3; i++ {
		if err := sys.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
	}
	if got := sys.GetCycles(); got != startCycles+1 {
		t.Errorf("GetCycles() = %d, want %d (one CPU cycle per 3 master ticks)", got, startCycles+1)
	}
}

func TestSystemControllerWiringThroughMemoryMap(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA})
	sys.SetButton(Port1, ButtonA, true)
	sys.SetButton(Port1, ButtonStart, true)

	sys.CPUWrite(0x4016, 0x01)
	sys.CPUWrite(0x4016, 0x00)

	want := []byte{1, 0, 0, 1, 0, 0, 0, 0}
	for i, w := range want {
		if got := sys.CPURead(0x4016); got != w {
			t.Errorf("bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestSystemStrobeWritesBothControllerPorts(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA})
	sys.SetButton(Port2, ButtonB, true)
	sys.CPUWrite(0x4016, 0x01) // a single write to $4016 strobes both ports
	sys.CPUWrite(0x4016, 0x00)
	if got := sys.CPURead(0x4017); got != 0 {
		t.Errorf("port 2 bit 0 = %d, want 0 (B is bit 1)", got)
	}
	if got := sys.CPURead(0x4017); got != 1 {
		t.Errorf("port 2 bit 1 = %d, want 1 (B)", got)
	}
}

func TestSystemRAMMirroredThroughCPUBus(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA})
	sys.CPUWrite(0x0000, 0x77)
	if got := sys.CPURead(0x0800); got != 0x77 {
		t.Errorf("CPURead($0800) = %#02x, want 0x77", got)
	}
}

func TestSystemStrictWritesSurfacesROMWriteError(t *testing.T) {
	var buf bytes.Buffer
	sys := newTestSystem(t, []byte{0xEA}, WithStrictWrites(true), WithLogger(log.New(&buf, "", 0)))
	sys.CPUWrite(0x8000, 0xFF) // ROM write, always rejected by NROM
	if sys.Err() == nil {
		t.Fatal("Err() should report the rejected ROM write under WithStrictWrites")
	}
	if buf.Len() == 0 {
		t.Error("the rejected write should also be logged")
	}
}

func TestSystemDefaultWritesIgnoreROMWriteFailure(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA})
	sys.CPUWrite(0x8000, 0xFF)
	if sys.Err() != nil {
		t.Errorf("Err() = %v, want nil without WithStrictWrites", sys.Err())
	}
}

func TestSystemIllegalOpcodeHaltsCycle(t *testing.T) {
	prg := make([]byte, 16*1024)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	prg[0] = 0x02 // illegal opcode
	cart := newTestCartridge(t, prg)
	sys := NewSystem(cart)
	sys.Reset()

	// 7 reset cycles must be burned (3 master ticks each) before the CPU
	// reaches the illegal opcode at $8000 on its 8th tick.
	var err error
	for i := 0; i < 30 && err == nil; i++ {
		err = sys.Cycle()
	}
	if err == nil {
		t.Fatal("expected an illegal-opcode error from Cycle")
	}
	if sys.Err() == nil {
		t.Error("Err() should also report the fault")
	}
}

func TestSystemNMIDeliveredAtInstructionBoundary(t *testing.T) {
	prg := make([]byte, 16*1024)
	prg[0x3FFC], prg[0x3FFD] = 0x00, 0x80
	prg[0x3FFA], prg[0x3FFB] = 0x00, 0x90 // NMI vector -> $9000, mirrors into this bank
	// A run of NOPs so the CPU is reliably between instructions often.
	for i := 0; i < 10; i++ {
		prg[i] = 0xEA
	}
	cart := newTestCartridge(t, prg)
	sys := NewSystem(cart)
	sys.Reset()
	sys.ppu.ctrl.setFlag(ctrlNmi)
	sys.ppu.nmiPending = true

	// 7 reset cycles (21 master ticks) must elapse before the CPU reaches
	// an instruction boundary where the pending NMI can be delivered.
	for i := 0; i < 30; i++ {
		if err := sys.Cycle(); err != nil {
			t.Fatalf("Cycle: %v", err)
		}
		if sys.GetPC() == 0x9000 {
			return
		}
	}
	t.Fatal("NMI was never delivered within 30 master ticks")
}

func TestSystemRenderPatternTableDimensions(t *testing.T) {
	sys := newTestSystem(t, []byte{0xEA})
	out := sys.RenderPatternTable(0, 0xFF)
	if len(out) != 128 || len(out[0]) != 128 {
		t.Fatalf("pattern table dimensions = %dx%d, want 128x128", len(out), len(out[0]))
	}
}
