package instructions

import (
	"testing"

	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
)

func testState() (*registers.Registers, *memory.RAM, *interrupts.Service) {
	return registers.New(), memory.NewRAM(), interrupts.NewService()
}

func mustExecute(t *testing.T, i Instruction, r *registers.Registers, mem memory.Memory, irq *interrupts.Service) uint8 {
	t.Helper()
	cycles, err := i.Execute(r, mem, irq)
	if err != nil {
		t.Fatalf("%s failed: %v", i, err)
	}
	return cycles
}

func assertCycles(t *testing.T, i Instruction, got, want uint8) {
	t.Helper()
	if got != want {
		t.Errorf("%s consumed %d cycles, want %d", i, got, want)
	}
}

func assertFlags(t *testing.T, r *registers.Registers, want registers.Flags) {
	t.Helper()
	if got := r.Flags(); got != want {
		t.Errorf("flags are %+v, want %+v", got, want)
	}
}
