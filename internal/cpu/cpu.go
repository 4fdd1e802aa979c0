// Package cpu drives the fetch-decode-execute loop of the SM83 core.
package cpu

import (
	"github.com/pkg/errors"

	"github.com/iensu/gejmboj/internal/instructions"
	"github.com/iensu/gejmboj/internal/interrupts"
	"github.com/iensu/gejmboj/internal/memory"
	"github.com/iensu/gejmboj/internal/registers"
	"github.com/iensu/gejmboj/pkg/bits"
	"github.com/iensu/gejmboj/pkg/log"
)

// Mode is the execution mode of the processor.
type Mode uint8

const (
	// ModeNormal fetches and executes instructions.
	ModeNormal Mode = iota
	// ModeHalt idles until an interrupt is requested.
	ModeHalt
	// ModeStop idles until a joypad interrupt is requested.
	ModeStop
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeHalt:
		return "HALT"
	case ModeStop:
		return "STOP"
	}
	return "UNKNOWN"
}

// interruptDispatchCycles is the cost of transferring control to an
// interrupt vector.
const interruptDispatchCycles = 5

// CPU owns the register file and steps the core one instruction at a
// time against the attached memory and interrupt service.
type CPU struct {
	Registers *registers.Registers
	Memory    memory.Memory
	IRQ       *interrupts.Service

	// Cycles accumulates the machine cycles consumed since reset.
	Cycles uint64

	mode Mode
	log  log.Logger
}

// Opt configures a CPU on construction.
type Opt func(*CPU)

// WithLogger attaches a logger for instruction tracing.
func WithLogger(l log.Logger) Opt {
	return func(c *CPU) {
		c.log = l
	}
}

// WithRegisters starts the CPU from an existing register file.
func WithRegisters(r *registers.Registers) Opt {
	return func(c *CPU) {
		c.Registers = r
	}
}

// WithIRQ attaches an existing interrupt service.
func WithIRQ(irq *interrupts.Service) Opt {
	return func(c *CPU) {
		c.IRQ = irq
	}
}

// New returns a CPU attached to mem with zeroed registers.
func New(mem memory.Memory, opts ...Opt) *CPU {
	c := &CPU{
		Registers: registers.New(),
		Memory:    mem,
		IRQ:       interrupts.NewService(),
		log:       log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Mode returns the current execution mode.
func (c *CPU) Mode() Mode {
	return c.mode
}

// Step executes a single instruction, or services a pending interrupt,
// and returns the machine cycles consumed. A halted or stopped core
// idles at one cycle per step until woken.
func (c *CPU) Step() (uint8, error) {
	if c.IRQ.IME && c.IRQ.Pending() {
		return c.dispatchInterrupt(), nil
	}

	switch c.mode {
	case ModeHalt:
		// Pending requests wake the core even with IME cleared,
		// execution just resumes without a dispatch.
		if !c.IRQ.Pending() {
			c.Cycles++
			return 1, nil
		}
		c.mode = ModeNormal
	case ModeStop:
		if !bits.Test(c.IRQ.Flag, uint8(interrupts.Joypad)) {
			c.Cycles++
			return 1, nil
		}
		c.mode = ModeNormal
	}

	pc := c.Registers.PC
	instruction, err := instructions.Decode(c.Memory, pc)
	if err != nil {
		return 0, errors.Wrapf(err, "decode at $%04X", pc)
	}

	c.Registers.PC += instruction.Length()

	cycles, err := instruction.Execute(c.Registers, c.Memory, c.IRQ)
	if err != nil {
		return 0, errors.Wrapf(err, "execute %s at $%04X", instruction, pc)
	}

	switch instruction.(type) {
	case instructions.Halt:
		c.mode = ModeHalt
	case instructions.Stop:
		c.mode = ModeStop
	}

	c.Cycles += uint64(cycles)
	c.log.Debugf("$%04X %-12s %d cycles", pc, instruction, cycles)

	return cycles, nil
}

// dispatchInterrupt transfers control to the highest priority pending
// interrupt: the current PC is pushed, IME is cleared and execution
// continues at the vector. A halted or stopped core wakes first.
func (c *CPU) dispatchInterrupt() uint8 {
	interrupt, _ := c.IRQ.Acknowledge()
	c.mode = ModeNormal
	c.IRQ.IME = false

	r := c.Registers
	r.SP--
	c.Memory.Write(r.SP, bits.Hi(r.PC))
	r.SP--
	c.Memory.Write(r.SP, bits.Lo(r.PC))
	r.PC = interrupt.Vector()

	c.Cycles += interruptDispatchCycles
	c.log.Debugf("interrupt %s -> $%04X", interrupt, r.PC)

	return interruptDispatchCycles
}

// Run steps the CPU until the budget of machine cycles is spent or an
// error stops execution. It returns the cycles actually consumed.
func (c *CPU) Run(budget uint64) (uint64, error) {
	var spent uint64
	for spent < budget {
		cycles, err := c.Step()
		if err != nil {
			return spent, err
		}
		spent += uint64(cycles)
	}
	return spent, nil
}
