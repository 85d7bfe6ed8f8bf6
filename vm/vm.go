// Package vm emulates the LC-3 (Little Computer 3) teaching machine: a 16-bit
// address space, eight general purpose registers, n/z/p condition codes and
// six console trap routines.
//
// A VM is single threaded and owns its memory and registers; independent
// instances share nothing.
package vm

import (
	"github.com/sirupsen/logrus"
)

// Config tunes a VM. The zero value gives the standard machine.
type Config struct {
	// PC is the start address. Zero means UserSpaceStart.
	PC Word
	// Prompt is printed by the IN trap. Empty means DefaultPrompt.
	Prompt string
	// Log receives trace and diagnostic output. Nil means the standard
	// logrus logger.
	Log *logrus.Logger
}

type VM struct {
	memory *memory
	cpu    *cpu
	log    *logrus.Entry
}

// New builds a machine with zeroed memory and registers, ready to run from
// the configured start address.
func New(cfg Config, console *Console) *VM {
	logger := cfg.Log
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	if console == nil {
		console = NewConsole(nil, nil)
	}
	log := logger.WithField("component", "vm")

	mem := newMemory()
	cpu := newCpu(mem, console, log)
	if cfg.PC != 0 {
		cpu.pc = cfg.PC
	}
	if cfg.Prompt != "" {
		cpu.prompt = cfg.Prompt
	}
	cpu.running = true

	return &VM{
		memory: mem,
		cpu:    cpu,
		log:    log,
	}
}

// Step executes a single instruction.
func (vm *VM) Step() error {
	if !vm.cpu.running {
		return ErrHalted
	}
	return vm.cpu.step()
}

// Run executes instructions until a HALT trap or a console error. A program
// that never halts runs forever.
func (vm *VM) Run() error {
	for vm.cpu.running {
		if err := vm.cpu.step(); err != nil {
			vm.log.WithError(err).WithField("regs", vm.cpu.String()).Error("execution stopped")
			return err
		}
	}
	return nil
}

func (vm *VM) Running() bool {
	return vm.cpu.running
}

func (vm *VM) Reg(r Register) Word {
	return vm.cpu.reg(r)
}

func (vm *VM) SetReg(r Register, v Word) {
	vm.cpu.setReg(r, v)
}

// UpdateFlags recomputes the condition codes from register r.
func (vm *VM) UpdateFlags(r Register) {
	vm.cpu.updateFlags(r)
}

func (vm *VM) PC() Word {
	return vm.cpu.pc
}

func (vm *VM) SetPC(pc Word) {
	vm.cpu.pc = pc
}

func (vm *VM) Cond() Flag {
	return vm.cpu.cond
}

func (vm *VM) Read(addr Word) Word {
	return vm.memory.read(addr)
}

func (vm *VM) Write(addr, value Word) {
	vm.memory.write(addr, value)
}

// Registers renders the register file for diagnostics.
func (vm *VM) Registers() string {
	return vm.cpu.String()
}
