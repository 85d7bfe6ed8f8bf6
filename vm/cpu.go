package vm

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Register indexes a general purpose register.
type Register uint8

// general purpose registers
const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7 // return address
)

func (r Register) String() string {
	if r > R7 {
		return "R?"
	}
	return fmt.Sprintf("R%d", uint8(r))
}

// Flag is the condition register. Exactly one bit is set once any flag
// affecting instruction has run.
type Flag Word

// flags
const (
	FlagPos Flag = 1 << iota
	FlagZro
	FlagNeg
)

func (f Flag) String() string {
	switch f {
	case FlagPos:
		return "p"
	case FlagZro:
		return "z"
	case FlagNeg:
		return "n"
	}
	return "-"
}

// flagFor classifies a value by its sign.
func flagFor(v Word) Flag {
	switch {
	case v == 0:
		return FlagZro
	case v>>15 != 0:
		return FlagNeg
	default:
		return FlagPos
	}
}

type cpu struct {
	running bool
	pc      Word
	cond    Flag
	gpr     [8]Word
	memory  *memory
	io      *Console
	log     *logrus.Entry
	prompt  string
}

func newCpu(mem *memory, io *Console, log *logrus.Entry) *cpu {
	return &cpu{
		memory: mem,
		io:     io,
		log:    log,
		pc:     UserSpaceStart,
		prompt: DefaultPrompt,
	}
}

func (cpu *cpu) updateFlags(r Register) {
	cpu.cond = flagFor(cpu.gpr[r])
}

func (cpu *cpu) setReg(r Register, v Word) {
	cpu.gpr[r] = v
}

func (cpu *cpu) reg(r Register) Word {
	return cpu.gpr[r]
}

func (cpu *cpu) String() string {
	var sb strings.Builder
	for r := R0; r <= R7; r++ {
		fmt.Fprintf(&sb, "%v=x%04X ", r, uint16(cpu.gpr[r]))
	}
	fmt.Fprintf(&sb, "PC=x%04X COND=%v", uint16(cpu.pc), cpu.cond)
	return sb.String()
}
