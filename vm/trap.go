package vm

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// TrapVector selects a built-in console routine.
type TrapVector uint8

const (
	TrapGETC  TrapVector = 0x20 /* get character from keyboard, not echoed onto the terminal */
	TrapOUT   TrapVector = 0x21 /* output a character */
	TrapPUTS  TrapVector = 0x22 /* output a word string */
	TrapIN    TrapVector = 0x23 /* get character from keyboard, echoed onto the terminal */
	TrapPUTSP TrapVector = 0x24 /* output a byte string */
	TrapHALT  TrapVector = 0x25 /* halt the program */
)

// DefaultPrompt is printed by the IN trap before it reads.
const DefaultPrompt = "Enter a character: "

var trapNames = map[TrapVector]string{
	TrapGETC:  "GETC",
	TrapOUT:   "OUT",
	TrapPUTS:  "PUTS",
	TrapIN:    "IN",
	TrapPUTSP: "PUTSP",
	TrapHALT:  "HALT",
}

func (t TrapVector) String() string {
	if name, ok := trapNames[t]; ok {
		return name
	}
	return fmt.Sprintf("x%02X", uint8(t))
}

// trap runs the routine for vector inline. Nothing jumps through the trap
// vector table in memory.
func (cpu *cpu) trap(vector TrapVector) error {
	switch vector {
	case TrapGETC:
		return cpu.trapGetc()
	case TrapOUT:
		return cpu.trapOut()
	case TrapPUTS:
		return cpu.trapPuts()
	case TrapIN:
		return cpu.trapIn()
	case TrapPUTSP:
		return cpu.trapPutsp()
	case TrapHALT:
		return cpu.trapHalt()
	}

	cpu.log.WithFields(logrus.Fields{
		"pc":     cpu.pc - 1,
		"vector": fmt.Sprintf("x%02X", uint8(vector)),
	}).Warn(f("unrecognized trap vector ignored"))
	return nil
}

func (cpu *cpu) trapGetc() error {
	c, err := cpu.io.ReadByte()
	if err != nil {
		return fmt.Errorf("%v: %w", TrapGETC, err)
	}
	cpu.gpr[R0] = Word(c)
	cpu.updateFlags(R0)
	return nil
}

func (cpu *cpu) trapOut() error {
	if err := cpu.io.WriteByte(byte(cpu.gpr[R0])); err != nil {
		return fmt.Errorf("%v: %w", TrapOUT, err)
	}
	return cpu.flush(TrapOUT)
}

func (cpu *cpu) trapPuts() error {
	for addr := cpu.gpr[R0]; ; addr++ {
		c := cpu.memory.read(addr)
		if c == 0 {
			break
		}
		if err := cpu.io.WriteByte(byte(c)); err != nil {
			return fmt.Errorf("%v: %w", TrapPUTS, err)
		}
	}
	return cpu.flush(TrapPUTS)
}

func (cpu *cpu) trapIn() error {
	if _, err := cpu.io.WriteString(cpu.prompt); err != nil {
		return fmt.Errorf("%v: %w", TrapIN, err)
	}
	if err := cpu.flush(TrapIN); err != nil {
		return err
	}

	c, err := cpu.io.ReadByte()
	if err != nil {
		return fmt.Errorf("%v: %w", TrapIN, err)
	}
	if err := cpu.io.WriteByte(c); err != nil {
		return fmt.Errorf("%v: %w", TrapIN, err)
	}
	cpu.gpr[R0] = Word(c)
	cpu.updateFlags(R0)
	return cpu.flush(TrapIN)
}

// trapPutsp writes two characters per word, low byte first. A zero high
// byte ends an odd-length string.
func (cpu *cpu) trapPutsp() error {
	for addr := cpu.gpr[R0]; ; addr++ {
		w := cpu.memory.read(addr)
		if w == 0 {
			break
		}
		if err := cpu.io.WriteByte(byte(w)); err != nil {
			return fmt.Errorf("%v: %w", TrapPUTSP, err)
		}
		if hi := byte(w >> 8); hi != 0 {
			if err := cpu.io.WriteByte(hi); err != nil {
				return fmt.Errorf("%v: %w", TrapPUTSP, err)
			}
		}
	}
	return cpu.flush(TrapPUTSP)
}

func (cpu *cpu) trapHalt() error {
	cpu.running = false
	if _, err := cpu.io.WriteString("HALT\n"); err != nil {
		return fmt.Errorf("%v: %w", TrapHALT, err)
	}
	return cpu.flush(TrapHALT)
}

func (cpu *cpu) flush(vector TrapVector) error {
	if err := cpu.io.Flush(); err != nil {
		return fmt.Errorf("%v: %w", vector, err)
	}
	return nil
}
