package vm

import (
	"fmt"
	"strings"
)

// Disassemble renders a single instruction in LC-3 assembly syntax. PC
// relative offsets are shown as signed immediates.
func Disassemble(instr Word) string {
	op, instr := decode(instr)

	switch op {
	case OpADD, OpAND:
		if immFlag(instr) {
			return fmt.Sprintf("%v %v, %v, #%d", op, dr(instr), sr1(instr), int16(imm5(instr)))
		}
		return fmt.Sprintf("%v %v, %v, %v", op, dr(instr), sr1(instr), sr2(instr))
	case OpNOT:
		return fmt.Sprintf("NOT %v, %v", dr(instr), sr1(instr))
	case OpBR:
		cc := nzp(instr)
		if cc == 0 {
			return "NOP"
		}
		var sb strings.Builder
		sb.WriteString("BR")
		for _, flag := range []Flag{FlagNeg, FlagZro, FlagPos} {
			if cc&flag != 0 {
				sb.WriteString(flag.String())
			}
		}
		return fmt.Sprintf("%s #%d", sb.String(), int16(pcOffset9(instr)))
	case OpJMP:
		if baseR(instr) == R7 {
			return "RET"
		}
		return fmt.Sprintf("JMP %v", baseR(instr))
	case OpJSR:
		if (instr>>11)&0b1 == 1 {
			return fmt.Sprintf("JSR #%d", int16(pcOffset11(instr)))
		}
		return fmt.Sprintf("JSRR %v", baseR(instr))
	case OpLD, OpLDI, OpLEA, OpST, OpSTI:
		return fmt.Sprintf("%v %v, #%d", op, dr(instr), int16(pcOffset9(instr)))
	case OpLDR, OpSTR:
		return fmt.Sprintf("%v %v, %v, #%d", op, dr(instr), baseR(instr), int16(offset6(instr)))
	case OpTRAP:
		vector := trapVect8(instr)
		if _, ok := trapNames[vector]; ok {
			return vector.String()
		}
		return fmt.Sprintf("TRAP x%02X", uint8(vector))
	case OpRTI, OpRES:
		return op.String()
	}
	return fmt.Sprintf(".FILL %v", instr)
}
