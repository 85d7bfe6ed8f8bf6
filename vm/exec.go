package vm

import (
	"github.com/sirupsen/logrus"
)

// step runs one fetch/decode/execute cycle.
func (cpu *cpu) step() error {
	addr := cpu.pc
	instr := cpu.memory.read(addr)
	cpu.pc++
	op, instr := decode(instr)

	if cpu.log.Logger.IsLevelEnabled(logrus.DebugLevel) {
		cpu.log.WithFields(logrus.Fields{
			"pc":    addr,
			"instr": instr,
			"op":    op,
		}).Debug(Disassemble(instr))
	}

	return cpu.execute(op, instr)
}

func (cpu *cpu) execute(op Opcode, instr Word) error {
	switch op {
	case OpADD:
		cpu.add(instr)
	case OpAND:
		cpu.and(instr)
	case OpNOT:
		cpu.not(instr)
	case OpBR:
		cpu.br(instr)
	case OpJMP:
		cpu.jmp(instr)
	case OpJSR:
		cpu.jsr(instr)
	case OpLD:
		cpu.ld(instr)
	case OpLDI:
		cpu.ldi(instr)
	case OpLDR:
		cpu.ldr(instr)
	case OpLEA:
		cpu.lea(instr)
	case OpST:
		cpu.st(instr)
	case OpSTI:
		cpu.sti(instr)
	case OpSTR:
		cpu.str(instr)
	case OpTRAP:
		return cpu.trap(trapVect8(instr))
	case OpRTI, OpRES:
		// reserved, no-op
	default:
		panic("vm: opcode out of range: " + op.String())
	}
	return nil
}

func (cpu *cpu) add(instr Word) {
	d := dr(instr)
	if immFlag(instr) {
		cpu.gpr[d] = cpu.gpr[sr1(instr)] + imm5(instr)
	} else {
		cpu.gpr[d] = cpu.gpr[sr1(instr)] + cpu.gpr[sr2(instr)]
	}
	cpu.updateFlags(d)
}

func (cpu *cpu) and(instr Word) {
	d := dr(instr)
	if immFlag(instr) {
		cpu.gpr[d] = cpu.gpr[sr1(instr)] & imm5(instr)
	} else {
		cpu.gpr[d] = cpu.gpr[sr1(instr)] & cpu.gpr[sr2(instr)]
	}
	cpu.updateFlags(d)
}

func (cpu *cpu) not(instr Word) {
	d := dr(instr)
	cpu.gpr[d] = ^cpu.gpr[sr1(instr)]
	cpu.updateFlags(d)
}

func (cpu *cpu) br(instr Word) {
	if nzp(instr)&cpu.cond != 0 {
		cpu.pc += pcOffset9(instr)
	}
}

// jmp also covers RET (base register R7).
func (cpu *cpu) jmp(instr Word) {
	cpu.pc = cpu.gpr[baseR(instr)]
}

func (cpu *cpu) jsr(instr Word) {
	// Read the base register first: JSRR R7 jumps to the old R7.
	target := cpu.gpr[baseR(instr)]
	cpu.gpr[R7] = cpu.pc
	if (instr>>11)&0b1 == 1 {
		cpu.pc += pcOffset11(instr)
	} else {
		cpu.pc = target
	}
}

func (cpu *cpu) ld(instr Word) {
	d := dr(instr)
	cpu.gpr[d] = cpu.memory.read(cpu.pc + pcOffset9(instr))
	cpu.updateFlags(d)
}

func (cpu *cpu) ldi(instr Word) {
	d := dr(instr)
	cpu.gpr[d] = cpu.memory.read(cpu.memory.read(cpu.pc + pcOffset9(instr)))
	cpu.updateFlags(d)
}

func (cpu *cpu) ldr(instr Word) {
	d := dr(instr)
	cpu.gpr[d] = cpu.memory.read(cpu.gpr[baseR(instr)] + offset6(instr))
	cpu.updateFlags(d)
}

func (cpu *cpu) lea(instr Word) {
	d := dr(instr)
	cpu.gpr[d] = cpu.pc + pcOffset9(instr)
	cpu.updateFlags(d)
}

func (cpu *cpu) st(instr Word) {
	cpu.memory.write(cpu.pc+pcOffset9(instr), cpu.gpr[dr(instr)])
}

func (cpu *cpu) sti(instr Word) {
	cpu.memory.write(cpu.memory.read(cpu.pc+pcOffset9(instr)), cpu.gpr[dr(instr)])
}

func (cpu *cpu) str(instr Word) {
	cpu.memory.write(cpu.gpr[baseR(instr)]+offset6(instr), cpu.gpr[dr(instr)])
}
