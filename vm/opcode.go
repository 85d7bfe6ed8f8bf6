package vm

// Opcode is the operation selector in bits [15:12] of an instruction. The
// set is closed: decode can only produce the sixteen values below.
type Opcode uint8

// opcodes
const (
	OpBR Opcode = iota
	OpADD
	OpLD
	OpST
	OpJSR
	OpAND
	OpLDR
	OpSTR
	OpRTI
	OpNOT
	OpLDI
	OpSTI
	OpJMP
	OpRES
	OpLEA
	OpTRAP
)

var opNames = [...]string{
	OpBR:   "BR",
	OpADD:  "ADD",
	OpLD:   "LD",
	OpST:   "ST",
	OpJSR:  "JSR",
	OpAND:  "AND",
	OpLDR:  "LDR",
	OpSTR:  "STR",
	OpRTI:  "RTI",
	OpNOT:  "NOT",
	OpLDI:  "LDI",
	OpSTI:  "STI",
	OpJMP:  "JMP",
	OpRES:  "RES",
	OpLEA:  "LEA",
	OpTRAP: "TRAP",
}

func (op Opcode) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "???"
}

// decode extracts the opcode. Operand fields are left in the raw word since
// their layout differs per opcode.
func decode(instr Word) (Opcode, Word) {
	return Opcode(instr >> 12), instr
}

// operand field helpers

func dr(instr Word) Register { return Register((instr >> 9) & 0b111) }
func sr1(instr Word) Register { return Register((instr >> 6) & 0b111) }
func sr2(instr Word) Register { return Register(instr & 0b111) }
func immFlag(instr Word) bool { return (instr>>5)&0b1 == 1 }
func imm5(instr Word) Word { return sext(instr&0x1F, 5) }
func offset6(instr Word) Word { return sext(instr&0x3F, 6) }
func pcOffset9(instr Word) Word { return sext(instr&0x1FF, 9) }
func pcOffset11(instr Word) Word { return sext(instr&0x7FF, 11) }
func baseR(instr Word) Register { return sr1(instr) }
func nzp(instr Word) Flag { return Flag((instr >> 9) & 0b111) }
func trapVect8(instr Word) TrapVector {
	return TrapVector(instr & 0xFF)
}
