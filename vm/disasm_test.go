package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		instr Word
		want  string
	}{
		{0x1025, "ADD R0, R0, #5"},
		{0x1042, "ADD R0, R1, R2"},
		{0x127F, "ADD R1, R1, #-1"},
		{0x5260, "AND R1, R1, #0"},
		{0x9E7F, "NOT R7, R1"},
		{0x0402, "BRz #2"},
		{0x0FFF, "BRnzp #-1"},
		{0x0000, "NOP"},
		{0xC0C0, "JMP R3"},
		{0xC1C0, "RET"},
		{0x4802, "JSR #2"},
		{0x4080, "JSRR R2"},
		{0x2002, "LD R0, #2"},
		{0xA002, "LDI R0, #2"},
		{0xE7FF, "LEA R3, #-1"},
		{0x3805, "ST R4, #5"},
		{0xB805, "STI R4, #5"},
		{0x6A83, "LDR R5, R2, #3"},
		{0x78BE, "STR R4, R2, #-2"},
		{0xF025, "HALT"},
		{0xF022, "PUTS"},
		{0xF0FF, "TRAP xFF"},
		{0x8000, "RTI"},
		{0xD000, "RES"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Disassemble(tc.instr), "instr %v", tc.instr)
	}
}
