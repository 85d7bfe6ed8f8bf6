package vm

import "fmt"

// Word is the LC-3 machine word. All arithmetic on it wraps modulo 1<<16.
type Word uint16

func (w Word) String() string {
	return fmt.Sprintf("x%04X", uint16(w))
}

// sext treats the low bitCount bits of x as a two's-complement number and
// extends its sign to all 16 bits.
func sext(x Word, bitCount uint) Word {
	if bitCount >= 16 {
		return x
	}
	x &= 1<<bitCount - 1
	if (x>>(bitCount-1))&0b1 != 0 {
		x |= 0xFFFF << bitCount
	}
	return x
}

// swap16 reverses the two bytes of w. swap16(swap16(w)) == w.
func swap16(w Word) Word {
	return w<<8 | w>>8
}
