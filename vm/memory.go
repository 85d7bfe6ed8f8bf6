package vm

const MemorySize = 1 << 16

const (
	TrapVectorTableStart      = 0x0000
	InterruptVectorTableStart = 0x0100
	SystemSpaceStart          = 0x0200
	UserSpaceStart            = 0x3000
)

// memory is the full 16-bit address space. Any Word is a valid address, so
// there is nothing to bounds check.
type memory struct {
	ram [MemorySize]Word
}

func (mem *memory) write(addr, value Word) {
	mem.ram[addr] = value
}

func (mem *memory) read(addr Word) Word {
	return mem.ram[addr]
}

func newMemory() *memory {
	return &memory{}
}
