package vm

import (
	"bufio"
	goIO "io"
)

// Console is the character device behind the trap routines. Reads block
// until a byte is available; writes are buffered until Flush.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// NewConsole wraps in and out. Either may be nil, in which case reads
// report io.EOF and writes are discarded.
func NewConsole(in goIO.Reader, out goIO.Writer) *Console {
	if in == nil {
		in = eofReader{}
	}
	if out == nil {
		out = goIO.Discard
	}
	return &Console{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

func (c *Console) ReadByte() (byte, error) {
	return c.in.ReadByte()
}

func (c *Console) WriteByte(b byte) error {
	return c.out.WriteByte(b)
}

func (c *Console) WriteString(s string) (int, error) {
	return c.out.WriteString(s)
}

func (c *Console) Flush() error {
	return c.out.Flush()
}

type eofReader struct{}

func (eofReader) Read([]byte) (int, error) { return 0, goIO.EOF }
