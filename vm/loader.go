package vm

import (
	"bufio"
	"encoding/binary"
	"errors"
	goIO "io"
	"os"
)

// readWord reads one image word. Image files are big-endian; the bytes are
// taken in host (little-endian) order and swapped into working order.
func readWord(r goIO.Reader) (Word, error) {
	var buf [2]byte
	if _, err := goIO.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return swap16(Word(binary.LittleEndian.Uint16(buf[:]))), nil
}

// loadImage reads the origin word and then fills memory from the origin
// upward until the stream ends or the top of the address space is reached.
// Words past the end of memory are silently dropped, as is a trailing odd
// byte.
func (mem *memory) loadImage(r goIO.Reader) (origin Word, n int, err error) {
	origin, err = readWord(r)
	if err != nil {
		if errors.Is(err, goIO.EOF) || errors.Is(err, goIO.ErrUnexpectedEOF) {
			return 0, 0, ErrImageShort
		}
		return 0, 0, err
	}

	room := MemorySize - int(origin)
	for n < room {
		w, err := readWord(r)
		if errors.Is(err, goIO.EOF) || errors.Is(err, goIO.ErrUnexpectedEOF) {
			break
		}
		if err != nil {
			return origin, n, err
		}
		mem.write(origin+Word(n), w)
		n++
	}
	return origin, n, nil
}

// LoadImage loads one image from r.
func (vm *VM) LoadImage(r goIO.Reader) error {
	origin, n, err := vm.memory.loadImage(r)
	if err != nil {
		return err
	}
	vm.log.WithField("origin", origin).WithField("words", n).Debug("image loaded")
	return nil
}

// LoadImageFile opens path and loads it. Memory is untouched when the file
// cannot be opened.
func (vm *VM) LoadImageFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return &ErrImage{Path: path, Err: err}
	}
	defer file.Close()

	if err := vm.LoadImage(bufio.NewReader(file)); err != nil {
		return &ErrImage{Path: path, Err: err}
	}
	return nil
}
