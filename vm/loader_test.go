package vm

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)
	vm, _, _ := newTestVM(t, "")

	require.NoError(t, vm.LoadImage(bytes.NewReader([]byte{0x30, 0x00, 0x12, 0x34, 0xAB, 0xCD})))
	assert.Equal(Word(0x1234), vm.Read(0x3000))
	assert.Equal(Word(0xABCD), vm.Read(0x3001))
	assert.Equal(Word(0), vm.Read(0x3002))
	assert.Equal(Word(UserSpaceStart), vm.PC())
}

func TestLoadImageOriginOnly(t *testing.T) {
	vm, _, _ := newTestVM(t, "")
	require.NoError(t, vm.LoadImage(bytes.NewReader(image(0x4000))))
	assert.Equal(t, Word(0), vm.Read(0x4000))
}

func TestLoadImageShort(t *testing.T) {
	for _, data := range [][]byte{{}, {0x30}} {
		vm, _, _ := newTestVM(t, "")
		assert.ErrorIs(t, vm.LoadImage(bytes.NewReader(data)), ErrImageShort)
	}
}

func TestLoadImageOddTrailingByte(t *testing.T) {
	assert := assert.New(t)
	vm, _, _ := newTestVM(t, "")

	require.NoError(t, vm.LoadImage(bytes.NewReader([]byte{0x30, 0x00, 0x12, 0x34, 0x56})))
	assert.Equal(Word(0x1234), vm.Read(0x3000))
	assert.Equal(Word(0), vm.Read(0x3001))
}

func TestLoadImageTruncates(t *testing.T) {
	assert := assert.New(t)
	vm, _, _ := newTestVM(t, "")

	require.NoError(t, vm.LoadImage(bytes.NewReader(image(0xFFFE, 1, 2, 3, 4))))
	assert.Equal(Word(1), vm.Read(0xFFFE))
	assert.Equal(Word(2), vm.Read(0xFFFF))
	assert.Equal(Word(0), vm.Read(0x0000))
	assert.Equal(Word(0), vm.Read(0x0001))
}

func TestLoadImageFillsWholeSpace(t *testing.T) {
	mem := newMemory()
	words := make([]Word, MemorySize+10)
	for i := range words {
		words[i] = Word(i) | 1
	}

	origin, n, err := mem.loadImage(bytes.NewReader(image(0, words...)))
	require.NoError(t, err)
	assert.Equal(t, Word(0), origin)
	assert.Equal(t, MemorySize, n)
	assert.Equal(t, Word(0xFFFF), mem.read(0xFFFF))
}

func TestLoadImageOverlap(t *testing.T) {
	assert := assert.New(t)
	vm, _, _ := newTestVM(t, "")

	require.NoError(t, vm.LoadImage(bytes.NewReader(image(0x3000, 1, 2, 3))))
	require.NoError(t, vm.LoadImage(bytes.NewReader(image(0x3001, 9))))
	assert.Equal(Word(1), vm.Read(0x3000))
	assert.Equal(Word(9), vm.Read(0x3001))
	assert.Equal(Word(3), vm.Read(0x3002))
}

func TestLoadImageFile(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.obj")
	require.NoError(t, os.WriteFile(path, image(0x3000, 0x1025), 0o644))

	vm, _, _ := newTestVM(t, "")
	require.NoError(t, vm.LoadImageFile(path))
	assert.Equal(Word(0x1025), vm.Read(0x3000))

	missing := filepath.Join(dir, "missing.obj")
	err := vm.LoadImageFile(missing)
	require.Error(t, err)
	assert.ErrorIs(err, os.ErrNotExist)

	var imageErr *ErrImage
	require.True(t, errors.As(err, &imageErr))
	assert.Equal(missing, imageErr.Path)
	assert.Contains(err.Error(), missing)
	assert.Equal(Word(0x1025), vm.Read(0x3000))
}
