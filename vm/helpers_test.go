package vm

import (
	"bytes"
	goIO "io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// newTestVM returns a machine reading input and writing to the returned
// buffer, with log output captured by the returned hook.
func newTestVM(t *testing.T, input string) (*VM, *bytes.Buffer, *test.Hook) {
	t.Helper()

	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	logger.SetOutput(goIO.Discard)

	out := &bytes.Buffer{}
	vm := New(Config{Log: logger}, NewConsole(strings.NewReader(input), out))
	return vm, out, hook
}

// program writes words at UserSpaceStart.
func program(vm *VM, words ...Word) {
	for i, w := range words {
		vm.Write(UserSpaceStart+Word(i), w)
	}
}

// image encodes origin and words as a big-endian image stream.
func image(origin Word, words ...Word) []byte {
	buf := []byte{byte(origin >> 8), byte(origin)}
	for _, w := range words {
		buf = append(buf, byte(w>>8), byte(w))
	}
	return buf
}
