package vm

import (
	"os"

	"github.com/pkg/term/termios"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal switches an interactive stdin between canonical and raw
// (no line buffering, no echo) input.
type Terminal struct {
	file     *os.File
	original unix.Termios
	raw      bool
	log      *logrus.Entry
}

func NewTerminal(file *os.File, log *logrus.Entry) *Terminal {
	return &Terminal{file: file, log: log}
}

// EnableRawMode clears ICANON and ECHO. It does nothing when the file is not
// a terminal, so redirected input keeps working.
func (t *Terminal) EnableRawMode() error {
	if !term.IsTerminal(int(t.file.Fd())) {
		t.log.Debug("stdin is not a terminal, raw mode skipped")
		return nil
	}

	t.log.Debug("enabling raw mode...")
	if err := termios.Tcgetattr(t.file.Fd(), &t.original); err != nil {
		return err
	}
	raw := t.original
	raw.Lflag &^= unix.ICANON | unix.ECHO
	if err := termios.Tcsetattr(t.file.Fd(), termios.TCSANOW, &raw); err != nil {
		return err
	}
	t.raw = true
	return nil
}

// DisableRawMode restores the settings saved by EnableRawMode. It is safe to
// call more than once.
func (t *Terminal) DisableRawMode() error {
	if !t.raw {
		return nil
	}
	t.log.Debug("disabling raw mode...")
	t.raw = false
	return termios.Tcsetattr(t.file.Fd(), termios.TCSANOW, &t.original)
}
