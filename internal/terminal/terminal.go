package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// ErrNoSize is returned when neither the window-size query nor the
// cursor-position fallback yields usable dimensions.
var ErrNoSize = errors.New("unable to determine window size")

// Terminal manages raw mode, the alternate screen buffer, and terminal
// dimensions.
type Terminal struct {
	in       *os.File
	out      *os.File
	oldState *term.State
	keys     *KeyReader
	sigwinch chan os.Signal
}

// New switches stdin to raw mode and enters the alternate screen.
func New() (*Terminal, error) {
	t := &Terminal{in: os.Stdin, out: os.Stdout}

	oldState, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t.oldState = oldState
	t.keys = NewKeyReader(t.in)

	t.out.WriteString(ansi.SetAltScreenSaveCursorMode)

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, unix.SIGWINCH)

	return t, nil
}

// Size returns the window dimensions as (rows, cols).
func (t *Terminal) Size() (int, int, error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err == nil && w > 0 && h > 0 {
		return h, w, nil
	}
	return t.sizeFromCursor()
}

// sizeFromCursor pushes the cursor to the bottom-right corner and asks the
// terminal where it ended up.
func (t *Terminal) sizeFromCursor() (int, int, error) {
	query := ansi.CursorForward(999) + ansi.CursorDown(999) + ansi.RequestCursorPosition
	if _, err := t.out.WriteString(query); err != nil {
		return 0, 0, fmt.Errorf("query cursor position: %w", err)
	}
	return readCursorReport(t.keys.r)
}

// readCursorReport consumes a "ESC [ rows ; cols R" reply.
func readCursorReport(r *bufio.Reader) (int, int, error) {
	var reply []byte
	for len(reply) < 32 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, 0, fmt.Errorf("read cursor report: %w", err)
		}
		if b == 'R' {
			break
		}
		reply = append(reply, b)
	}
	return parseCursorReport(reply)
}

func parseCursorReport(reply []byte) (int, int, error) {
	s := string(reply)
	if !strings.HasPrefix(s, "\x1b[") {
		return 0, 0, ErrNoSize
	}
	rowStr, colStr, ok := strings.Cut(s[2:], ";")
	if !ok {
		return 0, 0, ErrNoSize
	}
	rows, err := strconv.Atoi(rowStr)
	if err != nil || rows <= 0 {
		return 0, 0, ErrNoSize
	}
	cols, err := strconv.Atoi(colStr)
	if err != nil || cols <= 0 {
		return 0, 0, ErrNoSize
	}
	return rows, cols, nil
}

// Resized returns the channel that receives SIGWINCH signals.
func (t *Terminal) Resized() <-chan os.Signal {
	return t.sigwinch
}

// ReadKey reads a single key from stdin in raw mode.
func (t *Terminal) ReadKey() (Key, error) {
	return t.keys.ReadKey()
}

// Write sends a prepared frame to the terminal in one call.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.out.Write(p)
}

// Restore returns the terminal to its original state.
func (t *Terminal) Restore() {
	io.WriteString(t.out, ansi.ShowCursor+ansi.ResetAltScreenSaveCursorMode)
	if t.oldState != nil {
		term.Restore(int(t.in.Fd()), t.oldState)
	}
	signal.Stop(t.sigwinch)
}
