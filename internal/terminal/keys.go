package terminal

import (
	"bufio"
	"io"
)

// KeyType identifies a logical key.
type KeyType int

// Key types.
const (
	KeyByte      KeyType = iota // Printable byte, tab, or a byte >= 0x80
	KeyCtrl                     // Control combination; Byte holds the letter
	KeyEscape                   // Escape key, or an escape sequence we don't understand
	KeyEnter                    // Enter/Return
	KeyBackspace                // Backspace/Delete-backward and Ctrl+H
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyDelete                   // Delete/Forward-delete
	KeyPgUp                     // Page Up
	KeyPgDn                     // Page Down
	KeyUnknown                  // Control byte with no meaning
)

const esc = 0x1b

// maxSequence bounds how many bytes of an escape sequence are consumed.
const maxSequence = 8

// Key is one logical key event.
type Key struct {
	Type KeyType
	Byte byte
}

// Char returns the key event for a literal byte.
func Char(b byte) Key { return Key{Type: KeyByte, Byte: b} }

// Ctrl returns the key event for Ctrl plus the given lowercase letter.
func Ctrl(letter byte) Key { return Key{Type: KeyCtrl, Byte: letter} }

// IsPrintable reports whether the key is a printable ASCII byte.
func (k Key) IsPrintable() bool {
	return k.Type == KeyByte && k.Byte >= 32 && k.Byte < 127
}

// IsCtrl reports whether the key is Ctrl plus letter.
func (k Key) IsCtrl(letter byte) bool {
	return k.Type == KeyCtrl && k.Byte == letter
}

// KeyReader decodes logical keys from a raw byte stream.
//
// Escape sequences are only decoded from bytes that arrived together with
// the ESC byte, so a lone Escape press never waits for more input.
type KeyReader struct {
	r *bufio.Reader
}

func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadKey blocks until one key is available.
func (kr *KeyReader) ReadKey() (Key, error) {
	b, err := kr.r.ReadByte()
	if err != nil {
		return Key{}, err
	}
	if b != esc {
		return parseByte(b), nil
	}

	seq := []byte{esc}
	for kr.r.Buffered() > 0 && len(seq) < maxSequence {
		c, err := kr.r.ReadByte()
		if err != nil {
			break
		}
		seq = append(seq, c)
		if sequenceDone(seq) {
			break
		}
	}
	return parseKey(seq), nil
}

// sequenceDone reports whether seq holds a complete (or hopeless) sequence.
func sequenceDone(seq []byte) bool {
	switch {
	case len(seq) < 2:
		return false
	case seq[1] != '[' && seq[1] != 'O':
		// Not a sequence introducer; the byte is swallowed.
		return true
	case len(seq) < 3:
		return false
	case seq[1] == 'O':
		return true
	}
	last := seq[len(seq)-1]
	return last >= 0x40 && last <= 0x7e
}

func parseByte(b byte) Key {
	switch {
	case b == 13:
		return Key{Type: KeyEnter}
	case b == 127 || b == 8:
		return Key{Type: KeyBackspace}
	case b == '\t':
		return Char(b)
	case b >= 1 && b <= 26:
		return Ctrl('a' + b - 1)
	case b < 32:
		return Key{Type: KeyUnknown}
	default:
		return Char(b)
	}
}

// parseKey decodes a complete input sequence. Anything that starts with
// ESC but isn't a recognised sequence degrades to a bare Escape.
func parseKey(buf []byte) Key {
	if len(buf) == 0 {
		return Key{Type: KeyUnknown}
	}
	if buf[0] != esc {
		return parseByte(buf[0])
	}
	if len(buf) < 3 {
		return Key{Type: KeyEscape}
	}

	switch buf[1] {
	case '[':
		// CSI 3-byte sequences.
		if len(buf) == 3 {
			switch buf[2] {
			case 'A':
				return Key{Type: KeyUp}
			case 'B':
				return Key{Type: KeyDown}
			case 'C':
				return Key{Type: KeyRight}
			case 'D':
				return Key{Type: KeyLeft}
			case 'H':
				return Key{Type: KeyHome}
			case 'F':
				return Key{Type: KeyEnd}
			}
			return Key{Type: KeyEscape}
		}

		// CSI 4-byte sequences: ESC [ <n> ~
		if len(buf) == 4 && buf[3] == '~' {
			switch buf[2] {
			case '1', '7':
				return Key{Type: KeyHome}
			case '3':
				return Key{Type: KeyDelete}
			case '4', '8':
				return Key{Type: KeyEnd}
			case '5':
				return Key{Type: KeyPgUp}
			case '6':
				return Key{Type: KeyPgDn}
			}
		}
	case 'O':
		switch buf[2] {
		case 'A':
			return Key{Type: KeyUp}
		case 'B':
			return Key{Type: KeyDown}
		case 'C':
			return Key{Type: KeyRight}
		case 'D':
			return Key{Type: KeyLeft}
		case 'H':
			return Key{Type: KeyHome}
		case 'F':
			return Key{Type: KeyEnd}
		}
	}
	return Key{Type: KeyEscape}
}
