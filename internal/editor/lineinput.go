package editor

// LineInput accumulates typed bytes for the command line and prompts.
// A capacity of zero means unbounded; otherwise at most capacity-1 bytes
// are held.
type LineInput struct {
	buf      []byte
	capacity int
}

func NewLineInput(capacity int) *LineInput {
	return &LineInput{capacity: capacity}
}

// Append adds c and reports whether there was room for it.
func (l *LineInput) Append(c byte) bool {
	if l.capacity > 0 && len(l.buf) >= l.capacity-1 {
		return false
	}
	l.buf = append(l.buf, c)
	return true
}

// Backspace drops the last byte, if any.
func (l *LineInput) Backspace() {
	if len(l.buf) > 0 {
		l.buf = l.buf[:len(l.buf)-1]
	}
}

func (l *LineInput) Reset()         { l.buf = l.buf[:0] }
func (l *LineInput) Len() int       { return len(l.buf) }
func (l *LineInput) String() string { return string(l.buf) }
