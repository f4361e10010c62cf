package editor

import (
	"fmt"
	"time"

	"github.com/charmbracelet/x/ansi"
)

// maxMessageLen caps the message line text in bytes.
const maxMessageLen = 80

// DefaultMessageTimeout is how long a message stays on screen.
const DefaultMessageTimeout = 5 * time.Second

// PromptType indicates what kind of prompt is active.
type PromptType int

const (
	PromptNone   PromptType = iota
	PromptSaveAs            // "Save as: " for an unnamed document
	PromptSearch            // "/" incremental search
)

// StatusBar generates status bar text and holds the transient message.
type StatusBar struct {
	Prompt PromptType

	message     string
	messageTime time.Time
	timeout     time.Duration
	now         func() time.Time
}

func NewStatusBar(timeout time.Duration) *StatusBar {
	if timeout <= 0 {
		timeout = DefaultMessageTimeout
	}
	return &StatusBar{timeout: timeout, now: time.Now}
}

// SetMessage formats and timestamps a message for the message line.
func (s *StatusBar) SetMessage(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if len(msg) > maxMessageLen {
		msg = msg[:maxMessageLen]
	}
	s.message = msg
	s.messageTime = s.now()
}

// ClearMessage empties the message line.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// Message returns the current message, or "" once it has expired.
func (s *StatusBar) Message() string {
	if s.message == "" || s.now().Sub(s.messageTime) >= s.timeout {
		return ""
	}
	return s.message
}

// MessageLine returns what the bottom line shows: the active prompt, the
// command being typed, or the timed message.
func (s *StatusBar) MessageLine(mode Mode, command, promptText string) string {
	switch s.Prompt {
	case PromptSaveAs:
		return "Save as: " + promptText
	case PromptSearch:
		return "Search: " + promptText
	}
	if mode == ModeCommand {
		return ":" + command
	}
	return s.Message()
}

// FormatLeft returns the left-aligned portion of the status bar.
func (s *StatusBar) FormatLeft(mode Mode, filename string, numRows int, dirty bool) string {
	name := "[No Name]"
	if filename != "" {
		name = ansi.Truncate(filename, 20, "")
	}
	modified := ""
	if dirty {
		modified = "(modified)"
	}
	return fmt.Sprintf(" %s | %s - %d lines %s", mode, name, numRows, modified)
}

// FormatRight returns the right-aligned portion of the status bar.
func (s *StatusBar) FormatRight(filetype string, row, numRows int) string {
	if filetype == "" {
		filetype = "no filetype"
	}
	return fmt.Sprintf("%s | %d/%d", filetype, row, numRows)
}
