// Package syntax classifies rendered row bytes into highlight classes and
// selects a highlight profile for a filename.
package syntax

import (
	"path/filepath"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Class is the highlight class of one rendered byte.
type Class uint8

const (
	Normal Class = iota
	String
	Number
	Match
)

func (c Class) String() string {
	switch c {
	case Normal:
		return "normal"
	case String:
		return "string"
	case Number:
		return "number"
	case Match:
		return "match"
	}
	return "unknown"
}

// Profile describes one filetype's highlighting rules.
type Profile struct {
	FileType string
	// Match entries starting with '.' are compared with the filename's
	// extension. Any other entry matches as a substring of the filename.
	Match   []string
	Numbers bool
	Strings bool
}

// DefaultProfiles is the built-in profile database.
var DefaultProfiles = []Profile{
	{FileType: "c", Match: []string{".c", ".h", ".cpp"}, Numbers: true, Strings: true},
	{FileType: "go", Match: []string{".go"}, Numbers: true, Strings: true},
}

// Select returns the first profile matching filename, or nil.
func Select(filename string, profiles []Profile) *Profile {
	if filename == "" {
		return nil
	}
	ext := filepath.Ext(filename)
	for i := range profiles {
		for _, m := range profiles[i].Match {
			if m == "" {
				continue
			}
			if strings.HasPrefix(m, ".") {
				if ext == m {
					return &profiles[i]
				}
			} else if strings.Contains(filename, m) {
				return &profiles[i]
			}
		}
	}
	return nil
}

// IsSeparator reports whether c ends a token for number detection.
func IsSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0:
		return true
	}
	return strings.IndexByte(",.()+-/*=~%<>[];", c) >= 0
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// Highlight classifies every byte of rendered, reusing dst's storage.
// The result always has len(rendered) entries. A nil profile leaves every
// byte Normal.
func Highlight(dst []Class, rendered []byte, p *Profile) []Class {
	if cap(dst) >= len(rendered) {
		dst = dst[:len(rendered)]
	} else {
		dst = make([]Class, len(rendered))
	}
	for i := range dst {
		dst[i] = Normal
	}
	if p == nil {
		return dst
	}

	prevSep := true
	var quote byte

	for i := 0; i < len(rendered); {
		c := rendered[i]
		prev := Normal
		if i > 0 {
			prev = dst[i-1]
		}

		if p.Strings {
			if quote != 0 {
				dst[i] = String
				if c == quote {
					quote = 0
				}
				i++
				prevSep = true
				continue
			}
			if c == '"' || c == '\'' {
				quote = c
				dst[i] = String
				i++
				continue
			}
		}

		if p.Numbers {
			if (isDigit(c) && (prevSep || prev == Number)) || (c == '.' && prev == Number) {
				dst[i] = Number
				i++
				prevSep = false
				continue
			}
		}

		prevSep = IsSeparator(c)
		i++
	}
	return dst
}

// Attr maps a class to its display attribute.
func Attr(c Class) ansi.Attr {
	switch c {
	case String:
		return 35
	case Normal:
		return 31
	case Match:
		return ansi.ReverseAttr
	default:
		return 37
	}
}
