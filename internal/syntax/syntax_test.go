package syntax

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

var both = &Profile{FileType: "c", Numbers: true, Strings: true}

func classes(s string) string {
	hl := Highlight(nil, []byte(s), both)
	out := make([]byte, len(hl))
	for i, c := range hl {
		switch c {
		case Normal:
			out[i] = '.'
		case String:
			out[i] = 's'
		case Number:
			out[i] = 'n'
		case Match:
			out[i] = 'm'
		}
	}
	return string(out)
}

func TestHighlightNumber(t *testing.T) {
	hl := Highlight(nil, []byte("int x = 5;"), both)
	if len(hl) != 10 {
		t.Fatalf("len = %d", len(hl))
	}
	if hl[8] != Number {
		t.Errorf("byte 8 should be number, got %s", hl[8])
	}
	for i, c := range hl {
		if i != 8 && c != Normal {
			t.Errorf("byte %d should be normal, got %s", i, c)
		}
	}
}

func TestHighlightPatterns(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"3.14", "nnnn"},
		{"x1", ".."},
		{"a+12", "..nn"},
		{`"hi" 7`, "ssss.n"},
		{`'a'`, "sss"},
		{`"open`, "sssss"},
		{`"a'b"`, "sssss"},
		{"(1,2)", ".n.n."},
		{"1.", "nn"},
		{"foo.5", "....n"},
		{"foo5", "...."},
	}
	for _, tt := range tests {
		if got := classes(tt.in); got != tt.want {
			t.Errorf("Highlight(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHighlightAfterString(t *testing.T) {
	// A closed string acts as a separator for a following digit.
	if got := classes(`"x"5`); got != "sssn" {
		t.Errorf("got %q", got)
	}
}

func TestHighlightFlagsIndependent(t *testing.T) {
	numbersOnly := &Profile{Numbers: true}
	hl := Highlight(nil, []byte(`"5" 5`), numbersOnly)
	want := []Class{Normal, Normal, Normal, Normal, Number}
	for i := range want {
		if hl[i] != want[i] {
			t.Errorf("numbers only, byte %d: got %s, want %s", i, hl[i], want[i])
		}
	}

	stringsOnly := &Profile{Strings: true}
	hl = Highlight(nil, []byte(`"5" 5`), stringsOnly)
	want = []Class{String, String, String, Normal, Normal}
	for i := range want {
		if hl[i] != want[i] {
			t.Errorf("strings only, byte %d: got %s, want %s", i, hl[i], want[i])
		}
	}
}

func TestHighlightNoProfile(t *testing.T) {
	hl := Highlight(nil, []byte(`x = "5"`), nil)
	if len(hl) != 7 {
		t.Fatalf("len = %d", len(hl))
	}
	for i, c := range hl {
		if c != Normal {
			t.Errorf("byte %d: got %s", i, c)
		}
	}
}

func TestHighlightReusesStorage(t *testing.T) {
	dst := make([]Class, 16)
	dst[0] = Match
	hl := Highlight(dst, []byte("ab"), both)
	if len(hl) != 2 {
		t.Fatalf("len = %d", len(hl))
	}
	if &hl[0] != &dst[0] {
		t.Error("expected storage to be reused")
	}
	if hl[0] != Normal {
		t.Errorf("stale class not cleared: %s", hl[0])
	}
}

func TestIsSeparator(t *testing.T) {
	for _, c := range []byte(" \t,.()+-/*=~%<>[];\x00") {
		if !IsSeparator(c) {
			t.Errorf("%q should be a separator", c)
		}
	}
	for _, c := range []byte("aZ09_\"'{}") {
		if IsSeparator(c) {
			t.Errorf("%q should not be a separator", c)
		}
	}
}

func TestSelect(t *testing.T) {
	profiles := append([]Profile{}, DefaultProfiles...)
	profiles = append(profiles, Profile{FileType: "make", Match: []string{"Makefile"}})

	tests := []struct {
		filename string
		want     string
	}{
		{"main.c", "c"},
		{"include/util.h", "c"},
		{"x.cpp", "c"},
		{"main.go", "go"},
		{"src/Makefile", "make"},
		{"notes.txt", ""},
		{"main.cc", ""},
		{"", ""},
	}
	for _, tt := range tests {
		p := Select(tt.filename, profiles)
		got := ""
		if p != nil {
			got = p.FileType
		}
		if got != tt.want {
			t.Errorf("Select(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestAttr(t *testing.T) {
	tests := []struct {
		class Class
		want  ansi.Attr
	}{
		{String, 35},
		{Normal, 31},
		{Match, ansi.ReverseAttr},
		{Number, 37},
	}
	for _, tt := range tests {
		if got := Attr(tt.class); got != tt.want {
			t.Errorf("Attr(%s) = %d, want %d", tt.class, got, tt.want)
		}
	}
}
