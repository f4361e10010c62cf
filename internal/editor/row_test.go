package editor

import (
	"testing"

	"github.com/JackWReid/zor/internal/syntax"
)

func newRow(s string) *Row {
	r := &Row{raw: []byte(s)}
	r.update(DefaultTabStop, nil)
	return r
}

func TestRowRenderExpandsTabs(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"abc", "abc"},
		{"\tx", "        x"},
		{"ab\tc", "ab      c"},
		{"1234567\tx", "1234567 x"},
		{"12345678\tx", "12345678        x"},
		{"", ""},
	}
	for _, tt := range tests {
		r := newRow(tt.raw)
		if got := string(r.Render()); got != tt.want {
			t.Errorf("render(%q) = %q, want %q", tt.raw, got, tt.want)
		}
		if len(r.Highlight()) != len(r.Render()) {
			t.Errorf("render(%q): hl len %d, render len %d", tt.raw, len(r.Highlight()), len(r.Render()))
		}
	}
}

func TestRowRawToRender(t *testing.T) {
	r := newRow("a\tb")
	tests := []struct {
		cx   int
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 8},
		{3, 9},
		{10, 9}, // Clamped to the row.
	}
	for _, tt := range tests {
		if got := r.RawToRender(tt.cx, DefaultTabStop); got != tt.want {
			t.Errorf("RawToRender(%d) = %d, want %d", tt.cx, got, tt.want)
		}
	}
}

func TestRowRenderToRaw(t *testing.T) {
	r := newRow("a\tb")
	tests := []struct {
		rx   int
		want int
	}{
		{0, 0},
		{1, 1},
		{4, 1}, // Inside the tab's expansion.
		{7, 1},
		{8, 2},
		{9, 3},
		{50, 3},
	}
	for _, tt := range tests {
		if got := r.RenderToRaw(tt.rx, DefaultTabStop); got != tt.want {
			t.Errorf("RenderToRaw(%d) = %d, want %d", tt.rx, got, tt.want)
		}
	}
}

func TestRowCoordinateRoundTripWithoutTabs(t *testing.T) {
	r := newRow("hello, world")
	for cx := 0; cx <= r.Len(); cx++ {
		if got := r.RenderToRaw(r.RawToRender(cx, 4), 4); got != cx {
			t.Errorf("round trip of %d gave %d", cx, got)
		}
	}
}

func TestRowTabStopConfigurable(t *testing.T) {
	r := &Row{raw: []byte("\tx")}
	r.update(4, nil)
	if got := string(r.Render()); got != "    x" {
		t.Errorf("tab stop 4: %q", got)
	}
	if got := r.RawToRender(1, 4); got != 4 {
		t.Errorf("RawToRender with tab stop 4: %d", got)
	}
}

func TestRowHighlightFollowsRender(t *testing.T) {
	p := &syntax.Profile{Numbers: true, Strings: true}
	r := &Row{raw: []byte("\t42")}
	r.update(DefaultTabStop, p)
	if len(r.hl) != 10 {
		t.Fatalf("hl len = %d", len(r.hl))
	}
	if r.hl[8] != syntax.Number || r.hl[9] != syntax.Number {
		t.Errorf("digits after a tab should be numbers: %v", r.hl)
	}
}
