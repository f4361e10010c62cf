package editor

import (
	"bytes"
	"slices"

	"github.com/JackWReid/zor/internal/syntax"
	"github.com/JackWReid/zor/internal/terminal"
)

// searchSession is the state of one incremental search.
type searchSession struct {
	lastMatch int // Row of the last match, -1 for none.
	direction int // 1 forward, -1 backward.

	savedLine int
	savedHL   []syntax.Class // Highlight of savedLine before the overlay.

	// Cursor and viewport before the search started.
	cx, cy               int
	rowOffset, colOffset int
}

func (a *App) startSearch() {
	a.search = searchSession{
		lastMatch: -1,
		direction: 1,
		cx:        a.cx,
		cy:        a.cy,
		rowOffset: a.viewport.RowOffset,
		colOffset: a.viewport.ColOffset,
	}
	a.startPrompt(PromptSearch)
}

func (a *App) handleSearchKey(key terminal.Key) {
	switch {
	case key.Type == terminal.KeyBackspace || key.Type == terminal.KeyDelete:
		a.prompt.Backspace()
	case key.Type == terminal.KeyEscape:
		a.statusBar.Prompt = PromptNone
		a.statusBar.ClearMessage()
		a.advanceSearch(key)
		a.cx, a.cy = a.search.cx, a.search.cy
		a.viewport.RowOffset = a.search.rowOffset
		a.viewport.ColOffset = a.search.colOffset
		return
	case key.Type == terminal.KeyEnter:
		if a.prompt.Len() != 0 {
			a.statusBar.Prompt = PromptNone
			a.statusBar.ClearMessage()
			a.advanceSearch(key)
			return
		}
	case key.IsPrintable():
		a.prompt.Append(key.Byte)
	}
	a.advanceSearch(key)
}

// advanceSearch runs one search step for the current query. Enter and
// Escape only clear the overlay; arrows pick the direction; any other key
// restarts the search from the top.
func (a *App) advanceSearch(key terminal.Key) {
	s := &a.search
	a.restoreSearchHighlight()

	switch key.Type {
	case terminal.KeyEnter, terminal.KeyEscape:
		s.lastMatch = -1
		s.direction = 1
		return
	case terminal.KeyRight, terminal.KeyDown:
		s.direction = 1
	case terminal.KeyLeft, terminal.KeyUp:
		s.direction = -1
	default:
		s.lastMatch = -1
		s.direction = 1
	}
	if s.lastMatch == -1 {
		s.direction = 1
	}

	query := []byte(a.prompt.String())
	if len(query) == 0 {
		return
	}

	n := a.doc.NumRows()
	current := s.lastMatch
	for range n {
		current += s.direction
		if current == -1 {
			current = n - 1
		} else if current == n {
			current = 0
		}

		row := a.doc.Row(current)
		off := bytes.Index(row.Render(), query)
		if off < 0 {
			continue
		}

		s.lastMatch = current
		a.cy = current
		a.cx = row.RenderToRaw(off, a.doc.TabStop())
		// Past the end, so the next scroll puts the match on the top row.
		a.viewport.RowOffset = n

		s.savedLine = current
		s.savedHL = slices.Clone(row.hl)
		for i := off; i < off+len(query); i++ {
			row.hl[i] = syntax.Match
		}
		return
	}
}

func (a *App) restoreSearchHighlight() {
	s := &a.search
	if s.savedHL == nil {
		return
	}
	if row := a.doc.Row(s.savedLine); row != nil && len(row.hl) == len(s.savedHL) {
		copy(row.hl, s.savedHL)
	}
	s.savedHL = nil
}
