package editor

import "github.com/JackWReid/zor/internal/terminal"

func (a *App) handleNormalKey(key terminal.Key) {
	if key.Type == terminal.KeyByte {
		switch key.Byte {
		case 'i', 'I':
			a.mode = ModeInsert
		case ':':
			a.mode = ModeCommand
			a.command.Reset()
			a.keepQuit = true
		case 'h':
			a.moveCursor(terminal.KeyLeft)
		case 'j':
			a.moveCursor(terminal.KeyDown)
		case 'k':
			a.moveCursor(terminal.KeyUp)
		case 'l':
			a.moveCursor(terminal.KeyRight)
		case 'w':
			a.cy, a.cx = nextWord(a.doc, a.cy, a.cx)
		case 'b':
			a.cy, a.cx = prevWord(a.doc, a.cy, a.cx)
		case '/':
			a.startSearch()
		}
		return
	}
	a.handleSharedKey(key)
}

func (a *App) handleInsertKey(key terminal.Key) {
	switch {
	case key.Type == terminal.KeyEnter:
		a.insertNewline()
	case key.Type == terminal.KeyEscape, key.IsCtrl('l'):
		a.mode = ModeNormal
	case key.Type == terminal.KeyByte:
		a.insertChar(key.Byte)
	default:
		a.handleSharedKey(key)
	}
}

// handleSharedKey handles the keys that behave the same in Normal and
// Insert mode.
func (a *App) handleSharedKey(key terminal.Key) {
	switch key.Type {
	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		a.moveCursor(key.Type)
	case terminal.KeyHome:
		a.cx = 0
	case terminal.KeyEnd:
		a.cx = a.doc.RowLen(a.cy)
	case terminal.KeyBackspace:
		a.deleteChar()
	case terminal.KeyDelete:
		a.moveCursor(terminal.KeyRight)
		a.deleteChar()
	case terminal.KeyPgUp:
		a.pageMove(terminal.KeyUp, a.viewport.ScreenRows)
	case terminal.KeyPgDn:
		a.pageMove(terminal.KeyDown, a.viewport.ScreenRows)
	case terminal.KeyCtrl:
		switch key.Byte {
		case 'q':
			a.requestQuit()
		case 's':
			a.save()
		case 'u':
			a.pageMove(terminal.KeyUp, max(1, a.viewport.ScreenRows/2))
		case 'd':
			a.pageMove(terminal.KeyDown, max(1, a.viewport.ScreenRows/2))
		}
	}
}

func (a *App) handleCommandKey(key terminal.Key) {
	switch {
	case key.Type == terminal.KeyEnter:
		cmd := a.command.String()
		a.mode = ModeNormal
		a.statusBar.ClearMessage()
		a.executeCommand(cmd)
	case key.Type == terminal.KeyEscape:
		a.mode = ModeNormal
		a.statusBar.ClearMessage()
	case key.Type == terminal.KeyBackspace:
		a.command.Backspace()
		a.keepQuit = true
	case key.IsPrintable():
		a.command.Append(key.Byte)
		a.keepQuit = true
	default:
		a.keepQuit = true
	}
}

// moveCursor moves one step. cy may land on NumRows, the line past the
// end; cx is clamped to the landing row afterwards.
func (a *App) moveCursor(dir terminal.KeyType) {
	row := a.doc.Row(a.cy)
	switch dir {
	case terminal.KeyLeft:
		if a.cx != 0 {
			a.cx--
		} else if a.cy > 0 {
			a.cy--
			a.cx = a.doc.RowLen(a.cy)
		}
	case terminal.KeyRight:
		if row != nil && a.cx < row.Len() {
			a.cx++
		} else if row != nil && a.cx == row.Len() {
			a.cy++
			a.cx = 0
		}
	case terminal.KeyUp:
		if a.cy != 0 {
			a.cy--
		}
	case terminal.KeyDown:
		if a.cy < a.doc.NumRows() {
			a.cy++
		}
	}

	if rowLen := a.doc.RowLen(a.cy); a.cx > rowLen {
		a.cx = rowLen
	}
}

// pageMove jumps to the viewport edge in dir, then steps n times.
func (a *App) pageMove(dir terminal.KeyType, n int) {
	if dir == terminal.KeyUp {
		a.cy = a.viewport.RowOffset
	} else {
		a.cy = min(a.viewport.RowOffset+a.viewport.ScreenRows-1, a.doc.NumRows())
	}
	for range n {
		a.moveCursor(dir)
	}
}

func (a *App) insertChar(c byte) {
	if a.cy == a.doc.NumRows() {
		a.doc.InsertRow(a.doc.NumRows(), nil)
	}
	a.doc.RowInsertByte(a.cy, a.cx, c)
	a.cx++
}

func (a *App) insertNewline() {
	if a.cx == 0 {
		a.doc.InsertRow(a.cy, nil)
	} else {
		row := a.doc.Row(a.cy)
		a.doc.InsertRow(a.cy+1, row.Raw()[a.cx:])
		a.doc.RowTruncate(a.cy, a.cx)
	}
	a.cy++
	a.cx = 0
}

// deleteChar deletes the byte before the cursor, merging with the previous
// row at column 0.
func (a *App) deleteChar() {
	if a.cy == a.doc.NumRows() {
		return
	}
	if a.cx == 0 && a.cy == 0 {
		return
	}
	if a.cx > 0 {
		a.doc.RowDeleteByte(a.cy, a.cx-1)
		a.cx--
		return
	}
	a.cx = a.doc.RowLen(a.cy - 1)
	a.doc.RowAppendBytes(a.cy-1, a.doc.Row(a.cy).Raw())
	a.doc.DeleteRow(a.cy)
	a.cy--
}
