package editor

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/JackWReid/zor/internal/syntax"
)

// Version is shown on the welcome line.
const Version = "0.0.1"

// Renderer builds a frame buffer so the terminal receives it in one write.
type Renderer struct {
	buf bytes.Buffer
}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderFrame draws the full screen: text rows, status bar, message line
// and cursor placement. The returned slice is only valid until the next
// call.
func (r *Renderer) RenderFrame(
	doc *Document,
	vp *Viewport,
	cy int,
	rx int,
	statusLeft string,
	statusRight string,
	message string,
) []byte {
	r.buf.Reset()

	r.buf.WriteString(ansi.HideCursor)
	r.buf.WriteString(ansi.CursorHomePosition)

	r.renderRows(doc, vp)
	r.renderStatusBar(vp, statusLeft, statusRight)
	r.renderMessage(vp, message)

	r.buf.WriteString(ansi.ShowCursor)
	r.buf.WriteString(ansi.CursorPosition(rx-vp.ColOffset+1, cy-vp.RowOffset+1))

	return r.buf.Bytes()
}

func (r *Renderer) renderRows(doc *Document, vp *Viewport) {
	for y := 0; y < vp.ScreenRows; y++ {
		fileRow := y + vp.RowOffset
		if row := doc.Row(fileRow); row != nil {
			r.renderRow(row, vp)
		} else if doc.NumRows() == 0 && y == vp.ScreenRows/3 {
			r.renderWelcome(vp.ScreenCols)
		} else {
			r.buf.WriteByte('~')
		}
		r.buf.WriteString(ansi.EraseLineRight)
		r.buf.WriteString("\r\n")
	}
}

// renderRow draws the visible slice of one row. An escape is only emitted
// when the highlight class changes between adjacent bytes.
func (r *Renderer) renderRow(row *Row, vp *Viewport) {
	render, hl := row.Render(), row.Highlight()
	start := min(vp.ColOffset, len(render))
	end := min(start+vp.ScreenCols, len(render))

	current := syntax.Normal
	for i := start; i < end; i++ {
		if hl[i] != current {
			r.buf.WriteString(ansi.ResetStyle)
			if hl[i] != syntax.Normal {
				r.buf.WriteString(ansi.SGR(syntax.Attr(hl[i])))
			}
			current = hl[i]
		}
		r.buf.WriteByte(render[i])
	}
	if current != syntax.Normal {
		r.buf.WriteString(ansi.ResetStyle)
	}
}

func (r *Renderer) renderWelcome(cols int) {
	welcome := fmt.Sprintf("ZOR EDITOR -- VERSION %s", Version)
	if len(welcome) > cols {
		welcome = welcome[:cols]
	}
	padding := (cols - len(welcome)) / 2
	if padding > 0 {
		r.buf.WriteByte('~')
		padding--
	}
	r.buf.Write(bytes.Repeat([]byte{' '}, padding))
	r.buf.WriteString(welcome)
}

// renderStatusBar draws the reverse-video status line. The right part is
// only drawn when it fits after the left part.
func (r *Renderer) renderStatusBar(vp *Viewport, left, right string) {
	r.buf.WriteString(ansi.SGR(ansi.ReverseAttr))

	left = ansi.Truncate(left, vp.ScreenCols, "")
	r.buf.WriteString(left)
	n := ansi.StringWidth(left)
	rightWidth := ansi.StringWidth(right)
	for n < vp.ScreenCols {
		if vp.ScreenCols-n == rightWidth {
			r.buf.WriteString(right)
			break
		}
		r.buf.WriteByte(' ')
		n++
	}

	r.buf.WriteString(ansi.ResetStyle)
	r.buf.WriteString("\r\n")
}

func (r *Renderer) renderMessage(vp *Viewport, message string) {
	r.buf.WriteString(ansi.EraseLineRight)
	if message != "" {
		r.buf.WriteString(ansi.Truncate(message, vp.ScreenCols, ""))
	}
}
