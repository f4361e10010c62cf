package editor

// statusLines is the number of screen rows reserved below the text area
// for the status bar and the message line.
const statusLines = 2

// Viewport is the visible window into the document.
type Viewport struct {
	ScreenRows int // Text rows (terminal height minus the status lines)
	ScreenCols int
	RowOffset  int
	ColOffset  int
}

func NewViewport(height, width int) *Viewport {
	vp := &Viewport{}
	vp.Resize(height, width)
	return vp
}

// Resize recomputes the text area for a terminal of the given size.
func (vp *Viewport) Resize(height, width int) {
	vp.ScreenRows = max(1, height-statusLines)
	vp.ScreenCols = max(1, width)
}

// Scroll adjusts the offsets so that the cursor at (cy, rx) is visible.
func (vp *Viewport) Scroll(cy, rx int) {
	if cy < vp.RowOffset {
		vp.RowOffset = cy
	}
	if cy >= vp.RowOffset+vp.ScreenRows {
		vp.RowOffset = cy - vp.ScreenRows + 1
	}
	if rx < vp.ColOffset {
		vp.ColOffset = rx
	}
	if rx >= vp.ColOffset+vp.ScreenCols {
		vp.ColOffset = rx - vp.ScreenCols + 1
	}
}
