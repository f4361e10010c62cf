package editor

import "github.com/JackWReid/zor/internal/syntax"

// Row is one line of the document. render and hl are derived from raw and
// are always rebuilt together, so len(hl) == len(render).
type Row struct {
	raw    []byte
	render []byte
	hl     []syntax.Class
}

// Raw returns the row's bytes as stored on disk, without a line terminator.
func (r *Row) Raw() []byte { return r.raw }

// Render returns the row with tabs expanded.
func (r *Row) Render() []byte { return r.render }

// Highlight returns one class per rendered byte.
func (r *Row) Highlight() []syntax.Class { return r.hl }

// Len returns the raw length.
func (r *Row) Len() int { return len(r.raw) }

func (r *Row) update(tabStop int, p *syntax.Profile) {
	tabs := 0
	for _, c := range r.raw {
		if c == '\t' {
			tabs++
		}
	}

	render := r.render[:0]
	if cap(render) < len(r.raw)+tabs*(tabStop-1) {
		render = make([]byte, 0, len(r.raw)+tabs*(tabStop-1))
	}
	for _, c := range r.raw {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tabStop != 0 {
				render = append(render, ' ')
			}
			continue
		}
		render = append(render, c)
	}
	r.render = render
	r.hl = syntax.Highlight(r.hl, r.render, p)
}

// RawToRender converts a raw column to a rendered column.
func (r *Row) RawToRender(cx, tabStop int) int {
	if cx > len(r.raw) {
		cx = len(r.raw)
	}
	rx := 0
	for _, c := range r.raw[:cx] {
		if c == '\t' {
			rx += (tabStop - 1) - (rx % tabStop)
		}
		rx++
	}
	return rx
}

// RenderToRaw converts a rendered column back to the raw column whose
// expansion covers it. Columns past the end map to the raw length.
func (r *Row) RenderToRaw(rx, tabStop int) int {
	cur := 0
	for cx, c := range r.raw {
		if c == '\t' {
			cur += (tabStop - 1) - (cur % tabStop)
		}
		cur++
		if cur > rx {
			return cx
		}
	}
	return len(r.raw)
}
