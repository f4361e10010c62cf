package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/JackWReid/zor/internal/syntax"
)

// ErrNoFilename is returned by Save when the document has never been named.
var ErrNoFilename = errors.New("no filename")

// DefaultTabStop is the tab width used when none is configured.
const DefaultTabStop = 8

// Document holds the rows of one file along with its dirty counter,
// filename and active syntax profile.
type Document struct {
	rows     []Row
	dirty    int
	filename string
	syntax   *syntax.Profile
	profiles []syntax.Profile
	tabStop  int
}

func NewDocument(tabStop int, profiles []syntax.Profile) *Document {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Document{tabStop: tabStop, profiles: profiles}
}

// NumRows returns the number of rows.
func (d *Document) NumRows() int { return len(d.rows) }

// Row returns the row at idx, or nil when idx is out of range.
func (d *Document) Row(idx int) *Row {
	if idx < 0 || idx >= len(d.rows) {
		return nil
	}
	return &d.rows[idx]
}

// RowLen returns the raw length of row idx, or 0 past the last row.
func (d *Document) RowLen(idx int) int {
	if r := d.Row(idx); r != nil {
		return r.Len()
	}
	return 0
}

func (d *Document) Dirty() bool     { return d.dirty > 0 }
func (d *Document) Filename() string { return d.filename }
func (d *Document) TabStop() int     { return d.tabStop }

// Syntax returns the active profile, or nil.
func (d *Document) Syntax() *syntax.Profile { return d.syntax }

// FileType returns the active profile's name, or "".
func (d *Document) FileType() string {
	if d.syntax == nil {
		return ""
	}
	return d.syntax.FileType
}

// SetFilename names the document and re-selects its syntax profile.
func (d *Document) SetFilename(name string) {
	d.filename = name
	d.syntax = syntax.Select(name, d.profiles)
	for i := range d.rows {
		d.rows[i].update(d.tabStop, d.syntax)
	}
}

// InsertRow inserts a row holding a copy of b at idx. idx is clamped to
// [0, NumRows()].
func (d *Document) InsertRow(idx int, b []byte) {
	idx = max(0, min(idx, len(d.rows)))
	row := Row{raw: bytes.Clone(b)}
	if row.raw == nil {
		row.raw = []byte{}
	}
	row.update(d.tabStop, d.syntax)
	d.rows = slices.Insert(d.rows, idx, row)
	d.dirty++
}

// DeleteRow removes row idx. Out of range is a no-op.
func (d *Document) DeleteRow(idx int) {
	if idx < 0 || idx >= len(d.rows) {
		return
	}
	d.rows = slices.Delete(d.rows, idx, idx+1)
	d.dirty++
}

// RowInsertByte inserts c into row idx at pos, clamping pos to the row.
func (d *Document) RowInsertByte(idx, pos int, c byte) {
	r := d.Row(idx)
	if r == nil {
		return
	}
	if pos < 0 || pos > len(r.raw) {
		pos = len(r.raw)
	}
	r.raw = slices.Insert(r.raw, pos, c)
	r.update(d.tabStop, d.syntax)
	d.dirty++
}

// RowDeleteByte removes the byte at pos from row idx. Out of range is a
// no-op.
func (d *Document) RowDeleteByte(idx, pos int) {
	r := d.Row(idx)
	if r == nil || pos < 0 || pos >= len(r.raw) {
		return
	}
	r.raw = slices.Delete(r.raw, pos, pos+1)
	r.update(d.tabStop, d.syntax)
	d.dirty++
}

// RowAppendBytes appends b to row idx.
func (d *Document) RowAppendBytes(idx int, b []byte) {
	r := d.Row(idx)
	if r == nil {
		return
	}
	r.raw = append(r.raw, b...)
	r.update(d.tabStop, d.syntax)
	d.dirty++
}

// RowTruncate cuts row idx down to n bytes.
func (d *Document) RowTruncate(idx, n int) {
	r := d.Row(idx)
	if r == nil || n < 0 || n >= len(r.raw) {
		return
	}
	r.raw = r.raw[:n]
	r.update(d.tabStop, d.syntax)
	d.dirty++
}

// Text serializes the document with a newline after every row.
func (d *Document) Text() []byte {
	n := 0
	for i := range d.rows {
		n += len(d.rows[i].raw) + 1
	}
	buf := make([]byte, 0, n)
	for i := range d.rows {
		buf = append(buf, d.rows[i].raw...)
		buf = append(buf, '\n')
	}
	return buf
}

// Load appends every line read from r, stripping trailing CR and LF bytes,
// and leaves the document clean.
func (d *Document) Load(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.InsertRow(len(d.rows), bytes.TrimRight(line, "\r\n"))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
	}
	d.dirty = 0
	return nil
}

// Open names the document after path and loads the file's contents.
func (d *Document) Open(path string) error {
	d.SetFilename(path)
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if err := d.Load(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	return nil
}

// Save writes the document to its filename, creating or truncating the
// file, and returns the number of bytes written. The dirty counter is only
// cleared on success.
func (d *Document) Save() (int, error) {
	if d.filename == "" {
		return 0, ErrNoFilename
	}
	buf := d.Text()

	f, err := os.OpenFile(d.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	if err := f.Truncate(int64(len(buf))); err != nil {
		f.Close()
		return 0, err
	}
	n, err := f.WriteAt(buf, 0)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, err
	}
	d.dirty = 0
	return n, nil
}
