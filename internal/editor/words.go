package editor

// WordBoundary is the location of one word in the document.
type WordBoundary struct {
	Line     int
	StartCol int
	EndCol   int
}

func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// FindWordBoundaries scans every row and returns all word boundaries in
// document order.
func FindWordBoundaries(doc *Document) []WordBoundary {
	var boundaries []WordBoundary
	for i := 0; i < doc.NumRows(); i++ {
		boundaries = append(boundaries, lineWordBoundaries(i, doc.Row(i).Raw())...)
	}
	return boundaries
}

func lineWordBoundaries(lineNum int, line []byte) []WordBoundary {
	var boundaries []WordBoundary
	inWord := false
	var startCol int

	for i, c := range line {
		if isWordByte(c) {
			if !inWord {
				startCol = i
				inWord = true
			}
		} else if inWord {
			boundaries = append(boundaries, WordBoundary{Line: lineNum, StartCol: startCol, EndCol: i})
			inWord = false
		}
	}
	if inWord {
		boundaries = append(boundaries, WordBoundary{Line: lineNum, StartCol: startCol, EndCol: len(line)})
	}
	return boundaries
}

// nextWord returns the start of the first word after (line, col), wrapping
// to the first word of the document. Without words the position is kept.
func nextWord(doc *Document, line, col int) (int, int) {
	words := FindWordBoundaries(doc)
	if len(words) == 0 {
		return line, col
	}
	for _, w := range words {
		if w.Line > line || (w.Line == line && w.StartCol > col) {
			return w.Line, w.StartCol
		}
	}
	return words[0].Line, words[0].StartCol
}

// prevWord returns the start of the last word before (line, col), wrapping
// to the last word of the document.
func prevWord(doc *Document, line, col int) (int, int) {
	words := FindWordBoundaries(doc)
	if len(words) == 0 {
		return line, col
	}
	for i := len(words) - 1; i >= 0; i-- {
		w := words[i]
		if w.Line < line || (w.Line == line && w.StartCol < col) {
			return w.Line, w.StartCol
		}
	}
	last := words[len(words)-1]
	return last.Line, last.StartCol
}
