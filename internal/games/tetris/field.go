package tetris

// Board dimensions.
const (
	FieldHeight = 20
	FieldWidth  = 10
	PreviewSize = 4
)

// Cell is the content of one field position.
type Cell uint8

const (
	CellEmpty     Cell = iota // nothing here
	CellLocked                // part of a settled piece
	CellTransient             // overlay of the falling piece, rendering only
)

// Field is the play grid, addressed as field[row][col].
type Field [FieldHeight][FieldWidth]Cell

// Preview holds the upcoming piece as kind index + 1, 0 meaning empty.
type Preview [PreviewSize][PreviewSize]int

// Clear empties every cell.
func (f *Field) Clear() {
	*f = Field{}
}

// InBounds reports whether (row, col) addresses a cell of the field.
func (f *Field) InBounds(row, col int) bool {
	return row >= 0 && row < FieldHeight && col >= 0 && col < FieldWidth
}

// Locked reports whether the cell at (row, col) holds a settled block.
// Positions outside the field are never locked.
func (f *Field) Locked(row, col int) bool {
	return f.InBounds(row, col) && f[row][col] == CellLocked
}

// IsRowFull reports whether no cell of row is empty.
// A zero-length row is vacuously full.
func IsRowFull(row []Cell) bool {
	for _, c := range row {
		if c == CellEmpty {
			return false
		}
	}
	return true
}

// CompactFrom removes row by shifting every row above it down by one.
// The top row is left empty.
func (f *Field) CompactFrom(row int) {
	if row < 0 || row >= FieldHeight {
		return
	}
	for r := row; r > 0; r-- {
		f[r] = f[r-1]
	}
	f[0] = [FieldWidth]Cell{}
}

// ClearFullLines removes every full row, scanning bottom to top, and returns
// how many were removed. After a removal the same index is examined again
// because the row above has just moved into it.
func (f *Field) ClearFullLines() int {
	cleared := 0
	for r := FieldHeight - 1; r >= 0; {
		if IsRowFull(f[r][:]) {
			f.CompactFrom(r)
			cleared++
			continue
		}
		r--
	}
	return cleared
}

// ClearTransient resets the falling piece overlay.
func (f *Field) ClearTransient() {
	for r := range f {
		for c := range f[r] {
			if f[r][c] == CellTransient {
				f[r][c] = CellEmpty
			}
		}
	}
}

// DrawTransient marks the cells of p as transient. Locked cells are never
// overwritten and cells outside the field are skipped.
func (f *Field) DrawTransient(p *Piece) {
	if p == nil {
		return
	}
	for _, b := range p.Blocks() {
		if !f.InBounds(b.Row, b.Col) {
			continue
		}
		if f[b.Row][b.Col] != CellLocked {
			f[b.Row][b.Col] = CellTransient
		}
	}
}

// Lock settles the cells of p into the field.
func (f *Field) Lock(p *Piece) {
	for _, b := range p.Blocks() {
		if f.InBounds(b.Row, b.Col) {
			f[b.Row][b.Col] = CellLocked
		}
	}
}

// RegionLocked reports whether any cell in rows [top, top+rows) and
// cols [left, left+cols) is locked.
func (f *Field) RegionLocked(top, left, rows, cols int) bool {
	for r := top; r < top+rows; r++ {
		for c := left; c < left+cols; c++ {
			if f.Locked(r, c) {
				return true
			}
		}
	}
	return false
}

// Clear empties the preview.
func (p *Preview) Clear() {
	*p = Preview{}
}

// Set replaces the preview with kind in rotation 0, normalized so its
// topmost and leftmost cells sit on row 0 and column 0.
func (p *Preview) Set(kind Kind) {
	p.Clear()
	if !kind.Valid() {
		return
	}
	shape := ShapeOf(kind, 0)
	minRow, minCol := shape.bounds()
	for _, o := range shape {
		r, c := o.Row-minRow, o.Col-minCol
		if r < PreviewSize && c < PreviewSize {
			p[r][c] = int(kind) + 1
		}
	}
}

// Kind decodes the previewed piece from the first non-empty entry.
// The second result is false if the preview is empty or holds an unknown value.
func (p *Preview) Kind() (Kind, bool) {
	for r := range p {
		for c := range p[r] {
			if v := p[r][c]; v != 0 {
				k := Kind(v - 1)
				return k, k.Valid()
			}
		}
	}
	return 0, false
}
