package tetris

// Collides reports whether p overlaps a wall, the floor or a locked cell.
// With predictDown the check is made one row below the current position.
// Cells above the field only have their column checked, so a piece may
// spawn partially outside the top edge.
func Collides(f *Field, p *Piece, predictDown bool) bool {
	drop := 0
	if predictDown {
		drop = 1
	}
	for _, o := range p.Cells {
		row := p.Row + o.Row + drop
		col := p.Col + o.Col
		if row >= FieldHeight || col < 0 || col >= FieldWidth {
			return true
		}
		if row >= 0 && f[row][col] == CellLocked {
			return true
		}
	}
	return false
}
