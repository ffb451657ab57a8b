package tetris

// Spawn anchor: just above the top edge, horizontally centered.
const (
	SpawnRow = -1
	SpawnCol = FieldWidth/2 - 1
)

// Piece is the falling tetromino.
type Piece struct {
	Kind     Kind
	Rotation int
	Row, Col int // anchor position on the field
	Cells    Shape
}

// NewPiece returns kind in rotation 0 at the spawn anchor.
func NewPiece(kind Kind) *Piece {
	p := &Piece{
		Kind: kind,
		Row:  SpawnRow,
		Col:  SpawnCol,
	}
	p.refresh()
	return p
}

// SetRotation changes the rotation index, wrapping modulo 4.
func (p *Piece) SetRotation(rotation int) {
	p.Rotation = wrapRotation(rotation)
	p.refresh()
}

// refresh recomputes the cached offsets from kind and rotation.
func (p *Piece) refresh() {
	p.Cells = ShapeOf(p.Kind, p.Rotation)
}

// Blocks returns the absolute field positions of the four cells.
func (p *Piece) Blocks() [4]Offset {
	var out [4]Offset
	for i, o := range p.Cells {
		out[i] = Offset{Row: p.Row + o.Row, Col: p.Col + o.Col}
	}
	return out
}
