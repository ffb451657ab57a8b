package tetris

// Info is a read-only copy of the session for rendering and score keeping.
// Arrays are copied by value, so mutating an Info never touches the game.
type Info struct {
	Field     Field
	Next      Preview
	Score     int
	HighScore int
	Level     int
	Speed     int
	Lines     int
	Mode      Mode
	State     State
	Falling   Kind // kind of the active piece, valid if HasPiece
	HasPiece  bool
}

// NextKind decodes the previewed piece.
func (i Info) NextKind() (Kind, bool) {
	return i.Next.Kind()
}
