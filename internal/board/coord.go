package board

// Grid dimensions. Row 0 is the bottom of the board; rows 0-19 are the
// visible play area, rows 20-26 are the hidden buffer/spawn zone.
const (
	Cols       = 10
	VisibleRows = 20
	BufferRows  = 7
	Rows       = VisibleRows + BufferRows // 27
)

// Coord is a board-space column/row pair using the bottom-row=0 convention.
type Coord struct {
	X, Y int
}

// Add returns the coordinate offset by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// InBounds reports whether the coordinate lies within the 10x27 grid.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Cols && c.Y >= 0 && c.Y < Rows
}

// Index returns the row-major cell index for an in-bounds coordinate.
func Index(col, row int) int {
	return row*Cols + col
}
