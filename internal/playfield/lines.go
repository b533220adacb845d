package playfield

import "github.com/blockforge/puzzlecore/internal/board"

// clearFullLines scans the visible rows, collapsing every full row down
// into the emptied slot and backfilling the top of the buffer. Rows in the
// 20-26 buffer shift along with everything below them but never count
// toward the returned total.
func clearFullLines(g *board.Grid) int {
	cleared := 0
	row := 0
	for row < board.VisibleRows {
		if !g.RowFull(row) {
			row++
			continue
		}
		for r := row; r < board.Rows-1; r++ {
			g.CopyRow(r, r+1)
		}
		g.ClearRow(board.Rows - 1)
		cleared++
		// re-examine the same index: the row above has taken its place
	}
	return cleared
}
