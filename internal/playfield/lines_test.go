package playfield

import (
	"testing"

	"github.com/blockforge/puzzlecore/internal/board"
)

func TestClearFullLinesSingleRowShiftsAbove(t *testing.T) {
	g := board.NewGrid()
	for col := 0; col < board.Cols-1; col++ {
		g.Set(col, 5, board.CellJ)
	}
	g.Set(9, 5, board.CellI) // I piece fills the remaining column 9
	g.Set(9, 6, board.CellI)
	g.Set(9, 7, board.CellI)
	g.Set(9, 8, board.CellI)
	g.Set(3, 6, board.CellL)
	g.Set(3, 7, board.CellL)
	g.Set(3, 8, board.CellL)

	if cleared := clearFullLines(g); cleared != 1 {
		t.Fatalf("clearFullLines() = %d, want 1", cleared)
	}

	if g.RowFull(5) {
		t.Errorf("row 5 reported full after a clear shifted rows down into it")
	}
	if g.At(9, 5) != board.CellI {
		t.Errorf("At(9,5) = %v, want CellI (row 6 shifted down to row 5)", g.At(9, 5))
	}
	if g.At(3, 5) != board.CellL {
		t.Errorf("At(3,5) = %v, want CellL (row 6 shifted down to row 5)", g.At(3, 5))
	}
	if g.At(3, 6) != board.CellL || g.At(9, 6) != board.CellI {
		t.Errorf("row 7 did not shift down to row 6")
	}
	if !g.At(3, 8).IsEmpty() || !g.At(9, 8).IsEmpty() {
		t.Errorf("vacated top row 8 should be empty after the shift")
	}
}

func TestClearFullLinesNoFullRows(t *testing.T) {
	g := board.NewGrid()
	g.Set(0, 0, board.CellT)
	if cleared := clearFullLines(g); cleared != 0 {
		t.Fatalf("clearFullLines() = %d, want 0 with no full rows", cleared)
	}
}

func TestClearFullLinesMultipleRows(t *testing.T) {
	g := board.NewGrid()
	for _, row := range []int{2, 3, 4} {
		for col := 0; col < board.Cols; col++ {
			g.Set(col, row, board.CellO)
		}
	}
	g.Set(5, 5, board.CellS)

	if cleared := clearFullLines(g); cleared != 3 {
		t.Fatalf("clearFullLines() = %d, want 3", cleared)
	}
	if g.At(5, 2) != board.CellS {
		t.Errorf("At(5,2) = %v, want CellS (row 5 collapsed down to row 2)", g.At(5, 2))
	}
	if !g.At(5, 3).IsEmpty() || !g.At(5, 4).IsEmpty() {
		t.Errorf("rows above the collapsed content should be empty")
	}
}
