package board

import "testing"

func TestGridSetAndRowFull(t *testing.T) {
	g := NewGrid()
	for col := 0; col < Cols; col++ {
		if g.RowFull(5) {
			t.Fatalf("row 5 reported full after only %d columns set", col)
		}
		g.Set(col, 5, CellI)
	}
	if !g.RowFull(5) {
		t.Errorf("row 5 not reported full after all columns set")
	}
}

func TestGridIsValidRejectsCollisionAndOutOfBounds(t *testing.T) {
	g := NewGrid()
	mask := MaskFor(O, Spawn)

	if !g.IsValid(mask, Coord{X: 3, Y: 20}) {
		t.Errorf("expected valid placement on empty grid")
	}
	if g.IsValid(mask, Coord{X: 9, Y: 20}) {
		t.Errorf("expected invalid placement running off the right edge")
	}

	g.Place(mask, Coord{X: 3, Y: 20}, CellO)
	if g.IsValid(mask, Coord{X: 3, Y: 20}) {
		t.Errorf("expected invalid placement overlapping existing cells")
	}
}

func TestGridClearRow(t *testing.T) {
	g := NewGrid()
	for col := 0; col < Cols; col++ {
		g.Set(col, 3, CellZ)
	}
	g.ClearRow(3)
	if g.RowFull(3) {
		t.Errorf("row 3 still reported full after ClearRow")
	}
	for col := 0; col < Cols; col++ {
		if !g.At(col, 3).IsEmpty() {
			t.Errorf("cell (%d,3) not empty after ClearRow", col)
		}
	}
}

func TestGridShiftUp(t *testing.T) {
	g := NewGrid()
	g.Set(4, 0, CellJ)
	g.Set(5, 1, CellL)

	g.ShiftUp(2)

	if !g.At(4, 2).IsEmpty() && g.At(4, 2) != CellJ {
		t.Errorf("row 0 content not found at row 2 after ShiftUp(2)")
	}
	if g.At(4, 2) != CellJ {
		t.Errorf("At(4,2) = %v, want CellJ after ShiftUp(2)", g.At(4, 2))
	}
	if g.At(5, 3) != CellL {
		t.Errorf("At(5,3) = %v, want CellL after ShiftUp(2)", g.At(5, 3))
	}
	if !g.At(4, 0).IsEmpty() || !g.At(4, 1).IsEmpty() {
		t.Errorf("rows 0-1 should be empty after ShiftUp(2) vacates them")
	}
}

func TestFillGarbageRow(t *testing.T) {
	g := NewGrid()
	g.FillGarbageRow(0, 4)
	for col := 0; col < Cols; col++ {
		if col == 4 {
			if !g.At(col, 0).IsEmpty() {
				t.Errorf("hole column %d not empty", col)
			}
		} else if g.At(col, 0) != Garbage {
			t.Errorf("column %d = %v, want Garbage", col, g.At(col, 0))
		}
	}
}
