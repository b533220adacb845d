package playfield

import "github.com/blockforge/puzzlecore/internal/board"

// SpinClass is the result of classifying a lock for spin-based scoring.
type SpinClass uint8

const (
	SpinNone SpinClass = iota
	SpinTSpin
	SpinTSpinMini
	SpinAllMini
)

func (s SpinClass) String() string {
	switch s {
	case SpinTSpin:
		return "T-Spin"
	case SpinTSpinMini:
		return "T-Spin Mini"
	case SpinAllMini:
		return "AllMini"
	default:
		return "None"
	}
}

// corner indices into the (TL, TR, BR, BL) tuple that make up the "front"
// pair (the side the piece points away from) for each rotation. The rear
// pair is whichever two indices aren't listed; each rotation's front pair
// is the Spawn assignment rotated one step per CW turn.
var frontCornerIdx = [4][2]int{
	board.Spawn: {2, 3}, // BR, BL: T points up, front = bottom side
	board.Right: {0, 3}, // TL, BL: T points right, front = left side
	board.Flip:  {0, 1}, // TL, TR: T points down, front = top side
	board.Left:  {1, 2}, // TR, BR: T points left, front = right side
}

// ClassifySpin determines the spin class of a lock. It must be called
// before the piece's cells are written to the grid.
func ClassifySpin(g *board.Grid, p board.Piece, lastMoveWasRotation bool) SpinClass {
	if !lastMoveWasRotation {
		return SpinNone
	}

	if p.Kind == board.T {
		front, rear := tCornerCounts(g, p)
		switch {
		case front >= 2 && rear >= 1:
			return SpinTSpin
		case (rear >= 2 && front >= 1) || isAllMini(g, p):
			return SpinTSpinMini
		}
		return SpinNone
	}

	if p.Kind != board.O && isAllMini(g, p) {
		return SpinAllMini
	}

	return SpinNone
}

// tCornerCounts returns the occupied front-corner and rear-corner counts
// for a T piece about to lock.
func tCornerCounts(g *board.Grid, p board.Piece) (front, rear int) {
	center := p.Pos.Add(1, 1)
	// TL, TR, BR, BL
	corners := [4]board.Coord{
		center.Add(-1, 1),
		center.Add(1, 1),
		center.Add(1, -1),
		center.Add(-1, -1),
	}
	occupied := [4]bool{}
	for i, c := range corners {
		occupied[i] = cornerOccupied(g, c)
	}

	idx := frontCornerIdx[p.Rotation]
	front = boolToInt(occupied[idx[0]]) + boolToInt(occupied[idx[1]])
	for i := 0; i < 4; i++ {
		if i != idx[0] && i != idx[1] {
			rear += boolToInt(occupied[i])
		}
	}
	return front, rear
}

// cornerOccupied reports whether a corner cell is occupied, treating
// out-of-bounds as occupied per spec.
func cornerOccupied(g *board.Grid, c board.Coord) bool {
	if !c.InBounds() {
		return true
	}
	return !g.At(c.X, c.Y).IsEmpty()
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// isAllMini reports whether the piece cannot move by any of the four
// cardinal offsets from its current position without colliding.
func isAllMini(g *board.Grid, p board.Piece) bool {
	mask := p.Mask()
	for _, off := range neighborOffsets {
		if g.IsValid(mask, p.Pos.Add(off[0], off[1])) {
			return false
		}
	}
	return true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
