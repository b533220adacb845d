package board

// Mask16 is a 4x4 box occupancy mask. Bit i is set iff box-row i/4,
// box-col i%4 is occupied, where box-row 0 is the bottom of the box and
// box-row 3 is the top (matching the bottom-row=0 board convention), and
// box-col 0 is the leftmost column.
type Mask16 uint16

// IsSet reports whether box-row/box-col bit is occupied.
func (m Mask16) IsSet(boxCol, boxRow int) bool {
	return m&(1<<uint(boxRow*4+boxCol)) != 0
}

// cellList is a set of (col, row) box coordinates expressed top-down (row 0
// is the top row of the box, as in the commonly published SRS diagrams).
// maskFromTopDown converts it to the bottom-row=0 Mask16 convention used
// throughout the engine.
func maskFromTopDown(cells [][2]int) Mask16 {
	var m Mask16
	for _, c := range cells {
		col, topRow := c[0], c[1]
		boxRow := 3 - topRow
		m |= 1 << uint(boxRow*4+col)
	}
	return m
}

// masks[kind][rotation] holds the precomputed 4x4 occupancy mask.
var masks [numKinds][4]Mask16

func init() {
	type td = [][2]int // {col, row}, row 0 = top

	table := map[PieceKind][4]td{
		I: {
			{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
			{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
			{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
			{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
		},
		J: {
			{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
		},
		L: {
			{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
			{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
		},
		O: {
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
			{{1, 0}, {2, 0}, {1, 1}, {2, 1}},
		},
		S: {
			{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
			{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
			{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
		T: {
			{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
			{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
		},
		Z: {
			{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
			{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
			{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
			{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
		},
	}

	for kind, rots := range table {
		for r, cells := range rots {
			masks[kind][r] = maskFromTopDown(cells)
		}
	}
}

// MaskFor returns the precomputed occupancy mask for a kind/rotation.
func MaskFor(k PieceKind, r Rotation) Mask16 {
	return masks[k][r]
}

// Offset is a wall-kick displacement, y positive = upward.
type Offset struct {
	DX, DY int
}

var identityOnly = []Offset{{0, 0}}

var jlstzKicks = map[[2]Rotation][]Offset{
	{Spawn, Right}: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Right, Spawn}: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{Right, Flip}:  {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}},
	{Flip, Right}:  {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}},
	{Flip, Left}:   {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
	{Left, Flip}:   {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Left, Spawn}:  {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}},
	{Spawn, Left}:  {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},
}

var iKicks = map[[2]Rotation][]Offset{
	{Spawn, Right}: {{0, 0}, {1, 0}, {-2, 0}, {-2, -1}, {1, 2}},
	{Right, Spawn}: {{0, 0}, {-1, 0}, {2, 0}, {-1, -2}, {2, 1}},
	{Right, Flip}:  {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}},
	{Flip, Right}:  {{0, 0}, {-2, 0}, {1, 0}, {-2, 1}, {1, -2}},
	{Flip, Left}:   {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}},
	{Left, Flip}:   {{0, 0}, {1, 0}, {-2, 0}, {1, 2}, {-2, -1}},
	{Left, Spawn}:  {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}},
	{Spawn, Left}:  {{0, 0}, {-1, 0}, {2, 0}, {2, -1}, {-1, 2}},
}

// all180 is the 180-degree kick set shared by every non-O piece, used for
// Spawn<->Flip and Right<->Left transitions regardless of kind.
var all180 = map[[2]Rotation][]Offset{
	{Spawn, Flip}: {{0, 0}, {0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}},
	{Flip, Spawn}: {{0, 0}, {0, 1}, {-1, 1}, {1, 1}, {-1, 0}, {1, 0}},
	{Right, Left}: {{0, 0}, {1, 0}, {-1, 0}, {1, 2}, {-1, 2}, {1, 1}, {-1, 1}, {0, 2}, {0, 1}},
	{Left, Right}: {{0, 0}, {1, 0}, {-1, 0}, {1, 2}, {-1, 2}, {1, 1}, {-1, 1}, {0, 2}, {0, 1}},
}

// Kicks returns the ordered wall-kick offsets to try for a rotation
// transition of the given piece kind. The identity offset (0,0) is always
// first.
func Kicks(k PieceKind, from, to Rotation) []Offset {
	if k == O {
		return identityOnly
	}
	key := [2]Rotation{from, to}
	if off, ok := all180[key]; ok {
		return off
	}
	if k == I {
		return iKicks[key]
	}
	return jlstzKicks[key]
}
