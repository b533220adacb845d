package board

import "testing"

func TestKicksIdentityFirst(t *testing.T) {
	offsets := Kicks(T, Spawn, Right)
	if len(offsets) == 0 || offsets[0] != (Offset{0, 0}) {
		t.Fatalf("Kicks(T, Spawn, Right)[0] = %+v, want {0,0}", offsets[0])
	}
}

func TestOKicksAlwaysIdentity(t *testing.T) {
	offsets := Kicks(O, Spawn, Right)
	if len(offsets) != 1 || offsets[0] != (Offset{0, 0}) {
		t.Errorf("Kicks(O, ...) = %+v, want only {0,0}", offsets)
	}
}

func TestIPieceUsesDistinctKickTable(t *testing.T) {
	jlstz := Kicks(T, Spawn, Right)
	iKicks := Kicks(I, Spawn, Right)
	if len(jlstz) != len(iKicks) {
		return // distinct table, different shapes is expected
	}
	same := true
	for i := range jlstz {
		if jlstz[i] != iKicks[i] {
			same = false
			break
		}
	}
	if same {
		t.Errorf("I kicks should not be identical to JLSTZ kicks")
	}
}

func Test180KicksSharedAcrossNonOKinds(t *testing.T) {
	for _, k := range []PieceKind{J, L, S, T, Z} {
		got := Kicks(k, Spawn, Flip)
		want := Kicks(T, Spawn, Flip)
		if len(got) != len(want) {
			t.Fatalf("Kicks(%v, Spawn, Flip) length = %d, want %d", k, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("Kicks(%v, Spawn, Flip)[%d] = %+v, want %+v", k, i, got[i], want[i])
			}
		}
	}
}

func TestMaskFromTopDownBottomRowZero(t *testing.T) {
	// O piece spawn mask occupies box rows 2-3 (top-down rows 0-1), i.e.
	// bottom-row=0 box-rows 2 and 3.
	m := MaskFor(O, Spawn)
	if !m.IsSet(1, 2) || !m.IsSet(2, 2) || !m.IsSet(1, 3) || !m.IsSet(2, 3) {
		t.Errorf("O spawn mask %016b missing expected bits at box-rows 2-3", m)
	}
	if m.IsSet(0, 0) || m.IsSet(3, 0) {
		t.Errorf("O spawn mask %016b unexpectedly set at bottom box-row", m)
	}
}
