package playfield

import "math"

// Base attack-line tables indexed by lines cleared (0-4). Index 4 is
// unreachable for T-Spin/T-Spin Mini (a T piece can't clear four lines) and
// is included only so the lookup never runs out of bounds.
var tSpinAttack = [5]int{0, 2, 4, 6, 0}
var tSpinMiniAttack = [5]int{0, 0, 1, 2, 0}
var plainAttack = [5]int{0, 0, 1, 2, 4}

// pointTable holds classic Guideline point values for 1-4 line clears.
var pointTable = [5]int{0, 100, 300, 500, 800}

func clampCleared(cleared int) int {
	if cleared < 0 {
		return 0
	}
	if cleared > 4 {
		return 4
	}
	return cleared
}

// baseAttackLines returns the attack line count for a (spin, cleared) pair
// before B2B and combo adjustments.
func baseAttackLines(spin SpinClass, cleared int) int {
	cleared = clampCleared(cleared)
	switch spin {
	case SpinTSpin:
		return tSpinAttack[cleared]
	case SpinTSpinMini:
		return tSpinMiniAttack[cleared]
	default:
		return plainAttack[cleared]
	}
}

// isB2BEligible reports whether a lock qualifies as a "hard" clear that
// extends the back-to-back chain: any T-spin variant that clears at least
// one line, any AllMini clear, or any 4-line clear.
func isB2BEligible(spin SpinClass, cleared int) bool {
	if cleared == 4 {
		return true
	}
	if cleared <= 0 {
		return false
	}
	switch spin {
	case SpinTSpin, SpinTSpinMini, SpinAllMini:
		return true
	default:
		return false
	}
}

// b2bReleaseWaves computes the extra attack waves sent when a b2b_chain of
// at least 4 is broken by a non-eligible clear: three waves of
// floor(chain/3), with the first (chain mod 3) waves bumped by one.
func b2bReleaseWaves(chain int) []int {
	if chain < 4 {
		return nil
	}
	base := chain / 3
	bump := chain % 3
	waves := make([]int, 3)
	for i := range waves {
		waves[i] = base
		if i < bump {
			waves[i]++
		}
	}
	return waves
}

// lockOutcome is the result of scoring a single lock: the base attack
// lines to emit (after B2B and combo adjustments), any B2B release waves
// as separate entries in releaseOnly, plus the point-score delta for the
// HUD.
type lockOutcome struct {
	attack      int
	releaseOnly []int
	points      int
}

// scoreLock updates the running combo/b2b_chain counters in place and
// returns the attack to emit and the opaque point-score delta.
func (p *Playfield) scoreLock(spin SpinClass, cleared int) lockOutcome {
	base := baseAttackLines(spin, cleared)
	var waves []int

	if isB2BEligible(spin, cleared) {
		if p.b2bChain > 0 {
			base++
		}
		p.b2bChain++
	} else if cleared > 0 {
		waves = b2bReleaseWaves(p.b2bChain)
		p.b2bChain = 0
	}

	combo := p.combo
	if combo < 0 {
		combo = 0
	}
	if cleared > 0 {
		if base == 0 {
			base = int(math.Floor(math.Log(1 + 1.25*float64(combo))))
		} else {
			base = base * int(math.Floor(1+0.25*float64(combo)))
		}
		p.combo = combo + 1
	} else {
		p.combo = -1
	}

	points := pointTable[clampCleared(cleared)]
	if spin == SpinTSpin || spin == SpinTSpinMini {
		points *= 2
	}
	points *= p.linesCleared/10 + 1

	return lockOutcome{attack: base, releaseOnly: waves, points: points}
}
