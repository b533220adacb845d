package match

// GravityConfig tunes the GravityClock's ramp schedule.
type GravityConfig struct {
	InitialG        float64 // rows of fall per virtual frame at game start
	RampDelayFrames int     // virtual frames before gravity starts ramping
	GIncrement      float64 // gravity added per 60 virtual frames after the ramp delay
}

// LockDelayConfig tunes LockDelayTimer thresholds. AddPlayer passes this
// through to playfield.New as a playfield.Config, so a Match can be
// constructed with house-rule variants without touching playfield
// internals.
type LockDelayConfig struct {
	DurationSeconds float64
	MaxResets       int
}

// GarbageConfig tunes the GarbageRouter.
type GarbageConfig struct {
	DelayFrames   int // virtual frames an attack sits in the pending queue before release
	CapPerLock    int // rows a single non-clearing lock can absorb
}

// MatchConfig bundles every tunable surface a Match needs at construction.
type MatchConfig struct {
	Seed            int64
	Gravity         GravityConfig
	LockDelay       LockDelayConfig
	Garbage         GarbageConfig
	VirtualFPS      float64
}

// DefaultMatchConfig returns the canonical Guideline-compatible tuning.
func DefaultMatchConfig(seed int64) MatchConfig {
	return MatchConfig{
		Seed: seed,
		Gravity: GravityConfig{
			InitialG:        1.0 / 64,
			RampDelayFrames: 60 * 30,
			GIncrement:      1.0 / 64,
		},
		LockDelay: LockDelayConfig{
			DurationSeconds: 0.5,
			MaxResets:       15,
		},
		Garbage: GarbageConfig{
			DelayFrames: 20,
			CapPerLock:  8,
		},
		VirtualFPS: 60,
	}
}
